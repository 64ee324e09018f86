package utils

import (
	"image/color"
	"math"
)

// 缓动函数：输入进度 t ∈ [0, 1]，输出缓动后的值 ∈ [0, 1]
// 参考：https://easings.net/

// EaseOutQuad 二次方缓出：开始较快，结束慢
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Approach 让 current 以每秒 rate 的速度向 target 靠近，不会越过 target
// 用于悬停高亮这类随时间渐变的量
func Approach(current, target, rate, deltaTime float64) float64 {
	step := rate * deltaTime
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}

// LerpColor 在两种颜色之间插值（含 Alpha）
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(Lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
