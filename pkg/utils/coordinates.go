// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供舱室坐标与屏幕坐标之间的转换。
//
// # 坐标系统概述
//
//   - **舱室坐标**：以舱室中心为原点，单位为"舱室单位"，Y 轴向上。
//     舱室宽 CabinWidth、高 CabinHeight（默认 16×9）。
//   - **屏幕坐标**：相对于游戏窗口左上角，单位为像素，Y 轴向下（Ebitengine 默认）。
//
// # 核心转换公式
//
//	uv      = screen / screenSize
//	cabin.X = (uv.X - 0.5) * CabinWidth
//	cabin.Y = (0.5 - uv.Y) * CabinHeight
//
// 演员的 TransformComponent.Position 使用舱室坐标，渲染时再转换为屏幕坐标。
package utils

// CabinViewport 描述舱室在屏幕上的映射关系
type CabinViewport struct {
	ScreenWidth  float64 // 屏幕宽度（像素）
	ScreenHeight float64 // 屏幕高度（像素）
	CabinWidth   float64 // 舱室宽度（舱室单位）
	CabinHeight  float64 // 舱室高度（舱室单位）
}

// PixelsPerUnit 返回每个舱室单位对应的像素数（X, Y）
func (vp CabinViewport) PixelsPerUnit() (float64, float64) {
	if vp.CabinWidth == 0 || vp.CabinHeight == 0 {
		return 0, 0
	}
	return vp.ScreenWidth / vp.CabinWidth, vp.ScreenHeight / vp.CabinHeight
}

// ScreenToCabin 将屏幕像素坐标转换为舱室坐标
// 用于光标位置 → 按钮点击检测
func (vp CabinViewport) ScreenToCabin(screenX, screenY float64) Vec2 {
	if vp.ScreenWidth == 0 || vp.ScreenHeight == 0 {
		return Vec2{}
	}
	u := screenX / vp.ScreenWidth
	v := screenY / vp.ScreenHeight
	return Vec2{
		X: (u - 0.5) * vp.CabinWidth,
		Y: (0.5 - v) * vp.CabinHeight,
	}
}

// CabinToScreen 将舱室坐标转换为屏幕像素坐标（ScreenToCabin 的逆变换）
func (vp CabinViewport) CabinToScreen(p Vec2) (screenX, screenY float64) {
	if vp.CabinWidth == 0 || vp.CabinHeight == 0 {
		return 0, 0
	}
	u := p.X/vp.CabinWidth + 0.5
	v := 0.5 - p.Y/vp.CabinHeight
	return u * vp.ScreenWidth, v * vp.ScreenHeight
}

// CabinRectToScreen 将以 center 为中心、尺寸为 size 的舱室矩形转换为屏幕矩形（左上角 + 宽高）
func (vp CabinViewport) CabinRectToScreen(center, size Vec2) (x, y, w, h float64) {
	ppuX, ppuY := vp.PixelsPerUnit()
	cx, cy := vp.CabinToScreen(center)
	w = size.X * ppuX
	h = size.Y * ppuY
	return cx - w/2, cy - h/2, w, h
}

// PointInHalfExtent 判断点是否落在以 center 为中心、半尺寸为 halfExtent 的矩形内（含边界）
func PointInHalfExtent(point, center, halfExtent Vec2) bool {
	offset := point.Sub(center).Abs()
	return offset.X <= halfExtent.X && offset.Y <= halfExtent.Y
}
