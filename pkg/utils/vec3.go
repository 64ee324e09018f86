package utils

import "math"

// Vec3 三维向量（值类型）
// 用于演员的原点、动画路径偏移和渲染位置
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 二维向量，用于屏幕/舱室平面坐标
type Vec2 struct {
	X, Y float64
}

// Vec3Zero 零向量
var Vec3Zero = Vec3{}

// NewVec3 创建三维向量
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 标量乘法
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length 向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// XY 丢弃 Z 分量
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// ApproxEqual 逐分量比较，误差不超过 eps
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps &&
		math.Abs(v.Y-o.Y) <= eps &&
		math.Abs(v.Z-o.Z) <= eps
}

// Extend 补上 Z 分量得到三维向量
func (v Vec2) Extend(z float64) Vec3 {
	return Vec3{v.X, v.Y, z}
}

// Sub 二维向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Abs 逐分量取绝对值
func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v.X), math.Abs(v.Y)}
}
