package animation

import (
	"math"

	"github.com/decker502/cabin/pkg/utils"
)

// Stationary 静止路径，始终返回零向量
type Stationary struct{}

// GetPoint 实现 Path 接口
func (Stationary) GetPoint(float64) utils.Vec3 {
	return utils.Vec3Zero
}

// Ellipse 椭圆路径
//
//	p = 2π·Frequency·t
//	point = cos(p)·MajorSemiaxis + sin(p)·MinorSemiaxis
type Ellipse struct {
	MajorSemiaxis utils.Vec3
	MinorSemiaxis utils.Vec3
	Frequency     float64 // 每秒转过的圈数
}

// Circle 创建 X-Y 平面内的圆形路径
func Circle(radius, frequency float64) Ellipse {
	return Ellipse{
		MajorSemiaxis: utils.NewVec3(radius, 0, 0),
		MinorSemiaxis: utils.NewVec3(0, radius, 0),
		Frequency:     frequency,
	}
}

// GetPoint 实现 Path 接口
func (e Ellipse) GetPoint(t float64) utils.Vec3 {
	p := 2 * math.Pi * e.Frequency * t
	return e.MajorSemiaxis.Scale(math.Cos(p)).Add(e.MinorSemiaxis.Scale(math.Sin(p)))
}

// Sine 沿固定方向的正弦往复运动：sin(ω·t)·Direction
type Sine struct {
	Direction        utils.Vec3
	AngularFrequency float64 // 弧度/秒
}

// GetPoint 实现 Path 接口
func (s Sine) GetPoint(t float64) utils.Vec3 {
	return s.Direction.Scale(math.Sin(s.AngularFrequency * t))
}

// Curtain 帘幕路径：先合拢再打开的抛物线缓动
//
//	t <= 0 或 t >= 2h:  Movement（完全打开的端点）
//	0 < t < 2h:         Movement·(t/h − 1)²（t = h 时为零，即完全合拢）
//
// 演员的 Offset 应设为合拢位置，Movement 为合拢位置到打开位置的位移。
type Curtain struct {
	Movement utils.Vec3
	HalfTime float64 // 从打开到合拢所用的时间（秒）
}

// GetPoint 实现 Path 接口
func (c Curtain) GetPoint(t float64) utils.Vec3 {
	if c.HalfTime <= 0 || t <= 0 || t >= 2*c.HalfTime {
		return c.Movement
	}
	k := t/c.HalfTime - 1
	return c.Movement.Scale(k * k)
}

// Sum 两条子路径的逐点向量和，用于由简单路径组合出复杂运动
type Sum struct {
	A Path
	B Path
}

// NewSum 创建组合路径
func NewSum(a, b Path) *Sum {
	return &Sum{A: a, B: b}
}

// GetPoint 实现 Path 接口，两条子路径在同一时刻求值后相加
// 为 nil 的子路径视为 Stationary
func (s *Sum) GetPoint(t float64) utils.Vec3 {
	var point utils.Vec3
	if s.A != nil {
		point = point.Add(s.A.GetPoint(t))
	}
	if s.B != nil {
		point = point.Add(s.B.GetPoint(t))
	}
	return point
}

// ClonePath 实现 Cloner 接口，递归拷贝两棵子树
func (s *Sum) ClonePath() Path {
	if s == nil {
		return nil
	}
	return &Sum{A: Clone(s.A), B: Clone(s.B)}
}
