package choreography

import (
	"github.com/decker502/cabin/pkg/animation"
	"github.com/decker502/cabin/pkg/utils"
)

// 帘幕演员在演员列表中的下标
const (
	CurtainLeft  = 0
	CurtainRight = 1
)

// CurtainParams 帘幕过场参数
type CurtainParams struct {
	CabinWidth float64 // 舱室宽度（舱室单位）
	Depth      float64 // 帘幕的 Z 值（绘制层级）
	HalfTime   float64 // 打开 → 合拢所用时间（秒）
	Hold       float64 // 合拢后停留时间（秒），0 表示不停留
	Tail       float64 // 重新打开后到结束的余量（秒）
}

// DefaultCurtainParams 返回默认帘幕参数
func DefaultCurtainParams(cabinWidth float64) CurtainParams {
	return CurtainParams{
		CabinWidth: cabinWidth,
		Depth:      100,
		HalfTime:   1.0,
		Hold:       0.5,
		Tail:       0.1,
	}
}

// CurtainOpenPositions 返回两片帘幕完全打开时的中心位置（左、右）
func CurtainOpenPositions(p CurtainParams) (utils.Vec3, utils.Vec3) {
	return utils.NewVec3(-p.CabinWidth*0.75, 0, p.Depth), utils.NewVec3(p.CabinWidth*0.75, 0, p.Depth)
}

// CurtainClosedPositions 返回两片帘幕合拢时的中心位置（左、右）
func CurtainClosedPositions(p CurtainParams) (utils.Vec3, utils.Vec3) {
	return utils.NewVec3(-p.CabinWidth*0.25, 0, p.Depth), utils.NewVec3(p.CabinWidth*0.25, 0, p.Depth)
}

// CurtainCall 构建两片帘幕"合拢 → 停留 → 打开"的编排
//
// 时间线：
//
//	0            设置原点（合拢位置）、设置帘幕路径、时钟清零、激活
//	h            停用（帘幕停在合拢位置）
//	h+hold       时钟对齐到 h，重新激活（开始打开）
//	2h+hold+tail 结束
func CurtainCall(p CurtainParams) *Choreography {
	leftClosed, rightClosed := CurtainClosedPositions(p)
	leftPath := animation.Curtain{Movement: utils.NewVec3(-p.CabinWidth*0.5, 0, 0), HalfTime: p.HalfTime}
	rightPath := animation.Curtain{Movement: utils.NewVec3(p.CabinWidth*0.5, 0, 0), HalfTime: p.HalfTime}

	h := p.HalfTime
	events := []TimedEvent{
		At(0, SetActorsOffset{Index: CurtainLeft, Offset: leftClosed}),
		At(0, SetActorsOffset{Index: CurtainRight, Offset: rightClosed}),
		At(0, SetAnimation{Index: CurtainLeft, Animation: leftPath}),
		At(0, SetAnimation{Index: CurtainRight, Animation: rightPath}),
		At(0, SetActorsTime{Index: CurtainLeft, Time: 0}),
		At(0, SetActorsTime{Index: CurtainRight, Time: 0}),
		At(0, ActivateActor{Index: CurtainLeft}),
		At(0, ActivateActor{Index: CurtainRight}),
	}

	if p.Hold > 0 {
		events = append(events,
			At(h, DeactivateActor{Index: CurtainLeft}),
			At(h, DeactivateActor{Index: CurtainRight}),
			At(h+p.Hold, SetActorsTime{Index: CurtainLeft, Time: h}),
			At(h+p.Hold, SetActorsTime{Index: CurtainRight, Time: h}),
			At(h+p.Hold, ActivateActor{Index: CurtainLeft}),
			At(h+p.Hold, ActivateActor{Index: CurtainRight}),
		)
	}

	events = append(events, At(2*h+p.Hold+p.Tail, EndChoreography{}))

	return New(2, utils.NewVec3(0, 0, p.Depth), events...)
}

// Orbit 构建单个演员绕原点做圆周运动、持续 duration 秒的编排
// 用于调试工具和演示场景
func Orbit(center utils.Vec3, radius, frequency, duration float64) *Choreography {
	return New(1, center,
		At(0, SetAnimation{Index: 0, Animation: animation.NewSum(
			animation.Circle(radius, frequency),
			animation.Sine{Direction: utils.NewVec3(0, 0, 1), AngularFrequency: 2 * frequency},
		)}),
		At(0, ActivateActor{Index: 0}),
		At(duration, EndChoreography{}),
	)
}

// ThoughtRing 构建 n 个演员在同一圆周上等距环绕的编排，没有结束事件
//
// 第 k 个演员的本地时钟从 k/(n·frequency) 开始，因此相位均匀错开。
func ThoughtRing(n int, center utils.Vec3, radius, frequency float64) *Choreography {
	events := make([]TimedEvent, 0, n*4)
	for k := 0; k < n; k++ {
		phase := 0.0
		if frequency != 0 {
			phase = float64(k) / (float64(n) * frequency)
		}
		events = append(events,
			At(0, SetActorsOffset{Index: k, Offset: center}),
			At(0, SetAnimation{Index: k, Animation: animation.Circle(radius, frequency)}),
			At(0, SetActorsTime{Index: k, Time: phase}),
			At(0, ActivateActor{Index: k}),
		)
	}
	return New(n, center, events...)
}
