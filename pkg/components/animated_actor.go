package components

import (
	"github.com/decker502/cabin/pkg/animation"
	"github.com/decker502/cabin/pkg/utils"
)

// AnimatedActorComponent 编排中的演员状态
//
// 演员的位置完全由本组件决定：
//
//	position = Offset + Animation.GetPoint(Time)
//
// 默认状态（登台时）：未激活、本地时钟为 0、静止路径、原点为编排的初始位置。
// 所有字段只由导演系统（事件派发）和演员动画系统（推进时钟）修改。
type AnimatedActorComponent struct {
	// Active 是否激活：未激活时本地时钟和位置都冻结
	Active bool

	// Time 本地时钟（秒），激活期间每帧累加 dt
	Time float64

	// Offset 动画路径的原点
	Offset utils.Vec3

	// Animation 当前动画路径，只会被整体替换
	Animation animation.Path
}

// NewAnimatedActorComponent 创建默认状态的演员组件
func NewAnimatedActorComponent(initialPosition utils.Vec3) *AnimatedActorComponent {
	return &AnimatedActorComponent{
		Active:    false,
		Time:      0,
		Offset:    initialPosition,
		Animation: animation.Stationary{},
	}
}

// CurrentPoint 返回演员当前时刻应处的位置
func (a *AnimatedActorComponent) CurrentPoint() utils.Vec3 {
	if a.Animation == nil {
		return a.Offset
	}
	return a.Offset.Add(a.Animation.GetPoint(a.Time))
}
