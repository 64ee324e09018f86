package systems

import (
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/event"
)

// Updater 按帧更新的系统
type Updater interface {
	Update(deltaTime float64)
}

// ChoreographyPipeline 按固定阶段顺序运行一帧
//
//	输入 → 导演派发 → 演员动画 → 清理 → 监听者 → 移除已标记实体 → 推进信号队列
//
// 导演在本帧提交的激活和动画变化在同一帧内对演员动画可见；
// 清理只会看到派发和积分都完成之后的状态。全部阶段在调用者的线程上串行执行。
type ChoreographyPipeline struct {
	entityManager *ecs.EntityManager
	signals       *event.Signals

	Director  *ChoreographyDirectorSystem
	Animation *ActorAnimationSystem
	Cleanup   *ChoreographyCleanupSystem

	inputs    []Updater
	listeners []Updater
}

// NewChoreographyPipeline 创建只包含核心三阶段的流水线
func NewChoreographyPipeline(em *ecs.EntityManager, signals *event.Signals) *ChoreographyPipeline {
	return &ChoreographyPipeline{
		entityManager: em,
		signals:       signals,
		Director:      NewChoreographyDirectorSystem(em, signals.Finished),
		Animation:     NewActorAnimationSystem(em),
		Cleanup:       NewChoreographyCleanupSystem(em, signals.Finished),
	}
}

// AddInput 注册在导演之前运行的系统
func (p *ChoreographyPipeline) AddInput(u Updater) {
	p.inputs = append(p.inputs, u)
}

// AddListener 注册在清理之后运行的系统（按注册顺序）
func (p *ChoreographyPipeline) AddListener(u Updater) {
	p.listeners = append(p.listeners, u)
}

// Signals 返回流水线使用的信号队列
func (p *ChoreographyPipeline) Signals() *event.Signals {
	return p.signals
}

// Update 运行一帧；负的 deltaTime 视为 0
func (p *ChoreographyPipeline) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	for _, u := range p.inputs {
		u.Update(deltaTime)
	}

	p.Director.Update(deltaTime)
	p.Animation.Update(deltaTime)
	p.Cleanup.Update(deltaTime)

	for _, u := range p.listeners {
		u.Update(deltaTime)
	}

	p.entityManager.RemoveMarkedEntities()
	p.signals.Update()
}
