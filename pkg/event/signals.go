package event

import (
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/google/uuid"
)

// ChoreographyFinished 导演执行到 EndChoreography 时发出
// 可能被重复发出，监听者必须容忍重复和已经不存在的导演
type ChoreographyFinished struct {
	Director ecs.EntityID
	PlayID   uuid.UUID
}

// ButtonPressed 舱室按钮被点击
type ButtonPressed struct {
	Button ecs.EntityID
	Type   components.ButtonType
}

// Signals 一帧内流转的全部信号队列
type Signals struct {
	Finished *Bus[ChoreographyFinished]
	Buttons  *Bus[ButtonPressed]
}

// NewSignals 创建信号队列集合
func NewSignals() *Signals {
	return &Signals{
		Finished: NewBus[ChoreographyFinished](),
		Buttons:  NewBus[ButtonPressed](),
	}
}

// Update 帧末推进所有队列
func (s *Signals) Update() {
	s.Finished.Update()
	s.Buttons.Update()
}
