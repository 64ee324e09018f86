package components

import (
	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/google/uuid"
)

// DirectorComponent 导演状态：驱动一份编排脚本
//
// 状态机：
//   - 运行中（Active=true）：每帧派发时间戳落在 [Time, Time+dt) 的事件，然后 Time += dt
//   - 已结束（Active=false）：执行过 EndChoreography，等待清理系统销毁
//
// 在第一个事件的时间戳之前，导演只推进时钟，不产生任何效果。
type DirectorComponent struct {
	// Active 是否仍在运行
	Active bool

	// Time 主时钟（秒）
	Time float64

	// Actors 演员实体列表，事件中的 Index 是本列表的下标
	// 顺序在登台时确定，之后不再改变
	Actors []ecs.EntityID

	// Choreography 共享的只读脚本
	Choreography *choreography.Choreography

	// PlayID 本次演出的关联ID（日志、信号、调试工具）
	PlayID uuid.UUID
}
