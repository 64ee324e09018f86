package choreography

import (
	"fmt"

	"github.com/decker502/cabin/pkg/animation"
	"github.com/decker502/cabin/pkg/utils"
)

// Event 编排事件
//
// 事件集合是封闭的：只有本包定义的类型实现了 Event。
// 除 EndChoreography 外，所有事件都携带 Index：导演演员列表中的下标，而不是实体ID。
type Event interface {
	isChoreographyEvent()
}

// ActivateActor 激活演员：本地时钟开始推进，位置开始更新
type ActivateActor struct {
	Index int
}

// DeactivateActor 停用演员：冻结本地时钟和位置
type DeactivateActor struct {
	Index int
}

// SetAnimation 替换演员的动画路径
type SetAnimation struct {
	Index     int
	Animation animation.Path
}

// SetActorsTime 重设演员的本地时钟
type SetActorsTime struct {
	Index int
	Time  float64
}

// SetActorsOffset 重设演员的原点
type SetActorsOffset struct {
	Index  int
	Offset utils.Vec3
}

// EndChoreography 终止哨兵：结束编排并停用全部演员
type EndChoreography struct{}

func (ActivateActor) isChoreographyEvent()   {}
func (DeactivateActor) isChoreographyEvent() {}
func (SetAnimation) isChoreographyEvent()    {}
func (SetActorsTime) isChoreographyEvent()   {}
func (SetActorsOffset) isChoreographyEvent() {}
func (EndChoreography) isChoreographyEvent() {}

// ActorIndex 返回事件指向的演员下标
// EndChoreography 不指向任何演员，返回 false
func ActorIndex(e Event) (int, bool) {
	switch ev := e.(type) {
	case ActivateActor:
		return ev.Index, true
	case DeactivateActor:
		return ev.Index, true
	case SetAnimation:
		return ev.Index, true
	case SetActorsTime:
		return ev.Index, true
	case SetActorsOffset:
		return ev.Index, true
	default:
		return 0, false
	}
}

// Name 返回事件类型名，用于日志
func Name(e Event) string {
	switch e.(type) {
	case ActivateActor:
		return "ActivateActor"
	case DeactivateActor:
		return "DeactivateActor"
	case SetAnimation:
		return "SetAnimation"
	case SetActorsTime:
		return "SetActorsTime"
	case SetActorsOffset:
		return "SetActorsOffset"
	case EndChoreography:
		return "EndChoreography"
	default:
		return fmt.Sprintf("%T", e)
	}
}

// cloneEvent 复制事件负载，SetAnimation 的路径树做深拷贝
func cloneEvent(e Event) Event {
	if ev, ok := e.(SetAnimation); ok {
		ev.Animation = animation.Clone(ev.Animation)
		return ev
	}
	return e
}
