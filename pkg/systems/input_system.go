package systems

import (
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/utils"
)

// PointerSource 指针输入（屏幕像素坐标）
type PointerSource interface {
	CursorPosition() (x, y int)
	JustClicked() bool
}

// CabinInputSystem 把指针输入转换为按钮信号
//
// 每帧更新所有按钮的悬停状态；本帧有点击时，向第一个命中的启用按钮发出 ButtonPressed。
type CabinInputSystem struct {
	entityManager *ecs.EntityManager
	buttons       *event.Bus[event.ButtonPressed]
	pointer       PointerSource
	viewport      utils.CabinViewport
}

// NewCabinInputSystem 创建输入系统
func NewCabinInputSystem(em *ecs.EntityManager, buttons *event.Bus[event.ButtonPressed], pointer PointerSource, viewport utils.CabinViewport) *CabinInputSystem {
	return &CabinInputSystem{
		entityManager: em,
		buttons:       buttons,
		pointer:       pointer,
		viewport:      viewport,
	}
}

// SetViewport 窗口尺寸变化时更新映射
func (s *CabinInputSystem) SetViewport(vp utils.CabinViewport) {
	s.viewport = vp
}

// Update 处理本帧输入
func (s *CabinInputSystem) Update(deltaTime float64) {
	if s.pointer == nil {
		return
	}

	x, y := s.pointer.CursorPosition()
	cursor := s.viewport.ScreenToCabin(float64(x), float64(y))
	clicked := s.pointer.JustClicked()

	ids := ecs.GetEntitiesWith2[*components.CabinButtonComponent, *components.TransformComponent](s.entityManager)
	for _, id := range ids {
		button, _ := ecs.GetComponent[*components.CabinButtonComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		button.Hovered = button.Enabled && utils.PointInHalfExtent(cursor, transform.Position.XY(), button.HalfExtent)
		if clicked && button.Hovered {
			s.buttons.Send(event.ButtonPressed{Button: id, Type: button.Type})
			clicked = false
		}
	}
}
