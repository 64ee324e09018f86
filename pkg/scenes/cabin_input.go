package scenes

import (
	"github.com/decker502/cabin/pkg/systems"
	"github.com/decker502/cabin/pkg/utils/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CabinInput 舱室场景读取的全部输入
type CabinInput interface {
	systems.PointerSource

	// DebugToggled 本帧是否按下了调试开关键
	DebugToggled() bool
}

// DebugToggleKey 切换调试信息显示的按键
const DebugToggleKey = ebiten.KeyF3

// ebitenInput 从 Ebitengine 读取鼠标、触摸和键盘
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) {
	return input.GetPointerPosition()
}

func (ebitenInput) JustClicked() bool {
	clicked, _, _ := input.IsJustTouchedOrClicked()
	return clicked
}

func (ebitenInput) DebugToggled() bool {
	return inpututil.IsKeyJustPressed(DebugToggleKey)
}
