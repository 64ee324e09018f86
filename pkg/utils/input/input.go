// Package input 统一鼠标和触摸输入，优先检测触摸
//
// utils 本身不得依赖 Ebitengine，指针输入只放在这里。
package input

import (
	"github.com/decker502/cabin/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 没有活动触摸时返回最后一次触摸位置（移动端）或鼠标位置（桌面端）
func GetPointerPosition() (int, int) {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		hasTouched = true
		return lastTouchX, lastTouchY
	}
	if hasTouched && utils.IsMobile() {
		return lastTouchX, lastTouchY
	}
	return ebiten.CursorPosition()
}

// IsJustTouchedOrClicked 检查本帧是否刚刚发生点击或触摸，返回是否点击以及位置
func IsJustTouchedOrClicked() (bool, int, int) {
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY, hasTouched = x, y, true
		return true, x, y
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// 最后一次触摸位置：手指抬起后 TouchPosition 不再可用
var (
	lastTouchX, lastTouchY int
	hasTouched             bool
)
