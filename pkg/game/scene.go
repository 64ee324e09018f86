package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 场景：独立的更新和绘制逻辑
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Resizable 可选接口：窗口尺寸变化时收到通知
type Resizable interface {
	Resize(screenWidth, screenHeight int)
}

// Saveable 可选接口：程序退出前保存状态
//
// 窗口关闭或进程收到退出请求时，当前场景如果实现了本接口会被调用 SaveOnExit。
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会退出）
	SaveOnExit() bool
}
