package game

import (
	"github.com/decker502/cabin/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SceneFactory 按名称创建场景，避免场景包与 game 包循环依赖
type SceneFactory func(name string) Scene

// SceneManager 管理当前活动场景，同一时刻只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	log          zerolog.Logger
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{log: logging.For("SceneManager")}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到给定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 通过工厂创建并切换到名为 name 的场景，返回是否成功
func (sm *SceneManager) Load(name string) bool {
	if sm.sceneFactory == nil {
		sm.log.Error().Str("scene", name).Msg("scene factory not set")
		return false
	}

	scene := sm.sceneFactory(name)
	if scene == nil {
		sm.log.Error().Str("scene", name).Msg("unknown scene")
		return false
	}

	sm.SwitchTo(scene)
	sm.log.Info().Str("scene", name).Msg("scene loaded")
	return true
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize 把窗口尺寸转发给当前场景
func (sm *SceneManager) Resize(screenWidth, screenHeight int) {
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(screenWidth, screenHeight)
	}
}

// SaveOnExit 让当前场景在退出前保存状态
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}
