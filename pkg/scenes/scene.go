package scenes

import (
	"github.com/decker502/cabin/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现放在本包，接口定义在 game 包以避免循环依赖
type Scene = game.Scene

// CabinSceneName 舱室场景在 SceneManager 中的名称
const CabinSceneName = "cabin"

// NewFactory 返回按名称创建场景的工厂
func NewFactory(deps CabinDeps) game.SceneFactory {
	return func(name string) game.Scene {
		switch name {
		case CabinSceneName:
			return NewCabinScene(deps)
		default:
			return nil
		}
	}
}
