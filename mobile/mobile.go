//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，仅在 -tags mobile 时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.cabin -o build/android/cabin.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Cabin.xcframework -v ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/cabin/pkg/app"
	"github.com/decker502/cabin/pkg/config"
	"github.com/decker502/cabin/pkg/logging"
)

func init() {
	// 移动端没有命令行参数，只读取默认值和 CABIN_* 环境变量
	cfg, err := config.Load("", nil)
	if err != nil {
		logging.Root().Fatal().Err(err).Msg("config load failed")
	}
	if err := app.SetupLogging(cfg); err != nil {
		logging.Root().Fatal().Err(err).Msg("logging setup failed")
	}

	cabin, err := app.NewApp(cfg)
	if err != nil {
		logging.Root().Fatal().Err(err).Msg("app init failed")
	}

	mobile.SetGame(cabin)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
