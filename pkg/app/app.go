// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/cabin/pkg/config"
	"github.com/decker502/cabin/pkg/game"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/decker502/cabin/pkg/scenes"
	"github.com/decker502/cabin/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
)

// AppName gdata 存储目录名
const AppName = "cabin"

// ErrSceneNotLoaded 初始场景创建失败
var ErrSceneNotLoaded = errors.New("initial scene not loaded")

// App 应用包装器，实现 ebiten.Game 接口
type App struct {
	cfg             *config.Config
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	scoreManager    *game.ScoreManager

	screenWidth  int
	screenHeight int

	log zerolog.Logger
}

// SetupLogging 按配置初始化全局日志
// verbose=false 时丢弃全部日志
func SetupLogging(cfg *config.Config) error {
	if !cfg.Log.Verbose {
		logging.Discard()
		return nil
	}
	return logging.Setup(logging.Options{
		Level:   cfg.Log.Level,
		Output:  os.Stderr,
		Console: cfg.Log.Console,
	})
}

// NewApp 创建并初始化应用
//
// 调用前应先调用 SetupLogging，使各系统取得的日志器生效。
func NewApp(cfg *config.Config) (*App, error) {
	log := logging.For("App")

	// 存储不可用时降级为仅内存的设置和分数
	storage, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warn().Err(err).Msg("persistent storage unavailable, running without saves")
		storage = nil
	}

	settingsManager := game.NewSettingsManager(storage)
	scoreManager := game.NewScoreManager(storage)
	if !cfg.Cue.Enabled {
		settingsManager.SetCueEnabled(false)
	}

	audioContext := audio.NewContext(config.CueSampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Debug().Int("sample_rate", config.CueSampleRate).Msg("audio manager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewFactory(scenes.CabinDeps{
		Config:   cfg,
		Score:    scoreManager,
		Settings: settingsManager,
		Cue:      audioManager,
	}))
	if !sceneManager.Load(scenes.CabinSceneName) {
		return nil, fmt.Errorf("load %s: %w", scenes.CabinSceneName, ErrSceneNotLoaded)
	}

	if settingsManager.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	log.Info().
		Int("best", scoreManager.Best()).
		Bool("cue", settingsManager.GetSettings().CueEnabled).
		Msg("app initialized")

	return &App{
		cfg:             cfg,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		scoreManager:    scoreManager,
		screenWidth:     cfg.Window.Width,
		screenHeight:    cfg.Window.Height,
		log:             log,
	}, nil
}

// Update 更新逻辑，每个 tick 调用一次
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// F11 切换全屏，并记住选择（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		a.log.Debug().Bool("fullscreen", fullscreen).Msg("fullscreen toggled")
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口，全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸，变化时通知当前场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != a.screenWidth || outsideHeight != a.screenHeight) {
		a.screenWidth, a.screenHeight = outsideWidth, outsideHeight
		a.sceneManager.Resize(outsideWidth, outsideHeight)
	}
	return a.screenWidth, a.screenHeight
}

// SaveOnExit 保存当前场景状态
func (a *App) SaveOnExit() bool {
	ok := a.sceneManager.SaveOnExit()
	if !ok {
		a.log.Error().Msg("failed to save on exit")
	}
	return ok
}

// Config 返回运行时配置
func (a *App) Config() *config.Config {
	return a.cfg
}

// Run 打开窗口并运行主循环，直到窗口关闭
func Run(a *App) error {
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
