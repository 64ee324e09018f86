package scenes

import (
	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/config"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/entities"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/game"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/decker502/cabin/pkg/systems"
	"github.com/decker502/cabin/pkg/utils"
	"github.com/rs/zerolog"
)

// hoverFadeRate 悬停高亮每秒变化的比例
const hoverFadeRate = 6.0

// CabinDeps 舱室场景的外部依赖
type CabinDeps struct {
	Config   *config.Config       // 为 nil 时使用 config.Default()
	Score    *game.ScoreManager   // 为 nil 时使用不落盘的分数管理器
	Settings *game.SettingsManager // 为 nil 时使用默认设置
	Cue      systems.CuePlayer    // 为 nil 时静音
	Input    CabinInput           // 为 nil 时读取 Ebitengine 输入
}

// CabinScene 舱室场景
//
// 场景内容：
//   - 若干"想法"演员，由一个没有结束事件的环绕编排驱动
//   - 右下角"合并想法"按钮：点击后两片帘幕合拢再打开，过场结束时加分并播放提示音
//   - 左下角"重置"按钮：清零当前分数
//
// 所有逻辑都在 ChoreographyPipeline 的一帧内完成，场景本身只负责输入适配和绘制。
type CabinScene struct {
	cfg           *config.Config
	entityManager *ecs.EntityManager
	pipeline      *systems.ChoreographyPipeline

	inputSystem *systems.CabinInputSystem
	trigger     *systems.CurtainTriggerSystem
	debugSystem *systems.ChoreographyDebugSystem

	scoreManager    *game.ScoreManager
	settingsManager *game.SettingsManager
	input           CabinInput

	viewport utils.CabinViewport
	hover    map[ecs.EntityID]float64 // 按钮高亮进度 0~1

	thoughtDirector ecs.EntityID
	thoughts        []ecs.EntityID
	mergeButton     ecs.EntityID
	resetButton     ecs.EntityID

	log zerolog.Logger
}

// NewCabinScene 创建舱室场景并让想法演员登台
func NewCabinScene(deps CabinDeps) *CabinScene {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	score := deps.Score
	if score == nil {
		score = game.NewScoreManager(nil)
	}
	settings := deps.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	input := deps.Input
	if input == nil {
		input = ebitenInput{}
	}

	em := ecs.NewEntityManager()
	signals := event.NewSignals()
	pipeline := systems.NewChoreographyPipeline(em, signals)

	s := &CabinScene{
		cfg:             cfg,
		entityManager:   em,
		pipeline:        pipeline,
		scoreManager:    score,
		settingsManager: settings,
		input:           input,
		viewport: utils.CabinViewport{
			ScreenWidth:  float64(cfg.Window.Width),
			ScreenHeight: float64(cfg.Window.Height),
			CabinWidth:   cfg.Cabin.Width,
			CabinHeight:  cfg.Cabin.Height,
		},
		hover: make(map[ecs.EntityID]float64),
		log:   logging.For("CabinScene"),
	}

	params := choreography.CurtainParams{
		CabinWidth: cfg.Cabin.Width,
		Depth:      cfg.Curtain.Depth,
		HalfTime:   cfg.Curtain.HalfTime,
		Hold:       cfg.Curtain.Hold,
		Tail:       cfg.Curtain.Tail,
	}
	cue := components.AudioCueComponent{Frequency: cfg.Cue.Frequency, Duration: cfg.Cue.Duration}

	s.inputSystem = systems.NewCabinInputSystem(em, signals.Buttons, input, s.viewport)
	s.trigger = systems.NewCurtainTriggerSystem(em, signals.Buttons, params, cfg.Cabin.Height, cue)
	pipeline.AddInput(s.inputSystem)
	pipeline.AddInput(s.trigger)

	audioSystem := systems.NewAudioCueSystem(em, signals.Finished, deps.Cue)
	audioSystem.Muted = !cfg.Cue.Enabled
	s.debugSystem = systems.NewChoreographyDebugSystem(em, signals.Finished)
	pipeline.AddListener(systems.NewCutsceneScoreSystem(em, signals, score, cfg.Score.CutsceneBonus))
	pipeline.AddListener(audioSystem)
	pipeline.AddListener(s.debugSystem)

	s.mergeButton = entities.NewMergeButtonEntity(em)
	s.resetButton = entities.NewResetButtonEntity(em)
	s.stageThoughts()

	s.log.Info().
		Int("thoughts", len(s.thoughts)).
		Float64("cabin_width", cfg.Cabin.Width).
		Float64("cabin_height", cfg.Cabin.Height).
		Msg("cabin scene created")
	return s
}

// stageThoughts 创建想法演员并让它们按环绕编排登台
func (s *CabinScene) stageThoughts() {
	center := utils.NewVec3(0, 0.5, 10)
	size := utils.Vec2{X: config.ThoughtSize, Y: config.ThoughtSize}

	s.thoughts = make([]ecs.EntityID, config.ThoughtCount)
	for i := range s.thoughts {
		s.thoughts[i] = entities.NewActorEntity(s.entityManager, center, size, entities.ThoughtColor, "thought")
	}

	ring := choreography.ThoughtRing(config.ThoughtCount, center, config.ThoughtOrbitRadius, config.ThoughtOrbitFrequency)
	s.thoughtDirector = entities.OrganizePlay(s.entityManager, ring, s.thoughts)
}

// Update 推进一帧
func (s *CabinScene) Update(deltaTime float64) {
	if s.input.DebugToggled() {
		show := s.settingsManager.ToggleDebug()
		s.log.Debug().Bool("show_debug", show).Msg("debug overlay toggled")
	}

	s.pipeline.Update(deltaTime)
	s.updateHover(deltaTime)
}

// updateHover 让按钮高亮向悬停状态渐变
func (s *CabinScene) updateHover(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CabinButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.CabinButtonComponent](s.entityManager, id)
		target := 0.0
		if button.Hovered {
			target = 1.0
		}
		s.hover[id] = utils.Approach(s.hover[id], target, hoverFadeRate, deltaTime)
	}
}

// Resize 窗口尺寸变化时更新屏幕映射
func (s *CabinScene) Resize(screenWidth, screenHeight int) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return
	}
	s.viewport.ScreenWidth = float64(screenWidth)
	s.viewport.ScreenHeight = float64(screenHeight)
	s.inputSystem.SetViewport(s.viewport)
}

// SaveOnExit 退出前保存分数和设置
func (s *CabinScene) SaveOnExit() bool {
	ok := true
	if err := s.scoreManager.Save(); err != nil {
		s.log.Error().Err(err).Msg("failed to save score")
		ok = false
	}
	if err := s.settingsManager.Save(); err != nil {
		s.log.Error().Err(err).Msg("failed to save settings")
		ok = false
	}
	return ok
}

// MergeRunning 合并过场是否正在进行
func (s *CabinScene) MergeRunning() bool {
	return s.trigger.Running()
}

// EntityManager 返回场景的实体管理器
func (s *CabinScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
