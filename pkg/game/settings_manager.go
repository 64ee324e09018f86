package game

import (
	"fmt"

	"github.com/decker502/cabin/pkg/logging"
	"github.com/quasilyte/gdata/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// CabinSettings 玩家设置（全局，不绑定用户）
type CabinSettings struct {
	CueEnabled bool    `yaml:"cueEnabled"` // 过场结束提示音开关
	CueVolume  float64 `yaml:"cueVolume"`  // 提示音音量 0.0 ~ 1.0
	Fullscreen bool    `yaml:"fullscreen"` // 启动时是否全屏
	ShowDebug  bool    `yaml:"showDebug"`  // 是否绘制调试信息（导演时钟、演员名称）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *CabinSettings {
	return &CabinSettings{
		CueEnabled: true,
		CueVolume:  0.5,
		Fullscreen: false,
		ShowDebug:  false,
	}
}

// SettingsManager 设置管理器：加载、保存和修改玩家设置
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *CabinSettings
	log          zerolog.Logger
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败只记录警告并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		log:          logging.For("SettingsManager"),
	}

	if err := sm.Load(); err != nil {
		sm.log.Warn().Err(err).Msg("failed to load settings, using defaults")
	}
	return sm
}

// Load 从 gdata 加载设置；降级模式或没有存档时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.CueVolume = clampVolume(loaded.CueVolume)

	sm.settings = loaded
	sm.log.Debug().Msg("settings loaded")
	return nil
}

// Save 保存设置；降级模式下不报错
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.log.Debug().Msg("settings saved")
	return nil
}

// GetSettings 返回当前设置
func (sm *SettingsManager) GetSettings() *CabinSettings {
	return sm.settings
}

// SetCueEnabled 设置提示音开关（需调用 Save 持久化）
func (sm *SettingsManager) SetCueEnabled(enabled bool) {
	sm.settings.CueEnabled = enabled
}

// SetCueVolume 设置提示音音量，限制在 0.0 ~ 1.0（需调用 Save 持久化）
func (sm *SettingsManager) SetCueVolume(volume float64) {
	sm.settings.CueVolume = clampVolume(volume)
}

// SetFullscreen 设置全屏模式（需调用 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleDebug 切换调试信息显示，返回新的状态
func (sm *SettingsManager) ToggleDebug() bool {
	sm.settings.ShowDebug = !sm.settings.ShowDebug
	return sm.settings.ShowDebug
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
