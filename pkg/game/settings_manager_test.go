package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStorage 在临时 HOME 下打开测试专用的 gdata 存储
// 环境不支持时跳过测试
func openTestStorage(t *testing.T, testName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	appName := fmt.Sprintf("cabin_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("cannot create gdata manager: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.CueEnabled)
	assert.Equal(t, 0.5, s.CueVolume)
	assert.False(t, s.Fullscreen)
	assert.False(t, s.ShowDebug)
}

func TestSettingsManagerDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil)
	require.NotNil(t, sm.GetSettings())

	sm.SetCueVolume(0.9)
	assert.NoError(t, sm.Save(), "降级模式下保存不报错")
	assert.NoError(t, sm.Load())
	assert.Equal(t, 0.5, sm.GetSettings().CueVolume, "降级模式重新加载回到默认值")
}

func TestSettingsManagerClampVolume(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"正常值", 0.3, 0.3},
		{"负数", -1, 0},
		{"超过上限", 1.5, 1},
		{"边界 0", 0, 0},
		{"边界 1", 1, 1},
	}

	sm := NewSettingsManager(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetCueVolume(tt.input)
			assert.Equal(t, tt.want, sm.GetSettings().CueVolume)
		})
	}
}

func TestSettingsManagerPersistence(t *testing.T) {
	storage := openTestStorage(t, "settings")

	sm := NewSettingsManager(storage)
	sm.SetCueEnabled(false)
	sm.SetCueVolume(0.25)
	sm.SetFullscreen(true)
	assert.True(t, sm.ToggleDebug())
	require.NoError(t, sm.Save())

	reloaded := NewSettingsManager(storage)
	s := reloaded.GetSettings()
	assert.False(t, s.CueEnabled)
	assert.Equal(t, 0.25, s.CueVolume)
	assert.True(t, s.Fullscreen)
	assert.True(t, s.ShowDebug)
}

func TestSettingsManagerCorruptData(t *testing.T) {
	storage := openTestStorage(t, "settings_corrupt")
	require.NoError(t, storage.SaveObjectProp(settingsObject, settingsProperty, []byte("cueVolume: [not a number")))

	sm := NewSettingsManager(storage)
	assert.Equal(t, DefaultSettings(), sm.GetSettings(), "损坏的存档回退到默认设置")
	assert.Error(t, sm.Load())
}
