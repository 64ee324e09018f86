package game

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/decker502/cabin/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// ErrInvalidTone 频率或时长不合法
var ErrInvalidTone = errors.New("invalid tone")

// toneFade 每个提示音首尾的淡入淡出时长（秒），避免爆音
const toneFade = 0.01

// AudioManager 提示音播放器
//
// 提示音在内存中合成（正弦波，16 位立体声 PCM），不依赖任何音频资源文件。
// 音量和开关从 SettingsManager 读取。audioContext 为 nil 时为静音的降级模式。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	players         []*audio.Player
	log             zerolog.Logger
}

// NewAudioManager 创建提示音播放器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音）
//   - sm: 设置管理器，可为 nil（使用默认设置）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		log:             logging.For("AudioManager"),
	}
}

// PlayTone 播放一个提示音
func (am *AudioManager) PlayTone(frequency, duration float64) error {
	if frequency <= 0 || duration <= 0 {
		return ErrInvalidTone
	}

	settings := DefaultSettings()
	if am.settingsManager != nil {
		settings = am.settingsManager.GetSettings()
	}
	if am.audioContext == nil || !settings.CueEnabled {
		return nil
	}

	pcm := SynthesizeTone(am.audioContext.SampleRate(), frequency, duration)
	player := am.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(settings.CueVolume)
	player.Play()

	am.retain(player)
	am.log.Debug().Float64("frequency", frequency).Float64("duration", duration).Msg("cue played")
	return nil
}

// retain 持有播放中的播放器，释放已经播放完的
func (am *AudioManager) retain(player *audio.Player) {
	alive := am.players[:0]
	for _, p := range am.players {
		if p.IsPlaying() {
			alive = append(alive, p)
		} else {
			_ = p.Close()
		}
	}
	am.players = append(alive, player)
}

// SynthesizeTone 合成正弦波提示音：16 位有符号小端、双声道交错 PCM
func SynthesizeTone(sampleRate int, frequency, duration float64) []byte {
	n := int(float64(sampleRate) * duration)
	if n <= 0 {
		return nil
	}

	fade := int(float64(sampleRate) * toneFade)
	if fade*2 > n {
		fade = n / 2
	}

	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 1.0
		switch {
		case fade > 0 && i < fade:
			amp = float64(i) / float64(fade)
		case fade > 0 && i >= n-fade:
			amp = float64(n-1-i) / float64(fade)
		}

		v := math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)) * amp * 0.8
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
