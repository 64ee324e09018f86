package systems

import (
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/rs/zerolog"
)

// CuePlayer 播放提示音（由 game.ToneCuePlayer 实现）
type CuePlayer interface {
	PlayTone(frequency, duration float64) error
}

// AudioCueSystem 导演结束时播放其 AudioCueComponent 描述的提示音
type AudioCueSystem struct {
	entityManager *ecs.EntityManager
	reader        *event.Reader[event.ChoreographyFinished]
	player        CuePlayer
	log           zerolog.Logger

	// Muted 静音时丢弃所有提示音
	Muted bool
}

// NewAudioCueSystem 创建提示音系统，player 为 nil 时等价于静音
func NewAudioCueSystem(em *ecs.EntityManager, finished *event.Bus[event.ChoreographyFinished], player CuePlayer) *AudioCueSystem {
	return &AudioCueSystem{
		entityManager: em,
		reader:        finished.NewReader(),
		player:        player,
		log:           logging.For("AudioCue"),
	}
}

// Update 处理本帧的结束信号
func (s *AudioCueSystem) Update(deltaTime float64) {
	signals := s.reader.Read()
	if s.Muted || s.player == nil {
		return
	}

	for _, sig := range signals {
		cue, ok := ecs.GetComponent[*components.AudioCueComponent](s.entityManager, sig.Director)
		if !ok {
			continue
		}
		if err := s.player.PlayTone(cue.Frequency, cue.Duration); err != nil {
			s.log.Warn().Err(err).Float64("frequency", cue.Frequency).Msg("failed to play cue")
		}
	}
}
