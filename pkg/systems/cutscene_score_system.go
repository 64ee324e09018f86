package systems

import (
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ScoreSink 接收分数变化（由 game.ScoreManager 实现）
type ScoreSink interface {
	AddScore(points int)
	ResetScore()
}

// CutsceneScoreSystem 过场结束时加分，点击重置按钮时清零
//
// 只有带 CutsceneComponent 的导演才计分。同一次演出的重复信号只计一次。
type CutsceneScoreSystem struct {
	entityManager *ecs.EntityManager
	finished      *event.Reader[event.ChoreographyFinished]
	buttons       *event.Reader[event.ButtonPressed]
	sink          ScoreSink
	bonus         int
	scored        map[uuid.UUID]struct{}
	log           zerolog.Logger
}

// NewCutsceneScoreSystem 创建计分系统
func NewCutsceneScoreSystem(em *ecs.EntityManager, signals *event.Signals, sink ScoreSink, bonus int) *CutsceneScoreSystem {
	return &CutsceneScoreSystem{
		entityManager: em,
		finished:      signals.Finished.NewReader(),
		buttons:       signals.Buttons.NewReader(),
		sink:          sink,
		bonus:         bonus,
		scored:        make(map[uuid.UUID]struct{}),
		log:           logging.For("CutsceneScore"),
	}
}

// Update 处理本帧的信号
func (s *CutsceneScoreSystem) Update(deltaTime float64) {
	for _, press := range s.buttons.Read() {
		if press.Type == components.ButtonTypeReset {
			s.sink.ResetScore()
			s.log.Info().Msg("score reset")
		}
	}

	for _, sig := range s.finished.Read() {
		cutscene, ok := ecs.GetComponent[*components.CutsceneComponent](s.entityManager, sig.Director)
		if !ok {
			continue
		}
		if _, done := s.scored[sig.PlayID]; done {
			continue
		}
		s.scored[sig.PlayID] = struct{}{}

		s.sink.AddScore(s.bonus)
		s.log.Info().
			Str("cutscene", cutscene.Name).
			Int("bonus", s.bonus).
			Msg("cutscene completed")
	}
}
