package systems

import (
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/rs/zerolog"
)

// ChoreographyDebugSystem 记录每个结束信号
type ChoreographyDebugSystem struct {
	entityManager *ecs.EntityManager
	reader        *event.Reader[event.ChoreographyFinished]
	log           zerolog.Logger

	// Stopped 已记录的结束信号数量
	Stopped int
}

// NewChoreographyDebugSystem 创建调试系统
func NewChoreographyDebugSystem(em *ecs.EntityManager, finished *event.Bus[event.ChoreographyFinished]) *ChoreographyDebugSystem {
	return &ChoreographyDebugSystem{
		entityManager: em,
		reader:        finished.NewReader(),
		log:           logging.For("ChoreographyDebug"),
	}
}

// Update 记录本帧收到的结束信号
func (s *ChoreographyDebugSystem) Update(deltaTime float64) {
	for _, sig := range s.reader.Read() {
		s.Stopped++

		entry := s.log.Info().
			Uint64("director", uint64(sig.Director)).
			Str("play", sig.PlayID.String())

		if cutscene, ok := ecs.GetComponent[*components.CutsceneComponent](s.entityManager, sig.Director); ok {
			entry = entry.Str("cutscene", cutscene.Name)
		}
		if !s.entityManager.EntityExists(sig.Director) {
			entry = entry.Bool("known", false)
		}

		entry.Msg("choreography stopped")
	}
}
