package systems

import (
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/decker502/cabin/pkg/metrics"
	"github.com/rs/zerolog"
)

// ChoreographyCleanupSystem 响应结束信号，销毁导演及其全部演员
//
// 这是编排所属实体唯一的销毁路径。找不到导演（已被销毁、重复信号）时静默忽略。
// 实体只是被标记，真正的移除发生在帧末的 RemoveMarkedEntities。
type ChoreographyCleanupSystem struct {
	entityManager *ecs.EntityManager
	reader        *event.Reader[event.ChoreographyFinished]
	metrics       *metrics.Choreography
	log           zerolog.Logger
}

// NewChoreographyCleanupSystem 创建清理系统
func NewChoreographyCleanupSystem(em *ecs.EntityManager, finished *event.Bus[event.ChoreographyFinished]) *ChoreographyCleanupSystem {
	return &ChoreographyCleanupSystem{
		entityManager: em,
		reader:        finished.NewReader(),
		metrics:       metrics.Default(),
		log:           logging.For("ChoreographyCleanup"),
	}
}

// Update 处理本帧收到的结束信号
func (s *ChoreographyCleanupSystem) Update(deltaTime float64) {
	for _, sig := range s.reader.Read() {
		if s.entityManager.IsMarkedForDestroy(sig.Director) {
			continue
		}
		director, err := ecs.LookupComponent[*components.DirectorComponent](s.entityManager, sig.Director)
		if err != nil {
			continue
		}

		for _, actor := range director.Actors {
			s.entityManager.DestroyEntity(actor)
		}
		s.entityManager.DestroyEntity(sig.Director)

		s.metrics.EntitiesDestroyed(len(director.Actors) + 1)
		s.log.Debug().
			Uint64("director", uint64(sig.Director)).
			Str("play", sig.PlayID.String()).
			Int("actors", len(director.Actors)).
			Msg("choreography cleaned up")
	}
}
