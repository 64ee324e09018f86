package systems

import (
	"fmt"

	"github.com/decker502/cabin/pkg/animation"
	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/decker502/cabin/pkg/metrics"
	"github.com/rs/zerolog"
)

// ChoreographyDirectorSystem 推进所有导演的主时钟并派发到期事件
//
// 每帧对每个运行中的导演：
//  1. t0 = Time, t1 = Time + dt, Time = t1
//  2. 按列表顺序派发时间戳落在 [t0, t1) 内的事件
//  3. EndChoreography：发出结束信号、停用导演和全部演员、丢弃本帧剩余事件
//
// 找不到演员（下标越界、实体已销毁、缺少演员组件）只记录警告并跳过该事件。
// dt 过大时被整段跳过的事件不会补发。
type ChoreographyDirectorSystem struct {
	entityManager *ecs.EntityManager
	finished      *event.Bus[event.ChoreographyFinished]
	metrics       *metrics.Choreography
	log           zerolog.Logger
}

// NewChoreographyDirectorSystem 创建导演系统
func NewChoreographyDirectorSystem(em *ecs.EntityManager, finished *event.Bus[event.ChoreographyFinished]) *ChoreographyDirectorSystem {
	return &ChoreographyDirectorSystem{
		entityManager: em,
		finished:      finished,
		metrics:       metrics.Default(),
		log:           logging.For("ChoreographyDirector"),
	}
}

// Update 推进所有导演
func (s *ChoreographyDirectorSystem) Update(deltaTime float64) {
	directors := ecs.GetEntitiesWith1[*components.DirectorComponent](s.entityManager)
	for _, id := range directors {
		director, ok := ecs.GetComponent[*components.DirectorComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.step(id, director, deltaTime)
	}
}

func (s *ChoreographyDirectorSystem) step(id ecs.EntityID, director *components.DirectorComponent, deltaTime float64) {
	if !director.Active {
		return
	}

	t0 := director.Time
	t1 := t0 + deltaTime
	director.Time = t1

	if director.Choreography == nil {
		return
	}

	director.Choreography.EventsInWindow(t0, t1, func(i int, te choreography.TimedEvent) bool {
		if _, isEnd := te.Event.(choreography.EndChoreography); isEnd {
			s.finish(id, director, te.Timestamp)
			return false
		}
		s.dispatch(director, i, te.Event)
		return true
	})
}

// dispatch 把单个演员事件应用到演员状态上
func (s *ChoreographyDirectorSystem) dispatch(director *components.DirectorComponent, eventIndex int, e choreography.Event) {
	index, ok := choreography.ActorIndex(e)
	if !ok {
		panic(fmt.Sprintf("choreography: event %d (%T) has no actor index", eventIndex, e))
	}

	name := choreography.Name(e)
	actor, err := s.resolveActor(director, index)
	if err != nil {
		s.metrics.SoftFailure(name)
		s.log.Warn().
			Str("play", director.PlayID.String()).
			Int("index", index).
			Str("event", name).
			Err(err).
			Msg("actor unavailable, event skipped")
		return
	}

	switch ev := e.(type) {
	case choreography.ActivateActor:
		actor.Active = true
	case choreography.DeactivateActor:
		actor.Active = false
	case choreography.SetAnimation:
		actor.Animation = animation.Clone(ev.Animation)
	case choreography.SetActorsTime:
		actor.Time = ev.Time
	case choreography.SetActorsOffset:
		actor.Offset = ev.Offset
	default:
		panic(fmt.Sprintf("choreography: unhandled event %T", e))
	}

	s.metrics.EventDispatched(name)
}

// finish 执行 EndChoreography
func (s *ChoreographyDirectorSystem) finish(id ecs.EntityID, director *components.DirectorComponent, timestamp float64) {
	s.finished.Send(event.ChoreographyFinished{Director: id, PlayID: director.PlayID})
	director.Active = false

	for index := range director.Actors {
		actor, err := s.resolveActor(director, index)
		if err != nil {
			s.log.Warn().
				Str("play", director.PlayID.String()).
				Int("index", index).
				Err(err).
				Msg("cannot deactivate actor at end of choreography")
			continue
		}
		actor.Active = false
	}

	s.metrics.PlayFinished()
	s.log.Debug().
		Uint64("director", uint64(id)).
		Str("play", director.PlayID.String()).
		Float64("at", timestamp).
		Msg("choreography ended")
}

// resolveActor 按下标查找演员组件
func (s *ChoreographyDirectorSystem) resolveActor(director *components.DirectorComponent, index int) (*components.AnimatedActorComponent, error) {
	if err := choreography.ResolveIndex(index, len(director.Actors)); err != nil {
		return nil, err
	}
	return ecs.LookupComponent[*components.AnimatedActorComponent](s.entityManager, director.Actors[index])
}
