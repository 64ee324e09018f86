package entities

import (
	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/decker502/cabin/pkg/metrics"
	"github.com/google/uuid"
)

// OrganizePlay 让一组实体按编排脚本登台，返回新建的导演实体ID
//
// 步骤：
//  1. 演员数量与脚本期望不一致时记录警告，但继续执行
//  2. 为每个演员挂上默认状态的 AnimatedActorComponent（覆盖已有的演员状态）
//  3. 创建运行中的导演实体，演员列表的顺序即事件下标空间
//
// 同一个演员可以同时属于多个导演，导演之间不做仲裁。
func OrganizePlay(em *ecs.EntityManager, c *choreography.Choreography, actors []ecs.EntityID) ecs.EntityID {
	log := logging.For("OrganizePlay")

	if len(actors) != c.NActors() {
		log.Warn().
			Int("expected", c.NActors()).
			Int("got", len(actors)).
			Msg("actor count does not match choreography")
	}

	for i, actor := range actors {
		if !em.EntityExists(actor) {
			log.Warn().Int("index", i).Uint64("actor", uint64(actor)).Msg("staging a non-existent actor")
			continue
		}
		ecs.AddComponent(em, actor, components.NewAnimatedActorComponent(c.InitialPosition()))
	}

	cast := make([]ecs.EntityID, len(actors))
	copy(cast, actors)

	director := em.CreateEntity()
	playID := uuid.New()
	ecs.AddComponent(em, director, &components.DirectorComponent{
		Active:       true,
		Time:         0,
		Actors:       cast,
		Choreography: c,
		PlayID:       playID,
	})

	metrics.Default().PlayStaged(len(actors))
	log.Debug().
		Uint64("director", uint64(director)).
		Str("play", playID.String()).
		Int("actors", len(actors)).
		Int("events", c.Len()).
		Msg("play organized")

	return director
}
