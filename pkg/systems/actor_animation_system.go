package systems

import (
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
)

// ActorAnimationSystem 驱动激活中的演员
//
// 对每个激活的演员：先按当前本地时钟求位置并写入 TransformComponent，再推进时钟。
// 未激活的演员既不推进也不重新定位，保持最后的位置。
// 必须在导演系统之后、清理系统之前运行。
type ActorAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewActorAnimationSystem 创建演员动画系统
func NewActorAnimationSystem(em *ecs.EntityManager) *ActorAnimationSystem {
	return &ActorAnimationSystem{entityManager: em}
}

// Update 推进所有激活的演员
func (s *ActorAnimationSystem) Update(deltaTime float64) {
	actors := ecs.GetEntitiesWith1[*components.AnimatedActorComponent](s.entityManager)
	for _, id := range actors {
		actor, ok := ecs.GetComponent[*components.AnimatedActorComponent](s.entityManager, id)
		if !ok || !actor.Active {
			continue
		}

		// 没有 Transform 的演员照常推进时钟，只是不发布位置
		if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
			transform.Position = actor.CurrentPoint()
		}

		actor.Time += deltaTime
	}
}
