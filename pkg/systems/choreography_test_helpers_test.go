package systems

import (
	"testing"

	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/entities"
	"github.com/decker502/cabin/pkg/event"
	"github.com/decker502/cabin/pkg/utils"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

// testWorld 测试用的最小运行环境
type testWorld struct {
	em       *ecs.EntityManager
	signals  *event.Signals
	pipeline *ChoreographyPipeline
}

func newTestWorld() *testWorld {
	em := ecs.NewEntityManager()
	signals := event.NewSignals()
	return &testWorld{
		em:       em,
		signals:  signals,
		pipeline: NewChoreographyPipeline(em, signals),
	}
}

// stage 创建 n 个带 Transform 的演员并登台
func (w *testWorld) stage(t *testing.T, c *choreography.Choreography, n int) (ecs.EntityID, []ecs.EntityID) {
	t.Helper()
	actors := make([]ecs.EntityID, n)
	for i := range actors {
		actors[i] = w.em.CreateEntity()
		ecs.AddComponent(w.em, actors[i], &components.TransformComponent{})
	}
	director := entities.OrganizePlay(w.em, c, actors)
	return director, actors
}

func (w *testWorld) actor(t *testing.T, id ecs.EntityID) *components.AnimatedActorComponent {
	t.Helper()
	actor, ok := ecs.GetComponent[*components.AnimatedActorComponent](w.em, id)
	require.True(t, ok, "actor %d", id)
	return actor
}

func (w *testWorld) director(t *testing.T, id ecs.EntityID) *components.DirectorComponent {
	t.Helper()
	director, ok := ecs.GetComponent[*components.DirectorComponent](w.em, id)
	require.True(t, ok, "director %d", id)
	return director
}

func (w *testWorld) position(t *testing.T, id ecs.EntityID) utils.Vec3 {
	t.Helper()
	transform, ok := ecs.GetComponent[*components.TransformComponent](w.em, id)
	require.True(t, ok, "transform %d", id)
	return transform.Position
}
