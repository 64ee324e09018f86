package systems

import (
	"testing"

	"github.com/decker502/cabin/pkg/animation"
	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/decker502/cabin/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDirectorWindowInclusion 窗口左闭右开：5.0 本帧触发，6.0 下一帧触发
func TestDirectorWindowInclusion(t *testing.T) {
	w := newTestWorld()
	c := choreography.New(1, utils.Vec3Zero,
		choreography.At(5.0, choreography.ActivateActor{Index: 0}),
		choreography.At(6.0, choreography.SetActorsTime{Index: 0, Time: 42}),
	)
	director, actors := w.stage(t, c, 1)
	w.director(t, director).Time = 5.0

	w.pipeline.Director.Update(1.0)
	actor := w.actor(t, actors[0])
	assert.True(t, actor.Active, "时间戳 5.0 在 [5, 6) 内")
	assert.Equal(t, 0.0, actor.Time, "时间戳 6.0 不在 [5, 6) 内")
	assert.Equal(t, 6.0, w.director(t, director).Time)

	w.pipeline.Director.Update(1.0)
	assert.Equal(t, 42.0, actor.Time, "时间戳 6.0 在 [6, 7) 内触发")
}

// TestDirectorListOrderWithinFrame 同一帧内按列表顺序派发
func TestDirectorListOrderWithinFrame(t *testing.T) {
	w := newTestWorld()
	c := choreography.New(1, utils.Vec3Zero,
		choreography.At(0.9, choreography.SetActorsTime{Index: 0, Time: 1}),
		choreography.At(0.1, choreography.SetActorsTime{Index: 0, Time: 2}),
	)
	_, actors := w.stage(t, c, 1)

	w.pipeline.Director.Update(1.0)
	assert.Equal(t, 2.0, w.actor(t, actors[0]).Time, "列表中靠后的事件最后生效")
}

// TestDirectorAppliesEveryEventKind 每种事件都作用到演员状态上
func TestDirectorAppliesEveryEventKind(t *testing.T) {
	w := newTestWorld()
	path := animation.Circle(2, 1)
	offset := utils.NewVec3(1, 2, 3)
	c := choreography.New(1, utils.Vec3Zero,
		choreography.At(0, choreography.ActivateActor{Index: 0}),
		choreography.At(0, choreography.SetAnimation{Index: 0, Animation: path}),
		choreography.At(0, choreography.SetActorsTime{Index: 0, Time: 7}),
		choreography.At(0, choreography.SetActorsOffset{Index: 0, Offset: offset}),
		choreography.At(1, choreography.DeactivateActor{Index: 0}),
	)
	_, actors := w.stage(t, c, 1)

	w.pipeline.Director.Update(0.5)
	actor := w.actor(t, actors[0])
	assert.True(t, actor.Active)
	assert.Equal(t, path, actor.Animation)
	assert.Equal(t, 7.0, actor.Time)
	assert.Equal(t, offset, actor.Offset)

	w.pipeline.Director.Update(0.5)
	assert.True(t, actor.Active, "1.0 不在 [0.5, 1.0) 内")
	w.pipeline.Director.Update(0.5)
	assert.False(t, actor.Active)
}

// TestDirectorHandsActorsOwnPathCopy 每个演员拿到路径的独立副本，修改它不会影响脚本和后续演出
func TestDirectorHandsActorsOwnPathCopy(t *testing.T) {
	w := newTestWorld()
	path := animation.NewSum(animation.Circle(1, 1), animation.Stationary{})
	c := choreography.New(2, utils.Vec3Zero,
		choreography.At(0, choreography.SetAnimation{Index: 0, Animation: path}),
		choreography.At(0, choreography.SetAnimation{Index: 1, Animation: path}),
	)
	_, first := w.stage(t, c, 2)
	w.pipeline.Director.Update(0.5)

	a := w.actor(t, first[0]).Animation.(*animation.Sum)
	b := w.actor(t, first[1]).Animation.(*animation.Sum)
	require.NotSame(t, a, b, "两个演员不共享路径")
	require.NotSame(t, path, a)

	a.A = animation.Circle(50, 1)
	assert.InDelta(t, 1.0, b.GetPoint(0).X, epsilon)
	assert.InDelta(t, 1.0, c.At(0).Event.(choreography.SetAnimation).Animation.GetPoint(0).X, epsilon, "脚本不受影响")

	// 同一脚本再次登台，新演员拿到的仍是原始路径
	_, second := w.stage(t, c, 2)
	w.pipeline.Director.Update(0.5)
	replay := w.actor(t, second[0]).Animation
	assert.NotSame(t, a, replay)
	assert.InDelta(t, 1.0, replay.GetPoint(0).X, epsilon)
}

// TestDirectorSoftFailOnBadIndex 下标越界只记录警告，后续事件照常派发
func TestDirectorSoftFailOnBadIndex(t *testing.T) {
	buf, restore := logging.Capture()
	defer restore()

	w := newTestWorld()
	c := choreography.New(2, utils.Vec3Zero,
		choreography.At(0, choreography.ActivateActor{Index: 3}),
		choreography.At(0, choreography.ActivateActor{Index: 1}),
		choreography.At(1, choreography.SetActorsTime{Index: 3, Time: 9}),
		choreography.At(1, choreography.DeactivateActor{Index: 1}),
	)
	director, actors := w.stage(t, c, 2)

	require.NotPanics(t, func() { w.pipeline.Update(1.0) })
	assert.True(t, w.actor(t, actors[1]).Active, "同一帧中越界事件之后的事件仍然派发")
	assert.Contains(t, buf.String(), "actor unavailable, event skipped")
	assert.Contains(t, buf.String(), `"index":3`)
	assert.Contains(t, buf.String(), "actor index out of range")

	require.NotPanics(t, func() { w.pipeline.Update(1.0) })
	assert.False(t, w.actor(t, actors[1]).Active, "下一帧照常运行")
	assert.True(t, w.director(t, director).Active)
}

// TestDirectorSoftFailOnDestroyedActor 演员中途被销毁
func TestDirectorSoftFailOnDestroyedActor(t *testing.T) {
	buf, restore := logging.Capture()
	defer restore()

	w := newTestWorld()
	c := choreography.New(2, utils.Vec3Zero,
		choreography.At(1, choreography.ActivateActor{Index: 0}),
		choreography.At(1, choreography.ActivateActor{Index: 1}),
		choreography.At(2, choreography.EndChoreography{}),
	)
	director, actors := w.stage(t, c, 2)

	w.em.DestroyEntity(actors[0])
	w.em.RemoveMarkedEntities()

	w.pipeline.Update(1.0)
	w.pipeline.Update(1.0)
	assert.True(t, w.actor(t, actors[1]).Active)
	assert.Contains(t, buf.String(), "entity not found")

	reader := w.signals.Finished.NewReader()
	w.pipeline.Director.Update(1.0)
	assert.Len(t, reader.Read(), 1, "结束时找不到演员也照常发出信号")
	assert.False(t, w.actor(t, actors[1]).Active)
	assert.False(t, w.director(t, director).Active)
	assert.Contains(t, buf.String(), "cannot deactivate actor at end of choreography")
}

// TestDirectorEndDropsRestOfWindow 结束事件之后的同帧事件被丢弃
func TestDirectorEndDropsRestOfWindow(t *testing.T) {
	w := newTestWorld()
	c := choreography.New(1, utils.Vec3Zero,
		choreography.At(0, choreography.EndChoreography{}),
		choreography.At(0, choreography.ActivateActor{Index: 0}),
	)
	director, actors := w.stage(t, c, 1)

	w.pipeline.Director.Update(1.0)
	assert.False(t, w.actor(t, actors[0]).Active)
	assert.False(t, w.director(t, director).Active)
}

// TestDirectorIgnoresEventsAfterEnd 结束之后的事件不再派发，时钟也不再推进
func TestDirectorIgnoresEventsAfterEnd(t *testing.T) {
	w := newTestWorld()
	c := choreography.New(1, utils.Vec3Zero,
		choreography.At(1, choreography.EndChoreography{}),
		choreography.At(2, choreography.ActivateActor{Index: 0}),
	)
	director, actors := w.stage(t, c, 1)

	for i := 0; i < 4; i++ {
		w.pipeline.Director.Update(1.0)
	}
	assert.False(t, w.actor(t, actors[0]).Active)
	assert.Equal(t, 2.0, w.director(t, director).Time)
}

// TestDirectorLargeDeltaNoCatchUp 大步长只派发窗口内的事件，结束后被跳过的事件不补发
func TestDirectorLargeDeltaNoCatchUp(t *testing.T) {
	w := newTestWorld()
	reader := w.signals.Finished.NewReader()
	c := choreography.New(1, utils.Vec3Zero,
		choreography.At(0.1, choreography.ActivateActor{Index: 0}),
		choreography.At(0.2, choreography.EndChoreography{}),
		choreography.At(0.3, choreography.SetActorsTime{Index: 0, Time: 99}),
	)
	_, actors := w.stage(t, c, 1)
	actor := w.actor(t, actors[0])

	w.pipeline.Director.Update(10.0)
	assert.Len(t, reader.Read(), 1)
	assert.False(t, actor.Active)
	assert.Equal(t, 0.0, actor.Time)
}

// TestDirectorWithoutEndRunsForever 没有结束事件的导演一直推进时钟
func TestDirectorWithoutEndRunsForever(t *testing.T) {
	w := newTestWorld()
	c := choreography.New(0, utils.Vec3Zero)
	director, _ := w.stage(t, c, 0)

	for i := 0; i < 100; i++ {
		w.pipeline.Update(0.5)
	}
	d := w.director(t, director)
	assert.True(t, d.Active)
	assert.InDelta(t, 50.0, d.Time, epsilon)
}

// TestDirectorPanicsOnInvalidEvent 无法识别的事件是逻辑缺陷
func TestDirectorPanicsOnInvalidEvent(t *testing.T) {
	w := newTestWorld()
	c := choreography.New(1, utils.Vec3Zero, choreography.At(0, nil))
	w.stage(t, c, 1)

	assert.Panics(t, func() { w.pipeline.Director.Update(1.0) })
}

// TestDirectorsAreIndependent 多个导演共享演员但互不影响
func TestDirectorsAreIndependent(t *testing.T) {
	w := newTestWorld()
	fast := choreography.New(1, utils.Vec3Zero,
		choreography.At(0, choreography.ActivateActor{Index: 0}),
		choreography.At(1, choreography.EndChoreography{}),
	)
	slow := choreography.New(1, utils.Vec3Zero,
		choreography.At(3, choreography.ActivateActor{Index: 0}),
	)
	d1, _ := w.stage(t, fast, 1)
	d2, _ := w.stage(t, slow, 1)

	w.pipeline.Director.Update(1.0)
	w.pipeline.Director.Update(1.0)
	assert.False(t, w.director(t, d1).Active)
	assert.True(t, w.director(t, d2).Active)
	assert.Equal(t, 2.0, w.director(t, d2).Time)
}

// TestDirectorSignalCarriesPlayID 结束信号携带导演和演出ID
func TestDirectorSignalCarriesPlayID(t *testing.T) {
	w := newTestWorld()
	reader := w.signals.Finished.NewReader()
	c := choreography.New(0, utils.Vec3Zero, choreography.At(0, choreography.EndChoreography{}))
	director, _ := w.stage(t, c, 0)
	playID := w.director(t, director).PlayID

	w.pipeline.Director.Update(0.1)
	signals := reader.Read()
	require.Len(t, signals, 1)
	assert.Equal(t, director, signals[0].Director)
	assert.Equal(t, playID, signals[0].PlayID)
}
