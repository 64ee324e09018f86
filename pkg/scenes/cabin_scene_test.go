package scenes

import (
	"image/color"
	"testing"

	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/config"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/game"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/decker502/cabin/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInput 可控的输入源，点击只生效一帧
type fakeInput struct {
	x, y   int
	click  bool
	toggle bool
}

func (f *fakeInput) CursorPosition() (int, int) { return f.x, f.y }

func (f *fakeInput) JustClicked() bool {
	c := f.click
	f.click = false
	return c
}

func (f *fakeInput) DebugToggled() bool {
	t := f.toggle
	f.toggle = false
	return t
}

// pointAt 把光标移到舱室坐标 p
func (f *fakeInput) pointAt(vp utils.CabinViewport, p utils.Vec2) {
	x, y := vp.CabinToScreen(p)
	f.x, f.y = int(x), int(y)
}

type fakeCue struct {
	played []float64
}

func (f *fakeCue) PlayTone(frequency, duration float64) error {
	f.played = append(f.played, frequency)
	return nil
}

func newTestScene(t *testing.T) (*CabinScene, *fakeInput, *fakeCue, *game.ScoreManager) {
	t.Helper()
	_, restore := logging.Capture()
	t.Cleanup(restore)

	input := &fakeInput{}
	cue := &fakeCue{}
	score := game.NewScoreManager(nil)
	scene := NewCabinScene(CabinDeps{
		Config: config.Default(),
		Score:  score,
		Cue:    cue,
		Input:  input,
	})
	return scene, input, cue, score
}

func runFrames(s *CabinScene, n int, dt float64) {
	for i := 0; i < n; i++ {
		s.Update(dt)
	}
}

func TestCabinSceneStagesThoughts(t *testing.T) {
	scene, _, _, _ := newTestScene(t)
	em := scene.EntityManager()

	require.Len(t, scene.thoughts, config.ThoughtCount)
	for _, id := range scene.thoughts {
		actor, ok := ecs.GetComponent[*components.AnimatedActorComponent](em, id)
		require.True(t, ok)
		assert.False(t, actor.Active, "第一帧之前尚未激活")
	}

	runFrames(scene, 1, 0.1)

	for _, id := range scene.thoughts {
		actor, _ := ecs.GetComponent[*components.AnimatedActorComponent](em, id)
		assert.True(t, actor.Active, "第一帧激活并开始环绕")
	}

	// 想法在圆周上：到圆心的距离等于半径
	center := utils.NewVec3(0, 0.5, 10)
	for _, id := range scene.thoughts {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		assert.InDelta(t, config.ThoughtOrbitRadius, transform.Position.Sub(center).Length(), 1e-6)
	}
}

func TestCabinSceneMergeCutscene(t *testing.T) {
	scene, input, cue, score := newTestScene(t)
	em := scene.EntityManager()
	before := em.EntityCount()

	input.pointAt(scene.viewport, utils.Vec2{X: config.MergeButtonX, Y: config.MergeButtonY})
	input.click = true
	runFrames(scene, 1, 0.1)

	require.True(t, scene.MergeRunning(), "点击合并按钮后帘幕登台")
	assert.Equal(t, before+3, em.EntityCount(), "两片帘幕加一个导演")

	// 过场进行中再次点击被忽略
	input.click = true
	runFrames(scene, 1, 0.1)
	assert.Equal(t, before+3, em.EntityCount())

	// 帘幕过场总时长 2.6 秒，推进到结束之后
	runFrames(scene, 40, 0.1)

	assert.False(t, scene.MergeRunning())
	assert.Equal(t, before, em.EntityCount(), "帘幕和导演都已清理")
	assert.Equal(t, config.CutsceneScoreBonus, score.Score())
	assert.Equal(t, []float64{config.CueFrequency}, cue.played)
}

func TestCabinSceneResetButton(t *testing.T) {
	scene, input, _, score := newTestScene(t)
	score.AddScore(500)

	input.pointAt(scene.viewport, utils.Vec2{X: config.ResetButtonX, Y: config.ResetButtonY})
	input.click = true
	runFrames(scene, 1, 0.1)

	assert.Equal(t, 0, score.Score())
	assert.Equal(t, 500, score.Best())
	assert.False(t, scene.MergeRunning(), "重置按钮不会触发过场")
}

func TestCabinSceneHoverFade(t *testing.T) {
	scene, input, _, _ := newTestScene(t)
	em := scene.EntityManager()

	input.pointAt(scene.viewport, utils.Vec2{X: config.MergeButtonX, Y: config.MergeButtonY})
	runFrames(scene, 1, 0.1)

	progress := scene.hover[scene.mergeButton]
	assert.InDelta(t, 0.6, progress, 1e-9)
	assert.Zero(t, scene.hover[scene.resetButton])

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, scene.mergeButton)
	assert.NotEqual(t, sprite.Color, scene.spriteColor(scene.mergeButton, sprite), "悬停时颜色变亮")

	runFrames(scene, 5, 0.1)
	assert.Equal(t, 1.0, scene.hover[scene.mergeButton])

	// 移开光标后逐渐恢复
	input.x, input.y = 0, 0
	runFrames(scene, 5, 0.1)
	assert.Zero(t, scene.hover[scene.mergeButton])
	assert.Equal(t, sprite.Color, scene.spriteColor(scene.mergeButton, sprite))
}

func TestCabinSceneResize(t *testing.T) {
	scene, input, _, score := newTestScene(t)

	scene.Resize(1600, 900)
	assert.Equal(t, 1600.0, scene.viewport.ScreenWidth)

	// 忽略非法尺寸
	scene.Resize(0, 900)
	assert.Equal(t, 1600.0, scene.viewport.ScreenWidth)

	// 新尺寸下点击仍然命中按钮
	score.AddScore(10)
	input.pointAt(scene.viewport, utils.Vec2{X: config.ResetButtonX, Y: config.ResetButtonY})
	input.click = true
	runFrames(scene, 1, 0.1)
	assert.Equal(t, 0, score.Score())
}

func TestCabinSceneDebugToggle(t *testing.T) {
	scene, input, _, _ := newTestScene(t)
	require.False(t, scene.settingsManager.GetSettings().ShowDebug)

	input.toggle = true
	runFrames(scene, 1, 0.1)
	assert.True(t, scene.settingsManager.GetSettings().ShowDebug)

	runFrames(scene, 1, 0.1)
	assert.True(t, scene.settingsManager.GetSettings().ShowDebug, "只在按下的那一帧切换")
}

func TestCabinSceneSaveOnExitDegraded(t *testing.T) {
	scene, _, _, _ := newTestScene(t)
	assert.True(t, scene.SaveOnExit())
}

func TestDrawOrderByDepth(t *testing.T) {
	em := ecs.NewEntityManager()
	add := func(z float64) ecs.EntityID {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.TransformComponent{Position: utils.NewVec3(0, 0, z)})
		ecs.AddComponent(em, id, &components.SpriteComponent{Size: utils.Vec2{X: 1, Y: 1}, Color: color.RGBA{A: 255}})
		return id
	}
	front := add(200)
	back := add(1)
	middle := add(100)
	tie := add(100)

	// 没有精灵的实体不参与绘制
	bare := em.CreateEntity()
	ecs.AddComponent(em, bare, &components.TransformComponent{})

	assert.Equal(t, []ecs.EntityID{back, middle, tie, front}, drawOrder(em))
}

func TestFactory(t *testing.T) {
	_, restore := logging.Capture()
	defer restore()

	factory := NewFactory(CabinDeps{Input: &fakeInput{}})
	assert.NotNil(t, factory(CabinSceneName))
	assert.Nil(t, factory("garden"))
}
