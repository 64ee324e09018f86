package scenes

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 0x1b, G: 0x1f, B: 0x2a, A: 0xff}
	highlightColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	outlineColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}
)

// 悬停时向白色混合的最大比例
const maxHighlight = 0.35

// Draw 绘制场景
func (s *CabinScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	settings := s.settingsManager.GetSettings()
	for _, id := range drawOrder(s.entityManager) {
		s.drawSprite(screen, id, settings.ShowDebug)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score %d   Best %d", s.scoreManager.Score(), s.scoreManager.Best()), 8, 8)

	if settings.ShowDebug {
		s.drawDebug(screen)
	}
}

// drawOrder 返回所有可绘制实体，按 Z 从小到大排序（Z 大的画在上面）
// Z 相同时按实体ID排序，保证每帧顺序稳定
func drawOrder(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](em)
	z := make(map[ecs.EntityID]float64, len(ids))
	for _, id := range ids {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		z[id] = transform.Position.Z
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return z[ids[i]] < z[ids[j]]
	})
	return ids
}

// spriteColor 返回精灵本帧的颜色：按钮按悬停进度向白色混合
func (s *CabinScene) spriteColor(id ecs.EntityID, sprite *components.SpriteComponent) color.RGBA {
	progress, ok := s.hover[id]
	if !ok || progress <= 0 {
		return sprite.Color
	}
	return utils.LerpColor(sprite.Color, highlightColor, maxHighlight*utils.EaseOutQuad(progress))
}

func (s *CabinScene) drawSprite(screen *ebiten.Image, id ecs.EntityID, showDebug bool) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

	x, y, w, h := s.viewport.CabinRectToScreen(transform.Position.XY(), sprite.Size)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), s.spriteColor(id, sprite), false)

	if _, isButton := s.hover[id]; isButton {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, outlineColor, false)
	}

	if showDebug && sprite.Name != "" {
		ebitenutil.DebugPrintAt(screen, sprite.Name, int(x), int(y)-16)
	}
}

// drawDebug 绘制导演时钟和过场状态
func (s *CabinScene) drawDebug(screen *ebiten.Image) {
	line := 28
	ids := ecs.GetEntitiesWith1[*components.DirectorComponent](s.entityManager)
	for _, id := range ids {
		director, _ := ecs.GetComponent[*components.DirectorComponent](s.entityManager, id)
		label := "director"
		if cutscene, err := ecs.LookupComponent[*components.CutsceneComponent](s.entityManager, id); err == nil {
			label = cutscene.Name
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s #%d  t=%.2f  actors=%d  active=%v", label, id, director.Time, len(director.Actors), director.Active),
			8, line)
		line += 16
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("entities=%d  finished=%d  merge=%v  TPS=%.0f",
			s.entityManager.EntityCount(), s.debugSystem.Stopped, s.MergeRunning(), ebiten.ActualTPS()),
		8, line)
}
