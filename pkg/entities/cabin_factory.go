package entities

import (
	"image/color"

	"github.com/decker502/cabin/pkg/components"
	"github.com/decker502/cabin/pkg/config"
	"github.com/decker502/cabin/pkg/ecs"
	"github.com/decker502/cabin/pkg/utils"
)

// 舱室配色
var (
	CurtainColor     = color.RGBA{R: 0x8b, G: 0x1e, B: 0x2d, A: 0xff}
	ThoughtColor     = color.RGBA{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff}
	MergeButtonColor = color.RGBA{R: 0x3a, G: 0x86, B: 0xff, A: 0xff}
	ResetButtonColor = color.RGBA{R: 0x6c, G: 0x75, B: 0x7d, A: 0xff}
)

// NewActorEntity 创建可被编排驱动的实体：位置 + 纯色精灵
// 演员组件由 OrganizePlay 在登台时挂上
func NewActorEntity(em *ecs.EntityManager, position utils.Vec3, size utils.Vec2, c color.RGBA, name string) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: position})
	ecs.AddComponent(em, id, &components.SpriteComponent{Size: size, Color: c, Name: name})
	return id
}

// NewCurtainEntity 创建一片帘幕
//
// 帘幕宽度为舱室的一半、高度与舱室相同，初始位于 position（通常是打开位置）。
func NewCurtainEntity(em *ecs.EntityManager, position utils.Vec3, cabinWidth, cabinHeight float64) ecs.EntityID {
	return NewActorEntity(em, position, utils.Vec2{X: cabinWidth * 0.5, Y: cabinHeight}, CurtainColor, "curtain")
}

// NewMergeButtonEntity 创建"合并想法"按钮
func NewMergeButtonEntity(em *ecs.EntityManager) ecs.EntityID {
	return newButtonEntity(em,
		utils.NewVec3(config.MergeButtonX, config.MergeButtonY, config.ButtonDepth),
		components.ButtonTypeMergeThoughts, MergeButtonColor, "merge")
}

// NewResetButtonEntity 创建"重置分数"按钮
func NewResetButtonEntity(em *ecs.EntityManager) ecs.EntityID {
	return newButtonEntity(em,
		utils.NewVec3(config.ResetButtonX, config.ResetButtonY, config.ButtonDepth),
		components.ButtonTypeReset, ResetButtonColor, "reset")
}

func newButtonEntity(em *ecs.EntityManager, position utils.Vec3, buttonType components.ButtonType, c color.RGBA, name string) ecs.EntityID {
	half := utils.Vec2{X: config.ButtonHalfWidth, Y: config.ButtonHalfHeight}
	id := NewActorEntity(em, position, utils.Vec2{X: half.X * 2, Y: half.Y * 2}, c, name)
	ecs.AddComponent(em, id, &components.CabinButtonComponent{
		Type:       buttonType,
		HalfExtent: half,
		Enabled:    true,
	})
	return id
}
