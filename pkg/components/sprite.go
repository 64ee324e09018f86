package components

import (
	"image/color"

	"github.com/decker502/cabin/pkg/utils"
)

// SpriteComponent 实体的视觉表现：以 TransformComponent 为中心的纯色矩形
type SpriteComponent struct {
	// Size 宽高（舱室单位）
	Size utils.Vec2
	// Color 填充颜色
	Color color.RGBA
	// Name 调试名称（绘制在矩形上方）
	Name string
}
