package components

import "github.com/decker502/cabin/pkg/utils"

// ButtonType 舱室按钮的功能类型
type ButtonType int

const (
	// ButtonTypeMergeThoughts 合并想法按钮：触发帘幕过场
	ButtonTypeMergeThoughts ButtonType = iota
	// ButtonTypeReset 重置按钮：清零当前分数
	ButtonTypeReset
)

// String 返回按钮类型名称
func (t ButtonType) String() string {
	switch t {
	case ButtonTypeMergeThoughts:
		return "merge_thoughts"
	case ButtonTypeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// CabinButtonComponent 舱室内的可点击按钮
//
// 点击区域是以 TransformComponent 为中心、半宽高为 HalfExtent 的矩形（包含边界）。
type CabinButtonComponent struct {
	// Type 按钮功能
	Type ButtonType

	// HalfExtent 点击区域的半宽高（舱室单位）
	HalfExtent utils.Vec2

	// Hovered 光标是否悬停（由场景每帧更新，用于绘制高亮）
	Hovered bool

	// Enabled 是否响应点击
	Enabled bool
}
