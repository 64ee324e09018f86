package components

import "github.com/decker502/cabin/pkg/utils"

// TransformComponent 实体在舱室坐标系中的位置（舱室单位，Y 轴向上，Z 为绘制层级）
// 演员动画系统每帧把演员位置写入这里，渲染只读取本组件
type TransformComponent struct {
	Position utils.Vec3
}
