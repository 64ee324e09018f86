// Package animation 定义演员的动画路径
//
// 动画路径是"本地时间 → 三维偏移"的纯函数：
//
//	position = actor.Offset + path.GetPoint(actor.Time)
//
// 所有内置路径都是不可变的值类型，可以被多个读者同时读取。
// 导演通过 SetAnimation 事件整体替换演员的路径，从不原地修改。
package animation

import (
	"fmt"

	"github.com/decker502/cabin/pkg/utils"
)

// Path 动画路径
//
// GetPoint 必须是确定性的、无副作用的：结果只取决于 t 和路径自身的不可变参数。
// t 可以是任意实数（包括负数），实际运行中由从 0 开始单调递增的本地时钟驱动。
type Path interface {
	GetPoint(t float64) utils.Vec3
}

// Cloner 可选接口：自定义路径如果持有子路径或引用类型数据，应实现深拷贝
type Cloner interface {
	ClonePath() Path
}

// Clone 深拷贝整棵路径树（包括嵌套的 Sum）
//
// 内置的叶子路径都是值类型，直接按值复制即可；
// 未实现 Cloner 的自定义路径按不可变约定原样返回。
func Clone(p Path) Path {
	switch v := p.(type) {
	case nil:
		return nil
	case Cloner:
		return v.ClonePath()
	case Stationary, Ellipse, Sine, Curtain:
		return v
	default:
		return p
	}
}

// Describe 返回路径的简短描述，用于日志和调试工具
func Describe(p Path) string {
	switch v := p.(type) {
	case nil:
		return "<nil>"
	case Stationary:
		return "Stationary"
	case Ellipse:
		return fmt.Sprintf("Ellipse(f=%.3g)", v.Frequency)
	case Sine:
		return fmt.Sprintf("Sine(ω=%.3g)", v.AngularFrequency)
	case Curtain:
		return fmt.Sprintf("Curtain(h=%.3g)", v.HalfTime)
	case *Sum:
		return fmt.Sprintf("Sum(%s, %s)", Describe(v.A), Describe(v.B))
	default:
		return fmt.Sprintf("%T", p)
	}
}
