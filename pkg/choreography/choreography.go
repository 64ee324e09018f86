// Package choreography 定义编排脚本
//
// Choreography 是一份不可变的声明式脚本：固定的演员数量、统一的初始原点，
// 以及无序的（时间戳, 事件）列表。时间戳可以重复，列表可以为空。
//
// 运行时由导演（DirectorComponent + ChoreographyDirectorSystem）按帧推进：
// 每帧选出时间戳落在 [t0, t1) 内的事件，按列表顺序（而非时间戳顺序）派发。
package choreography

import (
	"errors"
	"fmt"

	"github.com/decker502/cabin/pkg/utils"
)

// ErrIndexOutOfRange 事件的演员下标超出导演的演员列表
var ErrIndexOutOfRange = errors.New("actor index out of range")

// TimedEvent 带时间戳的事件（时间戳为导演主时钟的秒数）
type TimedEvent struct {
	Timestamp float64
	Event     Event
}

// At 创建带时间戳的事件
func At(timestamp float64, e Event) TimedEvent {
	return TimedEvent{Timestamp: timestamp, Event: e}
}

// Choreography 编排脚本，构造后不可修改
type Choreography struct {
	nActors         int
	initialPosition utils.Vec3
	data            []TimedEvent
}

// New 创建编排脚本
//
// 参数：
//   - nActors: 期望的演员数量（导演只做软检查）
//   - initialPosition: 登台时应用到每个演员的默认原点
//   - events: 事件列表，保持传入顺序；同一帧内的事件按此顺序派发
//
// 事件负载会被复制（包括动画路径树），之后修改传入的切片不影响脚本。
func New(nActors int, initialPosition utils.Vec3, events ...TimedEvent) *Choreography {
	data := make([]TimedEvent, len(events))
	for i, te := range events {
		data[i] = TimedEvent{Timestamp: te.Timestamp, Event: cloneEvent(te.Event)}
	}
	return &Choreography{
		nActors:         nActors,
		initialPosition: initialPosition,
		data:            data,
	}
}

// NActors 期望的演员数量
func (c *Choreography) NActors() int {
	return c.nActors
}

// InitialPosition 演员登台时的默认原点
func (c *Choreography) InitialPosition() utils.Vec3 {
	return c.initialPosition
}

// Len 事件数量
func (c *Choreography) Len() int {
	return len(c.data)
}

// At 返回第 i 个事件（按列表顺序）的副本
func (c *Choreography) At(i int) TimedEvent {
	te := c.data[i]
	return TimedEvent{Timestamp: te.Timestamp, Event: cloneEvent(te.Event)}
}

// Events 返回事件列表的副本
func (c *Choreography) Events() []TimedEvent {
	out := make([]TimedEvent, len(c.data))
	for i, te := range c.data {
		out[i] = TimedEvent{Timestamp: te.Timestamp, Event: cloneEvent(te.Event)}
	}
	return out
}

// Duration 返回最早的 EndChoreography 时间戳，导演在那一刻结束演出；
// 没有终止事件时返回 false
func (c *Choreography) Duration() (float64, bool) {
	end, found := 0.0, false
	for _, te := range c.data {
		if _, ok := te.Event.(EndChoreography); ok && (!found || te.Timestamp < end) {
			end, found = te.Timestamp, true
		}
	}
	return end, found
}

// EventsInWindow 按列表顺序访问所有满足 t0 <= Timestamp < t1 的事件
// fn 收到的负载与脚本共享，需要保存时先复制；fn 返回 false 时停止遍历
func (c *Choreography) EventsInWindow(t0, t1 float64, fn func(i int, te TimedEvent) bool) {
	for i, te := range c.data {
		if te.Timestamp >= t0 && te.Timestamp < t1 {
			if !fn(i, te) {
				return
			}
		}
	}
}

// ResolveIndex 检查下标是否落在长度为 n 的演员列表内
func ResolveIndex(index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("index %d with %d actors: %w", index, n, ErrIndexOutOfRange)
	}
	return nil
}
