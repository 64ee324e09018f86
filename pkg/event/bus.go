// Package event 提供帧内广播信号队列
//
// Bus[T] 是按帧推进的广播队列：发送者 Send，任意数量的读者各自持有游标，
// Read 返回该读者尚未读过的全部事件。帧末调用 Update，丢弃上一帧之前发送的事件，
// 因此每个事件在发送帧和下一帧内都可读。
//
// 读者之间互不影响：同一批事件会被每个读者完整读到一次。
package event

import "sync"

type record[T any] struct {
	seq     uint64
	payload T
}

// Bus 单一负载类型的广播队列
type Bus[T any] struct {
	mu       sync.Mutex
	events   []record[T]
	nextSeq  uint64
	boundary uint64 // 上一次 Update 时的 nextSeq
}

// NewBus 创建广播队列
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Send 发送事件
func (b *Bus[T]) Send(payload T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, record[T]{seq: b.nextSeq, payload: payload})
	b.nextSeq++
}

// Len 当前保留的事件数量
func (b *Bus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Update 帧末调用：丢弃上一次 Update 之前发送的事件
func (b *Bus[T]) Update() {
	b.mu.Lock()
	defer b.mu.Unlock()

	keep := 0
	for keep < len(b.events) && b.events[keep].seq < b.boundary {
		keep++
	}
	if keep > 0 {
		remaining := make([]record[T], len(b.events)-keep)
		copy(remaining, b.events[keep:])
		b.events = remaining
	}
	b.boundary = b.nextSeq
}

// NewReader 创建读者，只读取创建之后发送的事件
func (b *Bus[T]) NewReader() *Reader[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &Reader[T]{bus: b, cursor: b.nextSeq}
}

// Reader 广播队列的独立读者
type Reader[T any] struct {
	bus    *Bus[T]
	cursor uint64
}

// Read 返回该读者尚未读过的全部事件（按发送顺序）
// 已被 Update 丢弃的事件不会再出现
func (r *Reader[T]) Read() []T {
	b := r.bus
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []T
	for _, rec := range b.events {
		if rec.seq >= r.cursor {
			out = append(out, rec.payload)
		}
	}
	r.cursor = b.nextSeq
	return out
}

// Pending 该读者尚未读过的事件数量
func (r *Reader[T]) Pending() int {
	b := r.bus
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, rec := range b.events {
		if rec.seq >= r.cursor {
			n++
		}
	}
	return n
}
