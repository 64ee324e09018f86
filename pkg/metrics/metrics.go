// Package metrics 定义编排运行时的 OpenTelemetry 计数器
//
// 使用全局 MeterProvider：宿主没有安装 provider 时所有计数器都是 no-op。
package metrics

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/decker502/cabin/pkg/metrics"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Choreography 编排相关计数器
type Choreography struct {
	staged       metric.Int64Counter
	dispatched   metric.Int64Counter
	softFailures metric.Int64Counter
	finished     metric.Int64Counter
	destroyed    metric.Int64Counter
}

// NewChoreography 用给定的 Meter 创建计数器
func NewChoreography(m metric.Meter) (*Choreography, error) {
	c := &Choreography{}
	var err error

	c.staged, err = m.Int64Counter(
		"choreography.plays.staged",
		metric.WithDescription("Total choreographies staged"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating staged counter: %w", err)
	}

	c.dispatched, err = m.Int64Counter(
		"choreography.events.dispatched",
		metric.WithDescription("Total choreography events dispatched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dispatched counter: %w", err)
	}

	c.softFailures, err = m.Int64Counter(
		"choreography.soft_failures",
		metric.WithDescription("Events skipped because the actor could not be resolved"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating soft failure counter: %w", err)
	}

	c.finished, err = m.Int64Counter(
		"choreography.plays.finished",
		metric.WithDescription("Total EndChoreography events executed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating finished counter: %w", err)
	}

	c.destroyed, err = m.Int64Counter(
		"choreography.entities.destroyed",
		metric.WithDescription("Directors and actors destroyed by cleanup"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating destroyed counter: %w", err)
	}

	return c, nil
}

var (
	defaultOnce sync.Once
	defaultInst *Choreography
)

// Default 返回基于全局 MeterProvider 的计数器（进程内单例）
// 创建失败时退化为 no-op 计数器
func Default() *Choreography {
	defaultOnce.Do(func() {
		c, err := NewChoreography(meter())
		if err != nil {
			c, _ = NewChoreography(noop.NewMeterProvider().Meter(instrumentationName))
		}
		defaultInst = c
	})
	return defaultInst
}

// PlayStaged 记录一次登台
func (c *Choreography) PlayStaged(nActors int) {
	c.staged.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("actors", nActors)))
}

// EventDispatched 记录一次事件派发
func (c *Choreography) EventDispatched(kind string) {
	c.dispatched.Add(context.Background(), 1, metric.WithAttributes(attribute.String("event", kind)))
}

// SoftFailure 记录一次软失败
func (c *Choreography) SoftFailure(kind string) {
	c.softFailures.Add(context.Background(), 1, metric.WithAttributes(attribute.String("event", kind)))
}

// PlayFinished 记录一次结束
func (c *Choreography) PlayFinished() {
	c.finished.Add(context.Background(), 1)
}

// EntitiesDestroyed 记录清理销毁的实体数量
func (c *Choreography) EntitiesDestroyed(n int) {
	c.destroyed.Add(context.Background(), int64(n))
}
