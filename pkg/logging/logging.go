// Package logging 提供全局结构化日志
//
// 每个系统在构造时通过 For("ChoreographyDirector") 取得带 component 字段的子日志器，
// 与 "[SystemName] ..." 前缀风格对应。软失败用 Warn，生命周期事件用 Info/Debug。
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Options 日志配置
type Options struct {
	Level   string    // trace/debug/info/warn/error，空字符串等价于 info
	Output  io.Writer // 默认 os.Stderr
	Console bool      // true 时使用人类可读的控制台格式，否则输出 JSON 行
	NoColor bool
}

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Setup 按配置重建根日志器
// 已经通过 For 取得的子日志器不受影响，应在创建系统之前调用
func Setup(opts Options) error {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000", NoColor: opts.NoColor}
	}

	mu.Lock()
	base = zerolog.New(out).Level(level).With().Timestamp().Logger()
	mu.Unlock()
	return nil
}

// For 返回带 component 字段的子日志器
func For(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", component).Logger()
}

// Root 返回当前根日志器
func Root() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Discard 丢弃所有日志（对应 verbose=false）
func Discard() {
	mu.Lock()
	base = zerolog.Nop()
	mu.Unlock()
}

// Capture 把根日志器重定向到内存缓冲区（JSON 行，debug 级别），用于测试断言
// 返回的 restore 恢复之前的根日志器
func Capture() (*bytes.Buffer, func()) {
	buf := &bytes.Buffer{}

	mu.Lock()
	prev := base
	base = zerolog.New(buf).Level(zerolog.DebugLevel)
	mu.Unlock()

	return buf, func() {
		mu.Lock()
		base = prev
		mu.Unlock()
	}
}
