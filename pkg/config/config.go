package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig 配置值不合法
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix 环境变量前缀：CABIN_LOG_LEVEL 对应 log.level
const EnvPrefix = "CABIN"

// Config 运行时配置
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Cabin   CabinConfig   `mapstructure:"cabin"`
	Curtain CurtainConfig `mapstructure:"curtain"`
	Score   ScoreConfig   `mapstructure:"score"`
	Cue     CueConfig     `mapstructure:"cue"`
	Log     LogConfig     `mapstructure:"log"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// CabinConfig 舱室尺寸（舱室单位）
type CabinConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// CurtainConfig 帘幕过场时间参数（秒）
type CurtainConfig struct {
	HalfTime float64 `mapstructure:"halfTime"`
	Hold     float64 `mapstructure:"hold"`
	Tail     float64 `mapstructure:"tail"`
	Depth    float64 `mapstructure:"depth"`
}

// ScoreConfig 计分配置
type ScoreConfig struct {
	CutsceneBonus int `mapstructure:"cutsceneBonus"`
}

// CueConfig 提示音配置
type CueConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	Frequency float64 `mapstructure:"frequency"`
	Duration  float64 `mapstructure:"duration"`
	Volume    float64 `mapstructure:"volume"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	Verbose bool   `mapstructure:"verbose"`
}

// setDefaults 设置所有键的默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", DefaultScreenWidth)
	v.SetDefault("window.height", DefaultScreenHeight)
	v.SetDefault("window.title", "Cabin")

	v.SetDefault("cabin.width", CabinWidth)
	v.SetDefault("cabin.height", CabinHeight)

	v.SetDefault("curtain.halfTime", CurtainHalfTime)
	v.SetDefault("curtain.hold", CurtainHold)
	v.SetDefault("curtain.tail", CurtainTail)
	v.SetDefault("curtain.depth", CurtainDepth)

	v.SetDefault("score.cutsceneBonus", CutsceneScoreBonus)

	v.SetDefault("cue.enabled", true)
	v.SetDefault("cue.frequency", CueFrequency)
	v.SetDefault("cue.duration", CueDuration)
	v.SetDefault("cue.volume", 0.5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
	v.SetDefault("log.verbose", true)
}

// BindFlags 在 FlagSet 上注册命令行参数
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML 配置文件路径（可选）")
	fs.String("log-level", "info", "日志级别 (trace/debug/info/warn/error)")
	fs.Bool("verbose", true, "输出日志（false 时丢弃全部日志）")
	fs.Int("width", DefaultScreenWidth, "窗口宽度（像素）")
	fs.Int("height", DefaultScreenHeight, "窗口高度（像素）")
	fs.Bool("mute", false, "关闭提示音")
}

// flagKeys 命令行参数 → 配置键
var flagKeys = map[string]string{
	"log-level": "log.level",
	"verbose":   "log.verbose",
	"width":     "window.width",
	"height":    "window.height",
}

// Load 加载配置
//
// 优先级（从高到低）：显式设置的命令行参数 > 环境变量 (CABIN_*) > 配置文件 > 默认值。
// path 为空时不读取文件；path 非空但读取失败时返回错误。
// flags 可以为 nil。
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("mute"); f != nil && f.Changed {
			v.Set("cue.enabled", false)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回只包含默认值的配置
func Default() *Config {
	cfg, err := Load("", nil)
	if err != nil {
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return cfg
}

// Validate 检查配置值
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidConfig)
	case c.Cabin.Width <= 0 || c.Cabin.Height <= 0:
		return fmt.Errorf("cabin size %gx%g: %w", c.Cabin.Width, c.Cabin.Height, ErrInvalidConfig)
	case c.Curtain.HalfTime <= 0:
		return fmt.Errorf("curtain half time %g: %w", c.Curtain.HalfTime, ErrInvalidConfig)
	case c.Curtain.Hold < 0 || c.Curtain.Tail < 0:
		return fmt.Errorf("curtain hold %g tail %g: %w", c.Curtain.Hold, c.Curtain.Tail, ErrInvalidConfig)
	case c.Cue.Volume < 0 || c.Cue.Volume > 1:
		return fmt.Errorf("cue volume %g: %w", c.Cue.Volume, ErrInvalidConfig)
	}
	return nil
}
