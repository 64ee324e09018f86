// choreo-trace 在终端里逐帧运行一场编排，显示导演时钟、演员状态和结束信号
//
// 用法：
//
//	go run ./cmd/choreo-trace --play curtain --dt 0.05
//	go run ./cmd/choreo-trace --play orbit --log trace.jsonl
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/decker502/cabin/pkg/choreography"
	"github.com/decker502/cabin/pkg/config"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/spf13/pflag"
)

// 退出码
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, runProgram))
}

// runProgram 在备用屏幕上运行终端界面
func runProgram(ui *TraceUI) error {
	_, err := tea.NewProgram(ui, tea.WithAltScreen()).Run()
	return err
}

// run 解析参数、配置日志并运行界面，返回进程退出码
// 所有出口都经过 defer，日志文件总会被关闭
func run(args []string, stderr io.Writer, program func(*TraceUI) error) int {
	flags := pflag.NewFlagSet("choreo-trace", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	play := flags.String("play", PlayCurtain, "演出：curtain 或 orbit")
	step := flags.Float64("dt", 0.1, "每帧推进的时间（秒）")
	interval := flags.Duration("interval", 100*time.Millisecond, "播放时两帧之间的真实时间")
	logPath := flags.String("log", "", "把 JSON 日志写入该文件（默认丢弃）")
	configPath := flags.String("config", "", "YAML 配置文件路径（可选）")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	// 终端界面占用标准输出，日志只能写文件或丢弃
	if *logPath == "" {
		logging.Discard()
	} else {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
			return exitError
		}
		defer f.Close()
		defer logging.Discard()
		if err := logging.Setup(logging.Options{Level: "debug", Output: f}); err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return exitError
		}
	}
	log := logging.For("ChoreoTrace")

	cfg, err := config.Load(*configPath, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitError
	}

	ui := NewTraceUI(TraceOptions{
		Play:     *play,
		Step:     *step,
		Interval: *interval,
		Curtain: choreography.CurtainParams{
			CabinWidth: cfg.Cabin.Width,
			Depth:      cfg.Curtain.Depth,
			HalfTime:   cfg.Curtain.HalfTime,
			Hold:       cfg.Curtain.Hold,
			Tail:       cfg.Curtain.Tail,
		},
	})

	if err := program(ui); err != nil {
		log.Error().Err(err).Msg("trace program failed")
		fmt.Fprintf(stderr, "Error running program: %v\n", err)
		return exitError
	}
	return exitOK
}
