package main

import (
	"fmt"
	"os"

	"github.com/decker502/cabin/pkg/app"
	"github.com/decker502/cabin/pkg/config"
	"github.com/decker502/cabin/pkg/logging"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("cabin", pflag.ExitOnError)
	config.BindFlags(flags)
	_ = flags.Parse(os.Args[1:])

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	if err := app.SetupLogging(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		os.Exit(1)
	}
	log := logging.For("main")

	cabin, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化失败")
	}

	if err := app.Run(cabin); err != nil {
		log.Fatal().Err(err).Msg("运行失败")
	}
}
