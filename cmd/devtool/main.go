package main

import (
	"fmt"
	"os"

	"github.com/osse101/LuckyDraw_Go/internal/config"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
)

func main() {
	logger.InitLogger(logger.NewConfig("warn", config.LogFormatText, appName+"-devtool", "", logger.EnvironmentDev, false))

	registry := newRegistry(&env{loadConfig: config.Load})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		fmt.Fprintf(out, "Unknown command: %s\n\n", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
