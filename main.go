package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-ai/internal/cmd"
	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the command line.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	root := cmd.Root(logger, conf)
	root.SetArgs(os.Args[1:])

	if err := root.Execute(); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(config.Locate(baseDir))
}

// initialize logger. Logs go to stderr, the game itself owns stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
