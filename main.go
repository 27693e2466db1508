package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/gameai/internal"
	"github.com/rocketscienceinc/gameai/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs a self-play series.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config, CONFIG_PATH overrides ./config.yml.
func initConfig() *config.Config {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return config.MustLoad(path)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}

	if conf.LogLevel == "debug" {
		options.Level = slog.LevelDebug
		options.AddSource = true
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, options)).With("service", "gameai")
}
