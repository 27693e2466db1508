package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gameai/internal/config"
	"github.com/rocketscienceinc/gameai/internal/entity"
	"github.com/rocketscienceinc/gameai/internal/service"
	"github.com/rocketscienceinc/gameai/internal/usecase"
)

// RunApp - runs a self-play series configured by conf.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	botService := service.NewBotService(logger, service.DefaultRandomizer(), EngineOptions(conf.Engine))
	runner := usecase.NewMatchRunner(logger, botService, conf.SelfPlay.ThinkDelay)

	settings := usecase.SeriesSettings{
		GameType: entity.GameType(conf.SelfPlay.Game),
		Matches:  conf.SelfPlay.Matches,
		Workers:  conf.SelfPlay.Workers,
		XLevel:   entity.Difficulty(conf.SelfPlay.XLevel),
		OLevel:   entity.Difficulty(conf.SelfPlay.OLevel),
	}

	log.Info("Starting self-play series",
		"game", settings.GameType,
		"matches", settings.Matches,
		"x", settings.XLevel.String(),
		"o", settings.OLevel.String(),
	)

	tally, err := runner.PlaySeries(ctx, settings)
	if err != nil {
		return fmt.Errorf("self-play series failed: %w", err)
	}

	log.Info("Self-play series finished", "xWins", tally.XWins, "oWins", tally.OWins, "draws", tally.Draws)

	return nil
}

// EngineOptions maps the engine section of the config to service options.
func EngineOptions(conf config.Engine) service.EngineOptions {
	return service.EngineOptions{
		ConnectFourDepth: conf.ConnectFourDepth,
		Minimax: service.MinimaxOptions{
			OpeningShortcut: !conf.DisableOpeningShortcut,
			ImmediateCheck:  !conf.DisableImmediateCheck,
		},
	}
}
