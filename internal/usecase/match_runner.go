package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/gameai/internal/entity"
	"github.com/rocketscienceinc/gameai/internal/game"
)

type botService interface {
	MakeTurn(gameInstance *entity.Game) (entity.Move, error)
}

// SeriesSettings describes a batch of engine-vs-engine matches.
type SeriesSettings struct {
	GameType entity.GameType
	Matches  int
	Workers  int
	XLevel   entity.Difficulty
	OLevel   entity.Difficulty
}

// Tally counts finished matches by result.
type Tally struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that *Tally) Record(gameInstance *entity.Game) {
	switch gameInstance.Winner {
	case entity.PlayerX:
		that.XWins++
	case entity.PlayerO:
		that.OWins++
	case entity.PlayerTie:
		that.Draws++
	}
}

func (that Tally) Total() int {
	return that.XWins + that.OWins + that.Draws
}

// MatchRunner drives games between two computer players, acting as the caller of the engine.
type MatchRunner struct {
	logger     *slog.Logger
	bot        botService
	thinkDelay time.Duration
}

func NewMatchRunner(logger *slog.Logger, bot botService, thinkDelay time.Duration) *MatchRunner {
	return &MatchRunner{
		logger: logger,

		bot:        bot,
		thinkDelay: thinkDelay,
	}
}

// Play runs one match to completion. The returned game is the final state, also on error.
func (that *MatchRunner) Play(ctx context.Context, gameType entity.GameType, levelX, levelO entity.Difficulty) (*entity.Game, error) {
	gameInstance, err := game.NewGame(uuid.NewString(), gameType)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	if err = game.Start(gameInstance, &entity.Player{Level: levelX}, &entity.Player{Level: levelO}); err != nil {
		return nil, fmt.Errorf("failed start game: %w", err)
	}

	log := that.logger.With("method", "Play", "gameID", gameInstance.ID, "game", gameType)
	log.Debug("match started", "x", levelX.String(), "o", levelO.String())

	for !gameInstance.IsFinished() {
		if err = that.think(ctx); err != nil {
			return gameInstance, fmt.Errorf("match interrupted: %w", err)
		}

		mark := gameInstance.Turn
		move, err := that.bot.MakeTurn(gameInstance)
		if err != nil {
			return gameInstance, fmt.Errorf("failed make turn: %w", err)
		}

		log.Debug("turn played", "mark", mark, "move", move.String())
	}

	log.Info("match finished", "winner", gameInstance.Winner, "moves", len(gameInstance.Moves))

	return gameInstance, nil
}

// PlaySeries runs the matches on a bounded number of workers and tallies the results.
func (that *MatchRunner) PlaySeries(ctx context.Context, settings SeriesSettings) (Tally, error) {
	var (
		mu    sync.Mutex
		tally Tally
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(settings.Workers, 1))

	for range settings.Matches {
		group.Go(func() error {
			gameInstance, err := that.Play(groupCtx, settings.GameType, settings.XLevel, settings.OLevel)
			if err != nil {
				return err
			}

			mu.Lock()
			tally.Record(gameInstance)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return tally, fmt.Errorf("failed play series: %w", err)
	}

	return tally, nil
}

// think waits the configured delay before an engine move, the caller-side thinking time.
func (that *MatchRunner) think(ctx context.Context) error {
	if that.thinkDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(that.thinkDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
