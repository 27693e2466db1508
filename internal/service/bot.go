package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/gameai/internal/apperror"
	"github.com/rocketscienceinc/gameai/internal/entity"
	"github.com/rocketscienceinc/gameai/internal/game"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// MoveRequest is everything the engine needs for one decision.
type MoveRequest struct {
	Board        entity.Board
	GameType     entity.GameType
	AIMark       string
	OpponentMark string
	Difficulty   entity.Difficulty
}

type EngineOptions struct {
	// ConnectFourDepth overrides the connect four ply cutoff when positive.
	ConnectFourDepth int
	Minimax          MinimaxOptions
}

// DefaultEngineOptions mirrors the configuration defaults.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		ConnectFourDepth: game.DefaultConnectFourDepth,
		Minimax: MinimaxOptions{
			OpeningShortcut: true,
			ImmediateCheck:  true,
		},
	}
}

type BotService interface {
	// SelectMove returns the computer's move; false means no legal move exists.
	SelectMove(request MoveRequest) (entity.Move, bool, error)
	// StrategyFor maps a difficulty and game type to a strategy.
	StrategyFor(difficulty entity.Difficulty, gameType entity.GameType) (Strategy, error)
	// MakeTurn plays the move of the seated player whose turn it is.
	MakeTurn(gameInstance *entity.Game) (entity.Move, error)
}

type botService struct {
	logger  *slog.Logger
	random  Randomizer
	options EngineOptions
}

func NewBotService(logger *slog.Logger, random Randomizer, options EngineOptions) BotService {
	return &botService{
		logger:  logger,
		random:  random,
		options: options,
	}
}

// NewStrategy builds the strategy of the difficulty level over the given rules.
func NewStrategy(difficulty entity.Difficulty, rules game.Rules, random Randomizer, options MinimaxOptions) (Strategy, error) {
	switch difficulty {
	case entity.Dull:
		return NewRandomStrategy(rules, random), nil
	case entity.Smart:
		return NewHeuristicStrategy(rules, random), nil
	case entity.Brilliant:
		return NewMinimaxStrategy(rules, random, options), nil
	case entity.TwoPlayerMode:
		return nil, apperror.ErrTwoPlayerMode
	default:
		return nil, fmt.Errorf("%w: %d", apperror.ErrUnknownDifficulty, int(difficulty))
	}
}

func (that *botService) StrategyFor(difficulty entity.Difficulty, gameType entity.GameType) (Strategy, error) {
	rules, err := game.RulesFor(gameType)
	if err != nil {
		return nil, err
	}

	if gameType == entity.ConnectFour && that.options.ConnectFourDepth > 0 {
		rules = rules.WithMaxDepth(that.options.ConnectFourDepth)
	}

	return NewStrategy(difficulty, rules, that.random, that.options.Minimax)
}

func (that *botService) SelectMove(request MoveRequest) (entity.Move, bool, error) {
	log := that.logger.With("method", "SelectMove", "game", request.GameType, "level", request.Difficulty.String())

	strategy, err := that.StrategyFor(request.Difficulty, request.GameType)
	if err != nil {
		return entity.Move{}, false, fmt.Errorf("failed to select strategy: %w", err)
	}

	if err = validateRequest(request); err != nil {
		return entity.Move{}, false, fmt.Errorf("invalid move request: %w", err)
	}

	move, ok := strategy.ChooseMove(request.Board, request.AIMark, request.OpponentMark)
	if !ok {
		log.Debug("no legal move")
		return entity.Move{}, false, nil
	}

	log.Debug("move selected", "mark", request.AIMark, "move", move.String())

	return move, true, nil
}

func (that *botService) MakeTurn(gameInstance *entity.Game) (entity.Move, error) {
	botPlayer := gameInstance.PlayerByMark(gameInstance.Turn)
	if botPlayer == nil {
		return entity.Move{}, ErrBotNotFound
	}

	move, ok, err := that.SelectMove(MoveRequest{
		Board:        gameInstance.Board,
		GameType:     gameInstance.Type,
		AIMark:       botPlayer.Mark,
		OpponentMark: entity.Opponent(botPlayer.Mark),
		Difficulty:   botPlayer.Level,
	})
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	if !ok {
		return entity.Move{}, ErrNoAvailableMoves
	}

	placed, err := game.MakeTurn(gameInstance, botPlayer.Mark, move)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return placed, nil
}

// validateRequest rejects malformed input before any strategy runs.
func validateRequest(request MoveRequest) error {
	rules, err := game.RulesFor(request.GameType)
	if err != nil {
		return err
	}

	if request.AIMark == entity.EmptyCell || request.OpponentMark == entity.EmptyCell || request.AIMark == request.OpponentMark {
		return fmt.Errorf("%w: ai %q, opponent %q", apperror.ErrInvalidMarks, request.AIMark, request.OpponentMark)
	}

	if !rules.IsWellFormed(request.Board) {
		return fmt.Errorf("%w: expected %dx%d for %s", apperror.ErrMalformedBoard, rules.Rows, rules.Cols, request.GameType)
	}

	allowed := []string{entity.EmptyCell, request.AIMark, request.OpponentMark}
	for _, row := range request.Board {
		if unknown, found := lo.Find(row, func(cell string) bool { return !lo.Contains(allowed, cell) }); found {
			return fmt.Errorf("%w: unexpected mark %q", apperror.ErrMalformedBoard, unknown)
		}
	}

	return nil
}
