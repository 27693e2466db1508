package game

import (
	"fmt"

	"github.com/rocketscienceinc/gameai/internal/apperror"
	"github.com/rocketscienceinc/gameai/internal/entity"
)

// NewGame creates a waiting game with an empty board, X to move first.
func NewGame(id string, gameType entity.GameType) (*entity.Game, error) {
	rules, err := RulesFor(gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to get rules: %w", err)
	}

	return &entity.Game{
		ID:     id,
		Type:   gameType,
		Board:  rules.NewBoard(),
		Turn:   entity.PlayerX,
		Status: entity.StatusWaiting,
	}, nil
}

// Start seats both players and moves the game to ongoing.
func Start(gameInstance *entity.Game, playerX, playerO *entity.Player) error {
	if !gameInstance.IsWaiting() {
		return fmt.Errorf("%w: status %s", apperror.ErrGameAlreadyStarted, gameInstance.Status)
	}

	playerX.Mark = entity.PlayerX
	playerO.Mark = entity.PlayerO

	gameInstance.Players = []*entity.Player{playerX, playerO}
	gameInstance.Status = entity.StatusOngoing

	return nil
}

// MakeTurn applies the player's move to the live game and returns the occupied cell.
// For connect four only the column of target is used; the row follows gravity.
func MakeTurn(gameInstance *entity.Game, player string, target entity.Move) (entity.Move, error) {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	rules, err := RulesFor(gameInstance.Type)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get rules: %w", err)
	}

	placed, err := validateMove(gameInstance, rules, player, target)
	if err != nil {
		return entity.Move{}, fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Set(placed, player)
	gameInstance.Moves = append(gameInstance.Moves, placed)
	updateGameStatus(gameInstance, rules, player, placed)

	return placed, nil
}

// validateMove - checks the turn and resolves the target cell.
func validateMove(gameInstance *entity.Game, rules Rules, player string, target entity.Move) (entity.Move, error) {
	if gameInstance.Turn != player {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	if !rules.IsWellFormed(gameInstance.Board) {
		return entity.Move{}, apperror.ErrMalformedBoard
	}

	if rules.Type == entity.ConnectFour {
		if target.Col < 0 || target.Col >= rules.Cols {
			return entity.Move{}, fmt.Errorf("%w: column %d", apperror.ErrInvalidCell, target.Col)
		}

		for _, move := range rules.ValidMoves(gameInstance.Board) {
			if move.Col == target.Col {
				return move, nil
			}
		}

		return entity.Move{}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, target.Col)
	}

	if !gameInstance.Board.Contains(target) {
		return entity.Move{}, fmt.Errorf("%w: cell %s", apperror.ErrInvalidCell, target)
	}

	if gameInstance.Board.At(target) != entity.EmptyCell {
		return entity.Move{}, apperror.ErrCellOccupied
	}

	return target, nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, rules Rules, player string, placed entity.Move) {
	if line, won := rules.CheckWin(gameInstance.Board, placed, player); won {
		gameInstance.Winner = player
		gameInstance.WinLine = &line
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
		return
	}

	if len(rules.ValidMoves(gameInstance.Board)) == 0 {
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
		return
	}

	gameInstance.Turn = entity.Opponent(player)
}
