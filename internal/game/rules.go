package game

import (
	"fmt"

	"github.com/rocketscienceinc/gameai/internal/apperror"
	"github.com/rocketscienceinc/gameai/internal/connectfour"
	"github.com/rocketscienceinc/gameai/internal/entity"
	"github.com/rocketscienceinc/gameai/internal/tictactoe"
)

const (
	// Unbounded means the search runs to terminal positions.
	Unbounded = -1

	// DefaultConnectFourDepth is the ply cutoff below the root move for connect four.
	DefaultConnectFourDepth = 4
)

// Rules is the capability set of one game type. Search code only talks to Rules.
type Rules struct {
	Type     entity.GameType
	Rows     int
	Cols     int
	MaxDepth int

	validMoves   func(board entity.Board) []entity.Move
	checkWin     func(board entity.Board, placed entity.Move, player string) (entity.WinResult, bool)
	openingMoves func(board entity.Board) []entity.Move
}

// RulesFor returns the rules of the game type.
func RulesFor(gameType entity.GameType) (Rules, error) {
	switch gameType {
	case entity.TicTacToe:
		return Rules{
			Type:       entity.TicTacToe,
			Rows:       tictactoe.Rows,
			Cols:       tictactoe.Cols,
			MaxDepth:   Unbounded,
			validMoves: tictactoe.ValidMoves,
			checkWin: func(board entity.Board, _ entity.Move, player string) (entity.WinResult, bool) {
				return tictactoe.CheckLineWin(board, player)
			},
			openingMoves: func(entity.Board) []entity.Move {
				return []entity.Move{tictactoe.Center}
			},
		}, nil
	case entity.ConnectFour:
		return Rules{
			Type:       entity.ConnectFour,
			Rows:       connectfour.Rows,
			Cols:       connectfour.Cols,
			MaxDepth:   DefaultConnectFourDepth,
			validMoves: connectfour.ValidMoves,
			checkWin: func(board entity.Board, placed entity.Move, player string) (entity.WinResult, bool) {
				return connectfour.CheckRunWin(board, placed.Row, placed.Col, player)
			},
			openingMoves: func(board entity.Board) []entity.Move {
				moves := make([]entity.Move, 0, len(connectfour.OpeningColumns))
				for _, col := range connectfour.OpeningColumns {
					if row, ok := connectfour.LandingRow(board, col); ok {
						moves = append(moves, entity.Move{Row: row, Col: col})
					}
				}
				return moves
			},
		}, nil
	default:
		return Rules{}, fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, string(gameType))
	}
}

// WithMaxDepth returns a copy of the rules using the given search cutoff.
func (that Rules) WithMaxDepth(depth int) Rules {
	that.MaxDepth = depth
	return that
}

// NewBoard returns an empty board of the game's dimensions.
func (that Rules) NewBoard() entity.Board {
	return entity.NewBoard(that.Rows, that.Cols)
}

// IsWellFormed reports whether the board has the game's dimensions.
func (that Rules) IsWellFormed(board entity.Board) bool {
	return board.HasDimensions(that.Rows, that.Cols)
}

// ValidMoves returns the legal moves in generation order; empty for a malformed or terminal board.
func (that Rules) ValidMoves(board entity.Board) []entity.Move {
	return that.validMoves(board)
}

// CheckWin reports whether the player completed a line with the piece placed at the move.
func (that Rules) CheckWin(board entity.Board, placed entity.Move, player string) (entity.WinResult, bool) {
	return that.checkWin(board, placed, player)
}

// OpeningMoves returns the candidate first moves used on an empty board.
func (that Rules) OpeningMoves(board entity.Board) []entity.Move {
	return that.openingMoves(board)
}

// ValidMoves is the generator for callers holding only the game type.
func ValidMoves(board entity.Board, gameType entity.GameType) []entity.Move {
	rules, err := RulesFor(gameType)
	if err != nil {
		return nil
	}

	return rules.ValidMoves(board)
}
