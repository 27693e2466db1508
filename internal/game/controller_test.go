package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gameai/internal/apperror"
	"github.com/rocketscienceinc/gameai/internal/entity"
	"github.com/rocketscienceinc/gameai/testing/suite"
)

func newOngoingGame(t *testing.T, gameType entity.GameType) *entity.Game {
	t.Helper()

	gameInstance, err := NewGame("123", gameType)
	require.NoError(t, err)
	require.NoError(t, Start(gameInstance, &entity.Player{Level: entity.Brilliant}, &entity.Player{Level: entity.Dull}))

	return gameInstance
}

func TestNewGame(t *testing.T) {
	t.Run("Tic-tac-toe", func(t *testing.T) {
		// When: create a new game
		gameInstance, err := NewGame("123", entity.TicTacToe)
		require.NoError(t, err)

		// Then: the game state should correspond to the expected initial state
		expectedGame := &entity.Game{
			ID:     "123",
			Type:   entity.TicTacToe,
			Board:  entity.NewBoard(3, 3),
			Turn:   entity.PlayerX,
			Status: entity.StatusWaiting,
		}

		require.Equal(t, expectedGame, gameInstance)
	})

	t.Run("Unknown game type", func(t *testing.T) {
		_, err := NewGame("123", "othello")

		assert.ErrorIs(t, err, apperror.ErrUnknownGameType)
	})
}

func TestStart(t *testing.T) {
	t.Run("Seats players and starts the game", func(t *testing.T) {
		// Given: a waiting game
		gameInstance, err := NewGame("123", entity.ConnectFour)
		require.NoError(t, err)

		// When: two players are seated
		playerX := &entity.Player{Level: entity.Smart}
		playerO := &entity.Player{Level: entity.Brilliant}
		err = Start(gameInstance, playerX, playerO)

		// Then: marks are assigned and the game is ongoing
		require.NoError(t, err)
		assert.True(t, gameInstance.IsOngoing())
		assert.Equal(t, entity.PlayerX, playerX.Mark)
		assert.Equal(t, entity.PlayerO, playerO.Mark)
		assert.Len(t, gameInstance.Players, 2)
	})

	t.Run("Ongoing game cannot be started again", func(t *testing.T) {
		gameInstance := newOngoingGame(t, entity.TicTacToe)

		err := Start(gameInstance, &entity.Player{}, &entity.Player{})

		assert.ErrorIs(t, err, apperror.ErrGameAlreadyStarted)
	})
}

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: an ongoing tic-tac-toe game
		gameInstance := newOngoingGame(t, entity.TicTacToe)

		// When: player X makes a turn
		placed, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, placed)
		assert.Equal(t, suite.ParseBoard("X..", "...", "..."), gameInstance.Board)
		assert.Equal(t, entity.PlayerO, gameInstance.Turn)
		assert.Equal(t, []entity.Move{{Row: 0, Col: 0}}, gameInstance.Moves)
		assert.True(t, gameInstance.IsOngoing())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: player X moved to cell (0,0)
		gameInstance := newOngoingGame(t, entity.TicTacToe)
		_, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		_, err = MakeTurn(gameInstance, entity.PlayerO, entity.Move{Row: 0, Col: 0})

		// Then: an error ErrCellOccupied must be returned and the turn stays with O
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.PlayerO, gameInstance.Turn)
		assert.Len(t, gameInstance.Moves, 1)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		gameInstance := newOngoingGame(t, entity.TicTacToe)

		_, err := MakeTurn(gameInstance, entity.PlayerO, entity.Move{Row: 0, Col: 1})

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.True(t, gameInstance.Board.IsEmpty())
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		gameInstance := newOngoingGame(t, entity.TicTacToe)

		_, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Row: 3, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Move before the game started", func(t *testing.T) {
		gameInstance, err := NewGame("123", entity.TicTacToe)
		require.NoError(t, err)

		_, err = MakeTurn(gameInstance, entity.PlayerX, entity.Move{Row: 0, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move from completing the top row
		gameInstance := newOngoingGame(t, entity.TicTacToe)
		gameInstance.Board = suite.ParseBoard(
			"XX.",
			"OO.",
			"...",
		)

		// When: X completes the row
		_, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Row: 0, Col: 2})
		require.NoError(t, err)

		// Then: X wins and the line is recorded
		assert.True(t, gameInstance.IsFinished())
		assert.Equal(t, entity.PlayerX, gameInstance.Winner)
		assert.Empty(t, gameInstance.Turn)
		require.NotNil(t, gameInstance.WinLine)
		assert.Equal(t, entity.AxisRow, gameInstance.WinLine.Axis)

		// And: further moves are rejected
		_, err = MakeTurn(gameInstance, entity.PlayerO, entity.Move{Row: 2, Col: 2})
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Last empty cell without a line is a tie", func(t *testing.T) {
		gameInstance := newOngoingGame(t, entity.TicTacToe)
		gameInstance.Board = suite.ParseBoard(
			"XOX",
			"XOO",
			"OX.",
		)

		_, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Row: 2, Col: 2})
		require.NoError(t, err)

		assert.True(t, gameInstance.IsDraw())
		assert.Nil(t, gameInstance.WinLine)
	})

	t.Run("Connect four piece falls to the landing row", func(t *testing.T) {
		// Given: column 3 already holds one piece
		gameInstance := newOngoingGame(t, entity.ConnectFour)
		_, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Col: 3})
		require.NoError(t, err)

		// When: O drops into the same column, the row of the target is ignored
		placed, err := MakeTurn(gameInstance, entity.PlayerO, entity.Move{Row: 0, Col: 3})

		// Then: the piece lands on row 4
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 4, Col: 3}, placed)
		assert.Equal(t, entity.PlayerO, gameInstance.Board[4][3])
	})

	t.Run("Connect four full column", func(t *testing.T) {
		gameInstance := newOngoingGame(t, entity.ConnectFour)
		gameInstance.Board = suite.ParseBoard(
			"X......",
			"O......",
			"X......",
			"O......",
			"X......",
			"O......",
		)

		_, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Col: 0})

		assert.ErrorIs(t, err, apperror.ErrColumnFull)
	})

	t.Run("Connect four column out of range", func(t *testing.T) {
		gameInstance := newOngoingGame(t, entity.ConnectFour)

		_, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Col: 7})

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Connect four vertical win", func(t *testing.T) {
		gameInstance := newOngoingGame(t, entity.ConnectFour)
		gameInstance.Board = suite.ParseBoard(
			".......",
			".......",
			".......",
			"X......",
			"X.O....",
			"X.O....",
		)

		_, err := MakeTurn(gameInstance, entity.PlayerX, entity.Move{Col: 0})
		require.NoError(t, err)

		assert.Equal(t, entity.PlayerX, gameInstance.Winner)
		require.NotNil(t, gameInstance.WinLine)
		assert.Len(t, gameInstance.WinLine.Cells, 4)
	})
}
