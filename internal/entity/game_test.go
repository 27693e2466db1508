package entity

import (
	"testing"

	"github.com/rocketscienceinc/gameai/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it should be finished and not ongoing
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// Then: it should be waiting
		assert.True(t, game.IsWaiting())
	})

	t.Run("IsDraw requires a finished game with the tie marker", func(t *testing.T) {
		// Given: a finished tie and an ongoing game
		tie := &Game{Status: StatusFinished, Winner: PlayerTie}
		ongoing := &Game{Status: StatusOngoing, Winner: PlayerTie}

		// Then: only the finished one is a draw
		assert.True(t, tie.IsDraw())
		assert.False(t, ongoing.IsDraw())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, apperror.ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGameType_Dimensions(t *testing.T) {
	t.Run("Tic-tac-toe is 3x3", func(t *testing.T) {
		rows, cols, err := TicTacToe.Dimensions()

		require.NoError(t, err)
		assert.Equal(t, 3, rows)
		assert.Equal(t, 3, cols)
	})

	t.Run("Connect four is 6x7", func(t *testing.T) {
		rows, cols, err := ConnectFour.Dimensions()

		require.NoError(t, err)
		assert.Equal(t, 6, rows)
		assert.Equal(t, 7, cols)
	})

	t.Run("Unknown type is rejected", func(t *testing.T) {
		_, _, err := GameType("gomoku").Dimensions()

		assert.ErrorIs(t, err, apperror.ErrUnknownGameType)
	})
}

func TestGame_PlayerByMark(t *testing.T) {
	// Given: a game with two seated players
	x := &Player{Mark: PlayerX, Level: Brilliant}
	o := &Player{Mark: PlayerO, Level: Dull}
	game := &Game{Players: []*Player{x, o}}

	// Then: players are found by mark, unknown marks give nil
	assert.Same(t, x, game.PlayerByMark(PlayerX))
	assert.Same(t, o, game.PlayerByMark(PlayerO))
	assert.Nil(t, game.PlayerByMark("Z"))
}

func TestDifficulty_String(t *testing.T) {
	assert.Equal(t, "Dull", Dull.String())
	assert.Equal(t, "Smart", Smart.String())
	assert.Equal(t, "Brilliant", Brilliant.String())
	assert.Equal(t, "2 Player Mode", TwoPlayerMode.String())
	assert.Equal(t, "Difficulty(7)", Difficulty(7).String())
}
