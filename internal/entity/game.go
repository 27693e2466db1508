package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gameai/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"
)

// GameType selects board dimensions, move generation and win detection.
type GameType string

const (
	TicTacToe   GameType = "tictactoe"
	ConnectFour GameType = "connectfour"
)

// Dimensions returns rows and columns of the board for the game type.
func (that GameType) Dimensions() (int, int, error) {
	switch that {
	case TicTacToe:
		return 3, 3, nil
	case ConnectFour:
		return 6, 7, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, string(that))
	}
}

// Difficulty is the computer opponent level.
type Difficulty int

const (
	Dull Difficulty = iota
	Smart
	Brilliant
	TwoPlayerMode
)

func (that Difficulty) String() string {
	switch that {
	case Dull:
		return "Dull"
	case Smart:
		return "Smart"
	case Brilliant:
		return "Brilliant"
	case TwoPlayerMode:
		return "2 Player Mode"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(that))
	}
}

// Game is the live record of one match.
type Game struct {
	ID      string     `json:"id"`
	Type    GameType   `json:"type"`
	Board   Board      `json:"board"`
	Winner  string     `json:"winner"`
	WinLine *WinResult `json:"win_line,omitempty"`
	Status  string     `json:"status"`
	Turn    string     `json:"player_turn"`
	Moves   []Move     `json:"moves,omitempty"`
	Players []*Player  `json:"players,omitempty"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// PlayerByMark returns the seated player holding the mark, nil if none.
func (that *Game) PlayerByMark(mark string) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// Opponent returns the other default mark.
func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
