package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game is already started")
	ErrUnknownGameStatus  = errors.New("unknown game status")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrInvalidCell        = errors.New("invalid cell index")
	ErrColumnFull         = errors.New("column is full")

	ErrUnknownGameType   = errors.New("unknown game type")
	ErrMalformedBoard    = errors.New("malformed board")
	ErrInvalidMarks      = errors.New("invalid player marks")
	ErrUnknownDifficulty = errors.New("unknown difficulty level")
	ErrTwoPlayerMode     = errors.New("two player mode has no computer move")
)
