package service

import (
	"lukechampine.com/frand"

	"github.com/rocketscienceinc/gameai/internal/entity"
)

// Randomizer picks a uniform integer in [0, n).
type Randomizer interface {
	Intn(n int) int
}

type frandSource struct{}

// Intn uses the package-level frand generator, which is safe for concurrent use.
func (frandSource) Intn(n int) int {
	return frand.Intn(n)
}

// DefaultRandomizer returns the goroutine-safe source used when none is injected.
func DefaultRandomizer() Randomizer {
	return frandSource{}
}

// Strategy chooses the computer's move. It must not mutate the board it is given.
// The bool is false when no legal move exists.
type Strategy interface {
	ChooseMove(board entity.Board, aiMark, opponentMark string) (entity.Move, bool)
}

func pickRandom(rnd Randomizer, moves []entity.Move) (entity.Move, bool) {
	if len(moves) == 0 {
		return entity.Move{}, false
	}

	return moves[rnd.Intn(len(moves))], true
}
