package service

import (
	"github.com/rocketscienceinc/gameai/internal/entity"
	"github.com/rocketscienceinc/gameai/internal/game"
)

// RandomStrategy plays a uniformly random legal move.
type RandomStrategy struct {
	rules  game.Rules
	random Randomizer
}

func NewRandomStrategy(rules game.Rules, random Randomizer) *RandomStrategy {
	return &RandomStrategy{
		rules:  rules,
		random: random,
	}
}

func (that *RandomStrategy) ChooseMove(board entity.Board, _, _ string) (entity.Move, bool) {
	return pickRandom(that.random, that.rules.ValidMoves(board))
}
