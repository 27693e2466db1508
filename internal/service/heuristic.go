package service

import (
	"github.com/rocketscienceinc/gameai/internal/entity"
	"github.com/rocketscienceinc/gameai/internal/game"
)

type immediateKind int

const (
	immediateNone immediateKind = iota
	immediateWin
	immediateBlock
)

func (that immediateKind) String() string {
	switch that {
	case immediateWin:
		return "win"
	case immediateBlock:
		return "block"
	default:
		return "none"
	}
}

// HeuristicStrategy looks one ply ahead: win if possible, otherwise block, otherwise random.
type HeuristicStrategy struct {
	rules    game.Rules
	fallback *RandomStrategy
}

func NewHeuristicStrategy(rules game.Rules, random Randomizer) *HeuristicStrategy {
	return &HeuristicStrategy{
		rules:    rules,
		fallback: NewRandomStrategy(rules, random),
	}
}

func (that *HeuristicStrategy) ChooseMove(board entity.Board, aiMark, opponentMark string) (entity.Move, bool) {
	if move, kind := findImmediateMove(that.rules, board, aiMark, opponentMark); kind != immediateNone {
		return move, true
	}

	return that.fallback.ChooseMove(board, aiMark, opponentMark)
}

// findImmediateMove returns the first winning move for aiMark, else the first cell that
// stops an opponent win, both in generation order.
func findImmediateMove(rules game.Rules, board entity.Board, aiMark, opponentMark string) (entity.Move, immediateKind) {
	moves := rules.ValidMoves(board)

	for _, move := range moves {
		if winsWith(rules, board, move, aiMark) {
			return move, immediateWin
		}
	}

	for _, move := range moves {
		if winsWith(rules, board, move, opponentMark) {
			return move, immediateBlock
		}
	}

	return entity.Move{}, immediateNone
}

// winsWith plays the move on a virtual board.
func winsWith(rules game.Rules, board entity.Board, move entity.Move, mark string) bool {
	virtual := board.Clone()
	virtual.Set(move, mark)

	_, won := rules.CheckWin(virtual, move, mark)

	return won
}
