package service

import (
	"math"

	"github.com/rocketscienceinc/gameai/internal/entity"
	"github.com/rocketscienceinc/gameai/internal/game"
)

const (
	winScore  = 10
	drawScore = 0
)

type MinimaxOptions struct {
	// OpeningShortcut answers an empty board without searching.
	OpeningShortcut bool
	// ImmediateCheck plays an immediate win or block before searching.
	ImmediateCheck bool
	// DisablePruning turns alpha-beta cutoffs off; the chosen move does not change.
	DisablePruning bool
}

// SearchResult is the outcome of one top-level search.
type SearchResult struct {
	Move    entity.Move
	Score   int
	Nodes   int
	Opening bool
}

// MinimaxStrategy searches the game tree with alpha-beta pruning.
// Scores are 10-d for an AI win and d-10 for a loss, d being the ply depth below the root move.
type MinimaxStrategy struct {
	rules   game.Rules
	random  Randomizer
	options MinimaxOptions
}

func NewMinimaxStrategy(rules game.Rules, random Randomizer, options MinimaxOptions) *MinimaxStrategy {
	return &MinimaxStrategy{
		rules:   rules,
		random:  random,
		options: options,
	}
}

func (that *MinimaxStrategy) ChooseMove(board entity.Board, aiMark, opponentMark string) (entity.Move, bool) {
	if that.options.ImmediateCheck {
		if move, kind := findImmediateMove(that.rules, board, aiMark, opponentMark); kind != immediateNone {
			return move, true
		}
	}

	result, ok := that.Search(board, aiMark, opponentMark)
	if !ok {
		return entity.Move{}, false
	}

	return result.Move, true
}

// Search picks the best move for aiMark. The caller's board is never modified.
func (that *MinimaxStrategy) Search(board entity.Board, aiMark, opponentMark string) (SearchResult, bool) {
	working := board.Clone()

	moves := that.rules.ValidMoves(working)
	if len(moves) == 0 {
		return SearchResult{}, false
	}

	if that.options.OpeningShortcut && working.IsEmpty() {
		if move, ok := pickRandom(that.random, that.rules.OpeningMoves(working)); ok {
			return SearchResult{Move: move, Opening: true}, true
		}
	}

	tree := &searchTree{
		rules:        that.rules,
		board:        working,
		aiMark:       aiMark,
		opponentMark: opponentMark,
		prune:        !that.options.DisablePruning,
	}

	best := SearchResult{Score: math.MinInt}
	found := false
	alpha, beta := math.MinInt, math.MaxInt

	for _, move := range moves {
		working.Set(move, aiMark)
		score := tree.minimax(move, aiMark, 0, false, alpha, beta)
		working.Set(move, entity.EmptyCell)

		if score > best.Score {
			best.Score = score
			best.Move = move
			found = true
		}

		if tree.prune {
			alpha = max(alpha, best.Score)
		}
	}

	if !found {
		best.Move = moves[0]
	}
	best.Nodes = tree.nodes

	return best, true
}

// searchTree owns the working board; every apply is undone before the next sibling.
type searchTree struct {
	rules        game.Rules
	board        entity.Board
	aiMark       string
	opponentMark string
	prune        bool
	nodes        int
}

// minimax scores the position reached by lastMark playing last at depth.
func (that *searchTree) minimax(last entity.Move, lastMark string, depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	if _, won := that.rules.CheckWin(that.board, last, lastMark); won {
		if lastMark == that.aiMark {
			return winScore - depth
		}
		return -winScore + depth
	}

	if that.rules.MaxDepth != game.Unbounded && depth > that.rules.MaxDepth {
		return drawScore
	}

	moves := that.rules.ValidMoves(that.board)
	if len(moves) == 0 {
		return drawScore
	}

	if maximizing {
		best := math.MinInt
		for _, move := range moves {
			that.board.Set(move, that.aiMark)
			score := that.minimax(move, that.aiMark, depth+1, false, alpha, beta)
			that.board.Set(move, entity.EmptyCell)

			best = max(best, score)
			alpha = max(alpha, best)
			if that.prune && beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range moves {
		that.board.Set(move, that.opponentMark)
		score := that.minimax(move, that.opponentMark, depth+1, true, alpha, beta)
		that.board.Set(move, entity.EmptyCell)

		best = min(best, score)
		beta = min(beta, best)
		if that.prune && beta <= alpha {
			break
		}
	}
	return best
}
