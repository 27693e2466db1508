package entity

import (
	"github.com/samber/lo"
)

const EmptyCell = ""

// Board is a rectangular grid of marks, row 0 on top.
type Board [][]string

// NewBoard returns an empty board with the given dimensions.
func NewBoard(rows, cols int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]string, cols)
	}

	return board
}

// Clone returns a deep copy of the board.
func (that Board) Clone() Board {
	clone := make(Board, len(that))
	for i := range that {
		clone[i] = make([]string, len(that[i]))
		copy(clone[i], that[i])
	}

	return clone
}

func (that Board) Rows() int {
	return len(that)
}

// Cols returns the width of the first row, 0 for an empty grid.
func (that Board) Cols() int {
	if len(that) == 0 {
		return 0
	}

	return len(that[0])
}

// IsRectangular reports whether the board has at least one cell and all rows share the same length.
func (that Board) IsRectangular() bool {
	if that.Rows() == 0 || that.Cols() == 0 {
		return false
	}

	return lo.EveryBy(that, func(row []string) bool {
		return len(row) == that.Cols()
	})
}

// HasDimensions reports whether the board is rectangular with exactly rows x cols cells.
func (that Board) HasDimensions(rows, cols int) bool {
	return that.IsRectangular() && that.Rows() == rows && that.Cols() == cols
}

// Contains reports whether the move lies on the board.
func (that Board) Contains(move Move) bool {
	return move.Row >= 0 && move.Row < that.Rows() && move.Col >= 0 && move.Col < len(that[move.Row])
}

func (that Board) At(move Move) string {
	return that[move.Row][move.Col]
}

func (that Board) Set(move Move, mark string) {
	that[move.Row][move.Col] = mark
}

// IsEmpty reports whether no mark has been placed yet.
func (that Board) IsEmpty() bool {
	return lo.EveryBy(that, func(row []string) bool {
		return lo.Count(row, EmptyCell) == len(row)
	})
}

// CountEmpty returns the number of empty cells.
func (that Board) CountEmpty() int {
	return lo.SumBy(that, func(row []string) int {
		return lo.Count(row, EmptyCell)
	})
}

// Equal reports whether both boards hold the same marks in the same cells.
func (that Board) Equal(other Board) bool {
	if len(that) != len(other) {
		return false
	}

	for i := range that {
		if len(that[i]) != len(other[i]) {
			return false
		}

		for j := range that[i] {
			if that[i][j] != other[i][j] {
				return false
			}
		}
	}

	return true
}
