// Package connectfour holds the 6x7 gravity drop-piece game rules.
package connectfour

import (
	"github.com/rocketscienceinc/gameai/internal/entity"
)

const (
	Rows = 6
	Cols = 7

	// RunLength is the number of contiguous pieces that wins.
	RunLength = 4
)

type direction struct {
	axis entity.Axis
	dRow int
	dCol int
}

// directions are walked forward and backward from the placed piece.
var directions = []direction{
	{axis: entity.AxisRow, dRow: 0, dCol: 1},
	{axis: entity.AxisColumn, dRow: 1, dCol: 0},
	{axis: entity.AxisDiagonalDescending, dRow: 1, dCol: 1},
	{axis: entity.AxisDiagonalAscending, dRow: -1, dCol: 1},
}

// OpeningColumns are the horizontally central columns.
var OpeningColumns = []int{Cols/2 - 1, Cols / 2, Cols/2 + 1}

// CheckRunWin looks for a run of four through the piece just placed at (placedRow, placedCol).
// Only lines through that cell are inspected, so it must be called with the most recent move.
// The first axis reaching four wins; a second completed line is not reported.
func CheckRunWin(board entity.Board, placedRow, placedCol int, player string) (entity.WinResult, bool) {
	placed := entity.Move{Row: placedRow, Col: placedCol}
	if player == entity.EmptyCell || !board.HasDimensions(Rows, Cols) || !board.Contains(placed) {
		return entity.WinResult{}, false
	}

	if board.At(placed) != player {
		return entity.WinResult{}, false
	}

	for _, dir := range directions {
		backward := countInDirection(board, placed, -dir.dRow, -dir.dCol, player)
		forward := countInDirection(board, placed, dir.dRow, dir.dCol, player)
		if backward+forward+1 < RunLength {
			continue
		}

		// a window of four inside the run that still contains the placed piece
		start := max(-backward, -(RunLength - 1))
		cells := make([]entity.Move, 0, RunLength)
		for step := start; step < start+RunLength; step++ {
			cells = append(cells, entity.Move{
				Row: placedRow + step*dir.dRow,
				Col: placedCol + step*dir.dCol,
			})
		}

		return entity.WinResult{Axis: dir.axis, Cells: cells}, true
	}

	return entity.WinResult{}, false
}

// countInDirection counts contiguous player pieces next to the origin, origin excluded.
func countInDirection(board entity.Board, origin entity.Move, dRow, dCol int, player string) int {
	count := 0
	cell := entity.Move{Row: origin.Row + dRow, Col: origin.Col + dCol}
	for board.Contains(cell) && board.At(cell) == player {
		count++
		cell.Row += dRow
		cell.Col += dCol
	}

	return count
}

// LandingRow returns the lowest empty row of the column, false when the column is full.
func LandingRow(board entity.Board, col int) (int, bool) {
	if col < 0 || col >= board.Cols() {
		return -1, false
	}

	for row := board.Rows() - 1; row >= 0; row-- {
		if board[row][col] == entity.EmptyCell {
			return row, true
		}
	}

	return -1, false
}

// ValidMoves returns one landing cell per non-full column, left to right.
func ValidMoves(board entity.Board) []entity.Move {
	if !board.HasDimensions(Rows, Cols) {
		return nil
	}

	moves := make([]entity.Move, 0, Cols)
	for col := range Cols {
		if row, ok := LandingRow(board, col); ok {
			moves = append(moves, entity.Move{Row: row, Col: col})
		}
	}

	return moves
}
