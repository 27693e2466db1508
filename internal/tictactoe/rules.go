// Package tictactoe holds the 3x3 line-forming game rules.
package tictactoe

import (
	"github.com/samber/lo"

	"github.com/rocketscienceinc/gameai/internal/entity"
)

const (
	Rows = 3
	Cols = 3
)

type winCombo struct {
	axis  entity.Axis
	cells [3]entity.Move
}

// WinCombos lists the 8 winning triples: rows, columns, then both diagonals.
var WinCombos = []winCombo{
	{entity.AxisRow, [3]entity.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}},
	{entity.AxisRow, [3]entity.Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}},
	{entity.AxisRow, [3]entity.Move{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}},
	{entity.AxisColumn, [3]entity.Move{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}},
	{entity.AxisColumn, [3]entity.Move{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}},
	{entity.AxisColumn, [3]entity.Move{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}},
	{entity.AxisDiagonalDescending, [3]entity.Move{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}},
	{entity.AxisDiagonalAscending, [3]entity.Move{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}}},
}

// Center is the opening cell.
var Center = entity.Move{Row: 1, Col: 1}

// CheckLineWin returns the first completed triple of the player.
func CheckLineWin(board entity.Board, player string) (entity.WinResult, bool) {
	if player == entity.EmptyCell || !board.HasDimensions(Rows, Cols) {
		return entity.WinResult{}, false
	}

	for _, combo := range WinCombos {
		complete := lo.EveryBy(combo.cells[:], func(cell entity.Move) bool {
			return board.At(cell) == player
		})
		if complete {
			return entity.WinResult{
				Axis:  combo.axis,
				Cells: append([]entity.Move(nil), combo.cells[:]...),
			}, true
		}
	}

	return entity.WinResult{}, false
}

// ValidMoves returns every empty cell in row-major order.
func ValidMoves(board entity.Board) []entity.Move {
	if !board.HasDimensions(Rows, Cols) {
		return nil
	}

	moves := make([]entity.Move, 0, Rows*Cols)
	for row := range Rows {
		for col := range Cols {
			if board[row][col] == entity.EmptyCell {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}
