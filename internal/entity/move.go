package entity

import "fmt"

// Move is a board coordinate. For connect four the row is the landing row of the column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("[%d, %d]", that.Row, that.Col)
}

type Axis string

const (
	AxisRow                Axis = "row"
	AxisColumn             Axis = "column"
	AxisDiagonalAscending  Axis = "diagonal-ascending"
	AxisDiagonalDescending Axis = "diagonal-descending"
)

// WinResult describes a completed line: its axis and the ordered cells forming it.
type WinResult struct {
	Axis  Axis   `json:"axis"`
	Cells []Move `json:"cells"`
}
