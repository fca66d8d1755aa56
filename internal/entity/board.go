package entity

import "fmt"

const BoardSize = 3

// Cell is the content of one board position.
type Cell int

const (
	CellEmpty Cell = iota
	CellFirst
	CellSecond
)

// MarkOf returns the cell value a player leaves behind.
func MarkOf(player Player) Cell {
	switch player {
	case PlayerFirst:
		return CellFirst
	case PlayerSecond:
		return CellSecond
	default:
		panic(fmt.Sprintf("no mark for player %v", player))
	}
}

// Owner reports which player marked the cell, PlayerNone for an empty one.
func (that Cell) Owner() Player {
	switch that {
	case CellFirst:
		return PlayerFirst
	case CellSecond:
		return PlayerSecond
	default:
		return PlayerNone
	}
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// Move is a validated board coordinate.
type Move struct {
	Row int
	Col int
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Board is a 3x3 row-major grid. The zero value is an empty board.
type Board [BoardSize][BoardSize]Cell

func NewBoard() Board {
	return Board{}
}

// Place marks an empty cell. The caller validates the move first, so a
// placement outside the grid or over a marked cell is a programming error.
func (that *Board) Place(row, col int, mark Cell) {
	if !(Move{Row: row, Col: col}).InRange() {
		panic(fmt.Sprintf("board: cell (%d,%d) out of range", row, col))
	}

	if mark == CellEmpty {
		panic(fmt.Sprintf("board: empty mark placed at (%d,%d)", row, col))
	}

	if !that[row][col].IsEmpty() {
		panic(fmt.Sprintf("board: cell (%d,%d) already marked", row, col))
	}

	that[row][col] = mark
}

func (that Board) Get(row, col int) Cell {
	return that[row][col]
}

func (that Board) AllCellsFilled() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Filled counts marked cells.
func (that Board) Filled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if !cell.IsEmpty() {
				filled++
			}
		}
	}

	return filled
}
