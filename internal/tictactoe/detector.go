package tictactoe

import "github.com/rocketscienceinc/tictactoe-terminal/internal/entity"

// WinCombos lists the winning lines as row-major cell indices: rows, then
// columns, then the two diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Detect classifies the board. A completed line wins even on a full board.
func Detect(board entity.Board) entity.Outcome {
	for _, combo := range WinCombos {
		a, b, c := cellAt(board, combo[0]), cellAt(board, combo[1]), cellAt(board, combo[2])
		if !a.IsEmpty() && a == b && b == c {
			return entity.Win(a.Owner())
		}
	}

	if board.AllCellsFilled() {
		return entity.Tie()
	}

	return entity.InProgress()
}

func cellAt(board entity.Board, index int) entity.Cell {
	return board.Get(index/entity.BoardSize, index%entity.BoardSize)
}
