package tictactoe

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// tokens lays out the cell letters row-major, a..i.
var tokens = [entity.BoardSize][entity.BoardSize]string{
	{"a", "b", "c"},
	{"d", "e", "f"},
	{"g", "h", "i"},
}

var dictionary = buildDictionary()

func buildDictionary() map[string]entity.Move {
	moves := make(map[string]entity.Move, entity.BoardSize*entity.BoardSize)
	for row, line := range tokens {
		for col, token := range line {
			moves[token] = entity.Move{Row: row, Col: col}
		}
	}

	return moves
}

// Resolve maps a cell token to its coordinate. Tokens are case-insensitive.
func Resolve(token string) (entity.Move, bool) {
	move, ok := dictionary[strings.ToLower(token)]
	return move, ok
}

// Token returns the letter that names a cell.
func Token(row, col int) string {
	return tokens[row][col]
}

// IsToken reports whether s names a cell.
func IsToken(s string) bool {
	_, ok := Resolve(s)
	return ok
}
