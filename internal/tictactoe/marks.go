package tictactoe

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// NewMarks checks that both symbols are single visible characters, distinct
// from each other and from the cell tokens an empty board shows.
func NewMarks(first, second string) (entity.Marks, error) {
	for _, mark := range []string{first, second} {
		if utf8.RuneCountInString(mark) != 1 {
			return entity.Marks{}, fmt.Errorf("%w: %q must be a single character", apperror.ErrInvalidMarks, mark)
		}

		r, _ := utf8.DecodeRuneInString(mark)
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return entity.Marks{}, fmt.Errorf("%w: %q is not printable", apperror.ErrInvalidMarks, mark)
		}

		if IsToken(mark) {
			return entity.Marks{}, fmt.Errorf("%w: %q collides with a cell token", apperror.ErrInvalidMarks, mark)
		}
	}

	if first == second {
		return entity.Marks{}, fmt.Errorf("%w: both players use %q", apperror.ErrInvalidMarks, first)
	}

	return entity.Marks{First: first, Second: second}, nil
}
