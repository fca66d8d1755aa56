package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// InvalidMoveError is a rejected token. Reason is apperror.ErrUnknownToken or
// apperror.ErrCellOccupied.
type InvalidMoveError struct {
	Token  string
	Reason error
}

func (that *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %q: %v", that.Token, that.Reason)
}

func (that *InvalidMoveError) Unwrap() error {
	return that.Reason
}

// Validate resolves a token against the board without touching it.
func Validate(token string, board entity.Board) (entity.Move, error) {
	if len(token) != 1 {
		return entity.Move{}, &InvalidMoveError{Token: token, Reason: apperror.ErrUnknownToken}
	}

	move, ok := Resolve(token)
	if !ok {
		return entity.Move{}, &InvalidMoveError{Token: token, Reason: apperror.ErrUnknownToken}
	}

	if !board.Get(move.Row, move.Col).IsEmpty() {
		return entity.Move{}, &InvalidMoveError{Token: token, Reason: apperror.ErrCellOccupied}
	}

	return move, nil
}
