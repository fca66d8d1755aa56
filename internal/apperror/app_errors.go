package apperror

import "errors"

var (
	ErrUnknownToken = errors.New("unknown cell token")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidMarks = errors.New("invalid player marks")
	ErrInputClosed  = errors.New("input closed before the game finished")
)
