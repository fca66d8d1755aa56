package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Status classifies a game outcome.
type Status int

const (
	StatusInProgress Status = iota
	StatusWin
	StatusTie
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusWin:
		return "win"
	case StatusTie:
		return "tie"
	default:
		return "unknown"
	}
}

// Outcome is the result of inspecting a board. Winner is set only for StatusWin.
type Outcome struct {
	Status Status
	Winner Player
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(player Player) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func Tie() Outcome {
	return Outcome{Status: StatusTie}
}

func (that Outcome) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that Outcome) String() string {
	if that.Status == StatusWin {
		return fmt.Sprintf("win(%s)", that.Winner)
	}

	return that.Status.String()
}

// GameState is everything the turn controller owns for one game.
// Turn is PlayerNone once the outcome is terminal.
type GameState struct {
	Board     Board
	Turn      Player
	TurnCount int
	Outcome   Outcome
}

func NewGameState() GameState {
	return GameState{
		Board:   NewBoard(),
		Turn:    PlayerFirst,
		Outcome: InProgress(),
	}
}

func (that *GameState) IsFinished() bool {
	return that.Outcome.IsFinished()
}

func (that *GameState) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}
