package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	// When: a new game state is created
	state := NewGameState()

	// Then: the first player is to move on an empty board
	expected := GameState{
		Board:     Board{},
		Turn:      PlayerFirst,
		TurnCount: 0,
		Outcome:   Outcome{Status: StatusInProgress},
	}

	require.Equal(t, expected, state)
	require.False(t, state.IsFinished())
}

func TestGameState_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is in progress", func(t *testing.T) {
		state := NewGameState()

		assert.NoError(t, state.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished after a win", func(t *testing.T) {
		state := NewGameState()
		state.Outcome = Win(PlayerSecond)

		assert.ErrorIs(t, state.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns ErrGameFinished after a tie", func(t *testing.T) {
		state := NewGameState()
		state.Outcome = Tie()

		assert.ErrorIs(t, state.ConfirmOngoingState(), apperror.ErrGameFinished)
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "in_progress", InProgress().String())
	assert.Equal(t, "win(first)", Win(PlayerFirst).String())
	assert.Equal(t, "tie", Tie().String())
}

func TestPlayer_Other(t *testing.T) {
	assert.Equal(t, PlayerSecond, PlayerFirst.Other())
	assert.Equal(t, PlayerFirst, PlayerSecond.Other())
	assert.Equal(t, PlayerNone, PlayerNone.Other())
}

func TestMarks_Symbol(t *testing.T) {
	marks := Marks{First: "o", Second: "x"}

	assert.Equal(t, "o", marks.Symbol(PlayerFirst))
	assert.Equal(t, "x", marks.Symbol(PlayerSecond))
	assert.Empty(t, marks.Symbol(PlayerNone))
}
