package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(first, second string) *config.Config {
	return &config.Config{
		LogLevel: "debug",
		NoColor:  true,
		Marks:    config.Marks{First: first, Second: second},
	}
}

func TestPlay(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Tie with custom marks", func(t *testing.T) {
		// Given: a session that fills the board without a line
		out := &bytes.Buffer{}
		in := strings.NewReader("a\ne\ni\nb\nh\ng\nc\nf\nd\n")

		// When: the game is played
		outcome, err := Play(context.Background(), logger, testConfig("#", "@"), in, out)

		// Then: the tie is announced and custom marks are drawn
		require.NoError(t, err)
		assert.Equal(t, entity.Tie(), outcome)
		assert.Contains(t, out.String(), " # | @ | # \n")
		assert.Contains(t, out.String(), "It's a tie!\n")
	})

	t.Run("Over-long line is rejected and the game goes on", func(t *testing.T) {
		// Given: a line far longer than any read buffer, then a winning sequence
		out := &bytes.Buffer{}
		in := strings.NewReader(strings.Repeat("z", 70000) + "\na\ne\nb\nd\nc\n")

		// When: the game is played
		outcome, err := Play(context.Background(), logger, testConfig("o", "x"), in, out)

		// Then: the long line is reported as an unknown cell and first player still wins
		require.NoError(t, err)
		assert.Equal(t, entity.Win(entity.PlayerFirst), outcome)
		assert.Contains(t, out.String(), "is not a cell")
		assert.Contains(t, out.String(), "Player o wins!\n")
	})

	t.Run("Invalid marks", func(t *testing.T) {
		_, err := Play(context.Background(), logger, testConfig("x", "x"), strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInvalidMarks)
	})

	t.Run("Input closed mid-game", func(t *testing.T) {
		_, err := Play(context.Background(), logger, testConfig("o", "x"), strings.NewReader("a\n"), io.Discard)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
