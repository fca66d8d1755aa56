package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/telemetry"
)

// Presenter is the display and input side of a game.
type Presenter interface {
	Render(board entity.Board)
	Prompt(player entity.Player)
	ReadLine(ctx context.Context) (string, error)
	Reject(err error)
	Announce(outcome entity.Outcome)
}

// GameController owns the state of a single game and runs its turns.
type GameController struct {
	id        string
	logger    *slog.Logger
	tracer    trace.Tracer
	presenter Presenter
	state     entity.GameState
}

func NewGameController(logger *slog.Logger, presenter Presenter) *GameController {
	id := uuid.NewString()

	return &GameController{
		id:        id,
		logger:    logger.With("component", "game", "game_id", id),
		tracer:    telemetry.Tracer("tictactoe"),
		presenter: presenter,
		state:     entity.NewGameState(),
	}
}

func (that *GameController) ID() string {
	return that.id
}

// State returns a copy of the current game state.
func (that *GameController) State() entity.GameState {
	return that.state
}

// Play alternates turns until the game is won or tied, then announces the
// outcome once. Rejected input is reported and asked for again.
func (that *GameController) Play(ctx context.Context) (entity.Outcome, error) {
	ctx, span := that.tracer.Start(ctx, "game.play", trace.WithAttributes(
		attribute.String("game.id", that.id),
	))
	defer span.End()

	that.logger.Info("game started")
	that.presenter.Render(that.state.Board)

	for !that.state.IsFinished() {
		if err := ctx.Err(); err != nil {
			return that.state.Outcome, err
		}

		that.presenter.Prompt(that.state.Turn)

		line, err := that.presenter.ReadLine(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "read move")
			return that.state.Outcome, fmt.Errorf("failed read move: %w", err)
		}

		if err = that.Submit(ctx, line); err != nil {
			var invalid *InvalidMoveError
			if errors.As(err, &invalid) {
				that.presenter.Reject(err)
				continue
			}

			return that.state.Outcome, fmt.Errorf("failed submit move: %w", err)
		}

		that.presenter.Render(that.state.Board)
	}

	span.SetAttributes(
		attribute.String("game.outcome", that.state.Outcome.String()),
		attribute.Int("game.turns", that.state.TurnCount),
	)

	that.presenter.Announce(that.state.Outcome)

	return that.state.Outcome, nil
}

// Submit applies one token for the player whose turn it is. The token is
// trimmed; invalid tokens return an *InvalidMoveError and leave the state untouched.
func (that *GameController) Submit(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)

	if err := that.state.ConfirmOngoingState(); err != nil {
		return err
	}

	span := trace.SpanFromContext(ctx)
	player := that.state.Turn

	move, err := Validate(token, that.state.Board)
	if err != nil {
		that.logger.Info("move rejected", "player", player.String(), "token", token, "error", err)
		span.AddEvent("move.rejected", trace.WithAttributes(
			attribute.String("move.token", token),
			attribute.String("move.error", err.Error()),
		))

		return err
	}

	that.state.Board.Place(move.Row, move.Col, entity.MarkOf(player))
	that.state.TurnCount++
	that.state.Outcome = Detect(that.state.Board)

	if that.state.IsFinished() {
		that.state.Turn = entity.PlayerNone
	} else {
		that.state.Turn = player.Other()
	}

	that.logger.Debug("move accepted",
		"player", player.String(),
		"token", token,
		"turn", that.state.TurnCount,
	)
	span.AddEvent("move.accepted", trace.WithAttributes(
		attribute.String("move.player", player.String()),
		attribute.String("move.token", token),
		attribute.Int("move.turn", that.state.TurnCount),
	))

	if that.state.IsFinished() {
		that.logger.Info("game finished",
			"outcome", that.state.Outcome.String(),
			"turns", that.state.TurnCount,
		)
	}

	return nil
}
