package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/terminal"
)

// RunApp - runs one game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if conf.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, conf.Telemetry.Endpoint)
		if err != nil {
			log.Warn("telemetry disabled", "error", err)
		} else {
			defer func() {
				if err = shutdown(context.Background()); err != nil {
					log.Error("could not shut down telemetry", "error", err)
				}
			}()
		}
	}

	if _, err := Play(ctx, logger, conf, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return err
	}

	return nil
}

// Play wires a console presenter to a fresh game and runs it to the end.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (entity.Outcome, error) {
	marks, err := tictactoe.NewMarks(conf.Marks.First, conf.Marks.Second)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("could not configure marks: %w", err)
	}

	console := terminal.New(in, out, marks, !conf.NoColor)
	defer console.Close()
	gameController := tictactoe.NewGameController(logger, console)

	outcome, err := gameController.Play(ctx)
	if err != nil {
		return outcome, fmt.Errorf("game %s stopped: %w", gameController.ID(), err)
	}

	return outcome, nil
}
