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

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-ai/transport/console"
)

// RunApp - plays one console game between the human on in/out and the AI.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
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

	engine := tictactoe.NewEngine(logger)
	botService := service.NewBotService(logger, engine)
	server := console.New(logger, botService, in, out)

	firstTurn := entity.HumanPlayer
	if conf.AIMovesFirst() {
		firstTurn = entity.AIPlayer
	}

	if err := server.Play(ctx, entity.NewGame(firstTurn)); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Game interrupted")
			return nil
		}

		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
