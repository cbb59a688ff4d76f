package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type moveSearcher interface {
	BestMove(board *entity.Board) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
	engine moveSearcher
}

func NewBotService(logger *slog.Logger, engine moveSearcher) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		engine: engine,
	}
}

// MakeTurn plays the engine's move for the AI and returns it.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn")

	if err := game.ConfirmOngoingState(); err != nil {
		return entity.Move{}, err
	}

	move, err := that.engine.BestMove(&game.Board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to find move: %w", err)
	}

	if err = game.MakeTurn(entity.AIPlayer, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Info("bot made turn", "move", move.String(), "status", game.Status)

	return move, nil
}
