package service

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSearchFailed = errors.New("search failed")

type stubSearcher struct {
	move entity.Move
	err  error
}

func (that *stubSearcher) BestMove(*entity.Board) (entity.Move, error) {
	return that.move, that.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Plays the winning move", func(t *testing.T) {
		// Given: the AI can complete the top row
		logger := discardLogger()
		bot := NewBotService(logger, tictactoe.NewEngine(logger))

		game := entity.NewGame(entity.AIPlayer)
		game.Board = entity.Board{
			{entity.AIPlayer, entity.AIPlayer, entity.EmptyCell},
			{entity.HumanPlayer, entity.HumanPlayer, entity.EmptyCell},
			{entity.EmptyCell, entity.EmptyCell, entity.EmptyCell},
		}

		// When: the bot makes its turn
		move, err := bot.MakeTurn(game)

		// Then: it wins the game
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.AIPlayer, game.Winner)
	})

	t.Run("Hands the turn back to the human", func(t *testing.T) {
		logger := discardLogger()
		bot := NewBotService(logger, tictactoe.NewEngine(logger))
		game := entity.NewGame(entity.AIPlayer)

		_, err := bot.MakeTurn(game)

		require.NoError(t, err)
		assert.Equal(t, entity.HumanPlayer, game.Turn)
		assert.Equal(t, 1, game.Board.Count(entity.AIPlayer))
	})

	t.Run("Returns ErrGameFinished for a finished game", func(t *testing.T) {
		bot := NewBotService(discardLogger(), &stubSearcher{})
		game := &entity.Game{Status: entity.StatusFinished}

		_, err := bot.MakeTurn(game)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Wraps search errors", func(t *testing.T) {
		bot := NewBotService(discardLogger(), &stubSearcher{err: errSearchFailed})
		game := entity.NewGame(entity.AIPlayer)

		_, err := bot.MakeTurn(game)

		require.ErrorIs(t, err, errSearchFailed)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		// Given: it is the human's turn
		bot := NewBotService(discardLogger(), &stubSearcher{move: entity.Move{Row: 1, Col: 1}})
		game := entity.NewGame(entity.HumanPlayer)

		// When: the bot tries to move
		_, err := bot.MakeTurn(game)

		// Then: ErrNotYourTurn is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})
}
