package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	promptMove = "Enter row and column (0-2): "
	msgAITurn  = "AI's turn:"

	msgYouWin         = "You win!"
	msgAIWins         = "AI wins!"
	msgDraw           = "It's a draw!"
	msgCellOccupied   = "Cell already occupied. Try again."
	msgInvalidInput   = "Invalid input. Try again."
	msgCellOutOfRange = "Cell out of range. Try again."
)

var ErrInputClosed = errors.New("input closed")

type bot interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

// Server plays games over a line-oriented text stream.
type Server struct {
	logger *slog.Logger
	bot    bot

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, bot bot, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		bot:    bot,
		in:     in,
		out:    out,
	}
}

// Play runs game until it finishes, the input closes or ctx is cancelled.
func (that *Server) Play(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "Play")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	log.Info("game started", "first_turn", game.Turn.String())
	that.printBoard(&game.Board)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		if game.Turn == entity.AIPlayer {
			err = that.handleAITurn(game)
		} else {
			err = that.handleHumanTurn(ctx, game, lines)
		}
		if err != nil {
			return err
		}

		that.announceResult(game)
	}

	log.Info("game finished", "winner", game.Winner.String(), "draw", game.IsDraw())

	return nil
}

func (that *Server) handleAITurn(game *entity.Game) error {
	that.println(msgAITurn)

	if _, err := that.bot.MakeTurn(game); err != nil {
		return fmt.Errorf("failed to make AI turn: %w", err)
	}

	that.printBoard(&game.Board)

	return nil
}

// handleHumanTurn prompts until the human enters a legal move.
func (that *Server) handleHumanTurn(ctx context.Context, game *entity.Game, lines <-chan string) error {
	log := that.logger.With("method", "handleHumanTurn")

	for {
		that.print(promptMove)

		line, err := nextLine(ctx, lines)
		if err != nil {
			return err
		}

		move, err := parseMove(line)
		if err == nil {
			err = game.MakeTurn(entity.HumanPlayer, move)
		}

		switch {
		case err == nil:
			that.printBoard(&game.Board)
			return nil
		case errors.Is(err, apperror.ErrMalformedInput):
			that.println(msgInvalidInput)
		case errors.Is(err, apperror.ErrInvalidCell):
			that.println(msgCellOutOfRange)
		case errors.Is(err, apperror.ErrCellOccupied):
			that.println(msgCellOccupied)
		default:
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("move rejected", "input", line, "error", err)
	}
}

func (that *Server) announceResult(game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	switch game.Winner {
	case entity.HumanPlayer:
		that.println(msgYouWin)
	case entity.AIPlayer:
		that.println(msgAIWins)
	default:
		that.println(msgDraw)
	}
}

// readLines feeds input lines into a channel that is closed at EOF. Reading
// happens on its own goroutine so that a cancelled context is noticed while
// waiting for the human.
func (that *Server) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func nextLine(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", ErrInputClosed
		}
		return line, nil
	}
}

func (that *Server) printBoard(board *entity.Board) {
	that.println(board.String())
}

func (that *Server) println(s string) {
	that.print(s + "\n")
}

func (that *Server) print(s string) {
	if _, err := io.WriteString(that.out, s); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
