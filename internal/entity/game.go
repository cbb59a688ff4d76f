package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	Board  Board  `json:"board"`
	Winner Cell   `json:"winner"`
	Status string `json:"status"`
	Turn   Cell   `json:"player_turn"`
}

func NewGame(firstTurn Cell) *Game {
	return &Game{
		Turn:   firstTurn,
		Status: StatusOngoing,
	}
}

// DetermineGameResult returns the winning mark, if any, and whether the game is over.
// Wins are checked before fullness since the winning move may fill the last cell.
func (that *Game) DetermineGameResult() (Cell, bool) {
	for _, player := range []Cell{AIPlayer, HumanPlayer} {
		if that.Board.HasWinner(player) {
			return player, true
		}
	}

	return EmptyCell, that.Board.IsFull()
}

func (that *Game) UpdateGameState() {
	winner, finished := that.DetermineGameResult()
	if !finished {
		that.Status = StatusOngoing
		return
	}

	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = EmptyCell
}

func (that *Game) MakeTurn(playerMark Cell, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !move.InBounds() {
		return fmt.Errorf("%w: cell %s", apperror.ErrInvalidCell, move)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[move.Row][move.Col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[move.Row][move.Col] = playerMark
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// ConfirmOngoingState returns apperror.ErrGameFinished once the game is over.
func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsOngoing():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// IsDraw reports a finished game without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == EmptyCell
}
