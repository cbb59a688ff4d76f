package entity

import (
	"fmt"
	"iter"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Size is the number of rows and columns of the board.
const Size = 3

// Cell is the content of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

// The AI always plays X and the human always plays O.
const (
	AIPlayer    = PlayerX
	HumanPlayer = PlayerO
)

var WinCombos = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func ParseCell(r rune) (Cell, error) {
	switch r {
	case 'X', 'x':
		return PlayerX, nil
	case 'O', 'o':
		return PlayerO, nil
	case '-', '.', '_':
		return EmptyCell, nil
	default:
		return EmptyCell, fmt.Errorf("%w: unknown cell %q", apperror.ErrMalformedInput, r)
	}
}

// Move identifies a board square by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a row-major 3x3 grid. Cells are read and written directly by callers.
type Board [Size][Size]Cell

// ParseBoard reads nine cells in row-major order. Whitespace and '/' row separators are ignored.
func ParseBoard(s string) (Board, error) {
	var board Board

	count := 0
	for _, r := range s {
		if r == '/' || r == ' ' || r == '\t' || r == '\n' {
			continue
		}

		if count == Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrMalformedInput, Size*Size)
		}

		cell, err := ParseCell(r)
		if err != nil {
			return Board{}, err
		}

		board[count/Size][count%Size] = cell
		count++
	}

	if count != Size*Size {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrMalformedInput, Size*Size, count)
	}

	return board, nil
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// HasWinner reports whether player holds every cell of any row, column or diagonal.
func (that *Board) HasWinner(player Cell) bool {
	for _, combo := range WinCombos {
		a, b, c := combo[0], combo[1], combo[2]
		if that[a.Row][a.Col] == player && that[b.Row][b.Col] == player && that[c.Row][c.Col] == player {
			return true
		}
	}

	return false
}

// Evaluate scores a terminal board: +1 when the AI has a line, -1 when the human does, 0 otherwise.
func (that *Board) Evaluate() int {
	switch {
	case that.HasWinner(AIPlayer):
		return 1
	case that.HasWinner(HumanPlayer):
		return -1
	default:
		return 0
	}
}

// EmptyCells yields the empty squares in row-major order. The emptiness of
// each square is checked when the iteration reaches it.
func (that *Board) EmptyCells() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for row := range Size {
			for col := range Size {
				if that[row][col] != EmptyCell {
					continue
				}

				if !yield(Move{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// Count returns the number of squares holding cell.
func (that *Board) Count(cell Cell) int {
	n := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				n++
			}
		}
	}

	return n
}

// String renders one line per row with cells separated by a single space.
func (that *Board) String() string {
	var sb strings.Builder

	for _, row := range that {
		for col, cell := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
