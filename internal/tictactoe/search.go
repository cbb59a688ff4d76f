package tictactoe

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Scores lie in {-1, 0, 1}, so these bounds act as -inf and +inf.
const (
	scoreLowerBound = -2
	scoreUpperBound = 2
)

// SearchResult describes the outcome of a move search.
type SearchResult struct {
	Move  entity.Move `json:"move"`
	Score int         `json:"score"`
	Nodes int         `json:"nodes"`
}

// Engine searches the game tree to the end with minimax and alpha-beta pruning.
// The AI is the maximizer. An Engine is not safe for concurrent use.
type Engine struct {
	logger *slog.Logger
	nodes  int
}

func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "engine"),
	}
}

// side is the player placing marks at one level of the tree and the score order it prefers.
type side struct {
	mark   entity.Cell
	better func(score, best int) bool
}

var (
	maximizer = side{
		mark:   entity.AIPlayer,
		better: func(score, best int) bool { return score > best },
	}
	minimizer = side{
		mark:   entity.HumanPlayer,
		better: func(score, best int) bool { return score < best },
	}
)

func sideToMove(maximizing bool) side {
	if maximizing {
		return maximizer
	}
	return minimizer
}

// TerminalScore returns the score of a finished position. Wins are checked
// before fullness because the winning move may also fill the last cell.
func TerminalScore(board *entity.Board) (int, bool) {
	switch {
	case board.HasWinner(entity.AIPlayer):
		return 1, true
	case board.HasWinner(entity.HumanPlayer):
		return -1, true
	case board.IsFull():
		return 0, true
	default:
		return 0, false
	}
}

// Score returns the game-theoretic value of board under optimal play with
// the given side to move.
func (that *Engine) Score(board *entity.Board, maximizing bool) int {
	return that.Minimax(board, scoreLowerBound, scoreUpperBound, maximizing)
}

// Minimax returns the value of board within the (alpha, beta) window. The
// board is used as scratch space and is unchanged when Minimax returns.
func (that *Engine) Minimax(board *entity.Board, alpha, beta int, maximizing bool) int {
	that.nodes++

	if score, ok := TerminalScore(board); ok {
		return score
	}

	_, bestEval, _ := scan(board, sideToMove(maximizing),
		func() int {
			return that.Minimax(board, alpha, beta, !maximizing)
		},
		func(score int) bool {
			if maximizing {
				alpha = max(alpha, score)
			} else {
				beta = min(beta, score)
			}
			return beta <= alpha
		},
	)

	return bestEval
}

// Search picks the AI's move: the first empty cell, in row-major order, with
// the strictly highest score. It fails with apperror.ErrBoardFull when no
// empty cell is left.
func (that *Engine) Search(board *entity.Board) (SearchResult, error) {
	log := that.logger.With("method", "Search")

	that.nodes = 0

	move, score, found := scan(board, maximizer, func() int {
		return that.Minimax(board, scoreLowerBound, scoreUpperBound, false)
	}, nil)
	if !found {
		return SearchResult{}, apperror.ErrBoardFull
	}

	result := SearchResult{Move: move, Score: score, Nodes: that.nodes}
	log.Debug("search finished", "move", move.String(), "score", score, "nodes", result.Nodes)

	return result, nil
}

// BestMove returns the AI's move for board.
func (that *Engine) BestMove(board *entity.Board) (entity.Move, error) {
	result, err := that.Search(board)
	if err != nil {
		return entity.Move{}, err
	}

	return result.Move, nil
}

// scan tries s.mark on every empty cell in row-major order and scores each
// position with eval. The first cell with the best score wins ties. After each
// cell, prune may stop the scan early.
func scan(board *entity.Board, s side, eval func() int, prune func(score int) bool) (entity.Move, int, bool) {
	var (
		bestMove entity.Move
		bestEval int
		found    bool
	)

	for move := range board.EmptyCells() {
		score := try(board, move, s.mark, eval)

		if !found || s.better(score, bestEval) {
			bestMove, bestEval, found = move, score, true
		}

		if prune != nil && prune(score) {
			break
		}
	}

	return bestMove, bestEval, found
}

// try places mark on move, runs eval and restores the cell even if eval panics.
func try(board *entity.Board, move entity.Move, mark entity.Cell, eval func() int) int {
	board[move.Row][move.Col] = mark
	defer func() {
		board[move.Row][move.Col] = entity.EmptyCell
	}()

	return eval()
}
