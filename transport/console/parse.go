package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// parseMove reads "row col" as two whitespace separated integers. Range is checked by the game.
func parseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrMalformedInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q", apperror.ErrMalformedInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q", apperror.ErrMalformedInput, fields[1])
	}

	return entity.Move{Row: row, Col: col}, nil
}
