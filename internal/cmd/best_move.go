package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

// tictactoe best-move
func BestMove(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best-move <board>",
		Short: "Print the AI's move for a position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`best-move searches the given position and prints the cell
			the AI would play, followed by the score of the position
			(1 AI wins, 0 draw, -1 human wins) under optimal play.

			The board is given as nine cells in row-major order, using
			X for the AI, O for the human and - for an empty cell. Rows
			may be separated with a slash, e.g. "XX-/OO-/---".`),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return fmt.Errorf("invalid board: %w", err)
			}

			result, err := tictactoe.NewEngine(logger).Search(&board)
			if err != nil {
				return fmt.Errorf("failed to search board: %w", err)
			}

			out := cmd.OutOrStdout()

			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(out).Encode(result)
			}

			_, err = fmt.Fprintf(out, "%d %d\nscore: %d\n", result.Move.Row, result.Move.Col, result.Score)
			return err
		},
	}

	cmd.Flags().Bool("json", false, "Print the search result as JSON")

	return cmd
}
