package cmd

import (
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-ai/internal"
	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
)

func Root(logger *slog.Logger, conf *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play Tic-Tac-Toe against an AI that never loses",
		Long: heredoc.Doc(`tictactoe plays a game of Tic-Tac-Toe on the console.

			You play O and the AI plays X. On your turn enter the row and
			the column of your move, both between 0 and 2, separated by a
			space. The AI searches the whole game tree before every move,
			so the best you can hope for is a draw.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			aiFirst, err := cmd.Flags().GetBool("ai-first")
			if err != nil {
				return err
			}

			if aiFirst {
				conf.FirstTurn = config.FirstTurnAI
			}

			return application.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.Flags().Bool("ai-first", false, "Let the AI make the first move")

	root.AddCommand(BestMove(logger))

	return root
}
