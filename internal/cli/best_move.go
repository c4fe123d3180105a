package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func newBestMoveCmd(opts *options) *cobra.Command {
	var mark string

	cmd := &cobra.Command{
		Use:   "best-move <board>",
		Short: "Print the optimal move for a position",
		Long: `Print the optimal move for a position as "row col" (1-based).

The board is nine symbols in row-major order, X, O and '.' for empty.
Spaces and '/' may separate rows, e.g. "X.. .X. O..".`,
		Example: `  tictactoe best-move "X.. .X. O.." --mark O`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return err
			}

			side, err := entity.ParseCell(mark)
			if err != nil {
				return err
			}

			opts.conf.Game.Mode = entity.ModeOptimal

			bot, closeBot, err := app.NewBot(cmd.Context(), opts.logger, opts.conf)
			if err != nil {
				return err
			}
			defer closeBot()

			move, err := bot.ChooseMove(cmd.Context(), &board, side)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", move.Row+1, move.Col+1)
			return err
		},
	}

	cmd.Flags().StringVar(&mark, "mark", "O", "Side to move: X or O")

	return cmd
}
