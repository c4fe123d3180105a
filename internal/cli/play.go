package cli

import (
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
)

func newPlayCmd(opts *options) *cobra.Command {
	var mode, humanMark, first string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game",
		Long: `Play one game on the terminal.

Modes:
  human    two people share the keyboard
  random   the computer picks any empty cell
  optimal  the computer plays perfect minimax

Enter moves as "row col", both between 1 and 3.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("mode") {
				opts.conf.Game.Mode = mode
			}
			if cmd.Flags().Changed("human-mark") {
				opts.conf.Game.HumanMark = humanMark
			}
			if cmd.Flags().Changed("first") {
				opts.conf.Game.First = first
			}

			return app.RunApp(cmd.Context(), opts.logger, opts.conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Game mode: human, random, optimal")
	cmd.Flags().StringVar(&humanMark, "human-mark", "", "Mark played by the human against the computer: X or O")
	cmd.Flags().StringVar(&first, "first", "", "Mark that moves first: X or O")

	return cmd
}
