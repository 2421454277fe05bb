package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/modring/dial"
)

// DialCmd returns the dial command.
func DialCmd() *cobra.Command {
	var (
		modulus int64
		initial int64
	)

	cmd := &cobra.Command{
		Use:   "dial <input-file>",
		Short: "Count zero landings and zero crossings for a rotation script",
		Long: `Read one rotation command per line (L<n> or R<n>) from the input file,
apply them to a circular dial, and report:
- landings:  commands that finish exactly on the 0 mark
- crossings: every pass through or stop on the 0 mark, wraps included

Malformed lines are fatal; puzzle input is assumed well-formed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			cmds, err := dial.ParseCommands(f)
			if err != nil {
				return err
			}
			log.Debug().Int("commands", len(cmds)).Str("file", args[0]).Msg("parsed rotation script")

			res, err := dial.Process(cmds, dial.Options{Modulus: modulus, Initial: initial})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "landings:  %s\n", color.New(color.FgGreen).Sprintf("%d", res.Landings))
			fmt.Fprintf(out, "crossings: %s\n", color.New(color.FgGreen).Sprintf("%d", res.Crossings))

			return nil
		},
	}

	defaults := dial.DefaultOptions()
	cmd.Flags().Int64Var(&modulus, "modulus", defaults.Modulus, "number of ticks on the dial")
	cmd.Flags().Int64Var(&initial, "initial", defaults.Initial, "starting label")

	return cmd
}
