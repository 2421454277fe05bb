package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/modring/repeat"
)

// IdsCmd returns the ids command.
func IdsCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "ids <input-file>",
		Short: "Sum repeated-pattern IDs over comma-separated ranges",
		Long: `Read one line of comma-separated inclusive ranges (start-end) from the
input file and sum every ID whose decimal digits are a shorter pattern
repeated with no remainder.

Modes:
- least: pattern repeated at least twice (default)
- exact: minimal period exactly half the digit count

Malformed ranges are fatal; silently skipping one would corrupt the sum.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var m repeat.Mode
			switch mode {
			case "least":
				m = repeat.AtLeastTwice
			case "exact":
				m = repeat.ExactlyTwice
			default:
				return fmt.Errorf("%w: --mode=%q", repeat.ErrBadMode, mode)
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			rs, err := repeat.ParseRanges(strings.TrimSpace(string(raw)))
			if err != nil {
				return err
			}
			log.Debug().Int("ranges", len(rs)).Stringer("mode", m).Msg("parsed range list")

			total, err := repeat.SumInvalidRanges(rs, m)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "total: %s\n", color.New(color.FgGreen).Sprintf("%d", total))

			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "least", "repetition rule: least or exact")

	return cmd
}
