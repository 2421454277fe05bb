package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modring/internal/cli"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "modring",
		Short: "modring - circular-counter and repeated-pattern puzzle math",
		Long: `modring runs the library's two deterministic procedures over puzzle
input files: the cyclic dial counter (zero landings and crossings) and
the repeated-pattern ID summation.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetVerbose(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(cli.DialCmd())
	rootCmd.AddCommand(cli.IdsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
