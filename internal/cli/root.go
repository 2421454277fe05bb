// Package cli wires the modring library into cobra subcommands for
// puzzle-style input files.
package cli

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the CLI-wide diagnostic logger. Library packages stay silent;
// everything operational goes through here to stderr.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetVerbose raises the log level from warn (default) to debug.
func SetVerbose(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log = log.Level(level)
}
