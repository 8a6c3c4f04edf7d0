// Package logging configures the process-wide zerolog logger from
// environment variables, the same way the rest of the CLI reads its
// ambient configuration from EVREMAP_* (spec.md §6).
package logging

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New builds a console-style logger honoring EVREMAP_LOG
// (trace|debug|info|warn|error, default info) and EVREMAP_LOG_STYLE
// (auto|always|never, default auto — whether the console writer
// colorizes its output). The remap subcommand logs through it.
func New() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("EVREMAP_LOG")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    !colorize(os.Getenv("EVREMAP_LOG_STYLE")),
	}
	return zerolog.New(writer).With().Timestamp().Logger()
}

// colorize resolves EVREMAP_LOG_STYLE to whether the console writer
// should emit ANSI color: "always" forces it on, "never" forces it
// off, and "auto" (or unset) follows whether stderr is a terminal.
func colorize(style string) bool {
	switch strings.ToLower(style) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd())
	}
}
