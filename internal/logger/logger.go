// Package logger configures the process-wide zerolog instance. Services
// derive component-scoped children from the returned logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the root logger. Unknown levels fall back to info so a
// typo in LOG_LEVEL never silences the process. Format "pretty" is for
// local development; anything else emits JSON lines.
func Setup(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	root := zerolog.New(os.Stdout)
	if format == "pretty" {
		root = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	return root.With().Timestamp().Caller().Logger()
}
