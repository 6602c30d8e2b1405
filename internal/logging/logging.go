// Package logging constructs the zerolog diagnostics sink. The sink is
// handed explicitly into every pipeline stage; nothing in the core
// packages logs through a process-wide logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to out at the given level. Unknown level
// names fall back to info. Pretty selects the human-readable console
// format for interactive use.
func New(level string, pretty bool, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
