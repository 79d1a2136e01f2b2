// Package logging builds the root zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New returns a timestamped logger. An unknown level falls back to info and an
// unknown format falls back to console; both cases are reported on the new logger.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var warnings []string

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil || parsed == zerolog.NoLevel {
			warnings = append(warnings, "could not parse log level, using info")
		} else {
			level = parsed
		}
	}

	var w io.Writer
	switch strings.ToLower(opts.Format) {
	case "", "console":
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !isTerminal(out)}
	case "json":
		w = out
	default:
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !isTerminal(out)}
		warnings = append(warnings, "could not parse log format, using console")
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	for _, msg := range warnings {
		logger.Warn().Str("requested_level", opts.Level).Str("requested_format", opts.Format).Msg(msg)
	}
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
