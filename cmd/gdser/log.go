package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/gdcore/serializer/debug"
)

var (
	theLog = newLogger(os.Stderr, debug.Coerce())
)

// newLogger returns the tool's logger.  With verbose set it also reports
// debug records, such as value coercions falling back to a default.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}
