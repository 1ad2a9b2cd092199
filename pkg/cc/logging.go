package cc

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// NewDevLogger returns a colorized *slog.Logger suitable for tracing a
// Collector's CollectCycles passes during development, grounded on _examples/ttrtcixy-fast-slog-handler's use of
// github.com/lmittmann/tint for colorized log/slog output. Wire it in with
// WithLogger. w defaults to os.Stderr if nil.
func NewDevLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{Level: level}))
}
