// SPDX-License-Identifier: MIT

package cmd

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
