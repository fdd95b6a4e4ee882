// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger returns a text or JSON slog logger writing to w at level.
func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
