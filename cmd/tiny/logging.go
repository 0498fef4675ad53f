package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// newLogger builds the process logger. Every record carries the run_id of
// this invocation so interleaved runs can be told apart.
func newLogger(w io.Writer, level slog.Level) (*slog.Logger, string) {
	runID := uuid.NewString()
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run_id", runID), runID
}
