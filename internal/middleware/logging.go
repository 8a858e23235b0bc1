// Package middleware wraps command handlers with cross-cutting behavior.
package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/people/internal/service"
)

// RunE is the signature of a cobra command handler.
type RunE func(cmd *cobra.Command, args []string) error

// Logged returns a handler that logs every command run.
// It logs the command path, duration, and any error.
func Logged(next RunE) RunE {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		command := cmd.CommandPath()

		slog.Debug("Command started", "command", command, "args", args)

		err := next(cmd, args)

		duration := time.Since(start).Milliseconds()
		switch {
		case err == nil:
			slog.Info("Command ok",
				"command", command,
				"duration_ms", duration,
			)
		case errors.Is(err, service.ErrInvalidInput):
			slog.Warn("Command rejected",
				"command", command,
				"error", err,
				"duration_ms", duration,
			)
		default:
			slog.Error("Command failed",
				"command", command,
				"error", err,
				"duration_ms", duration,
			)
		}

		return err
	}
}
