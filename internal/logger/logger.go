// Package logger provides a configured zerolog instance.
package logger

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"notify-runner/internal/config"
)

// NewLogger creates a new configured instance of zerolog.Logger.
// All output goes to stderr: stdout belongs to the JSON result and must
// carry nothing else. Every record is tagged with a fresh run_id so a
// supervising worker can correlate runner diagnostics with its own logs.
func NewLogger(cfg *config.Config) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Logger.Level)
	if err != nil {
		// Default to info level if config is invalid or missing
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Logger.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(out).With().
		Timestamp().
		Str("service", "notify-runner").
		Str("run_id", uuid.NewString()).
		Logger().
		Level(level)

	return &logger, nil
}
