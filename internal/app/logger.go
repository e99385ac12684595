package app

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// NewLogger writes JSON records outside dev. In dev it uses a colored
// console handler with timestamps.
func NewLogger(env string) *slog.Logger {
	if env == "dev" {
		handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
			Level:           charmlog.DebugLevel,
		})

		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
