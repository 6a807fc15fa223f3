package logger

import (
	"log/slog"
	"os"
)

var root *slog.Logger

// Init builds the process-wide logger. Production gets JSON at info level,
// every other environment gets human-readable text at debug.
func Init(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	var handler slog.Handler
	if env == "production" {
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	root = slog.New(handler)
	slog.SetDefault(root)
}

// Default returns the process-wide logger, initializing a development one
// on first use when Init was never called.
func Default() *slog.Logger {
	if root == nil {
		Init("development")
	}
	return root
}
