package app

import (
	"log/slog"
	"os"
)

// NewLogger builds the gateway logger. LOG_FORMAT=json selects the JSON
// handler for log shippers; any other value falls back to the text
// handler for local reading.
func NewLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true}
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
