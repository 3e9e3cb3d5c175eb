// Package logging provides structured logging for the cryptoquote command using slog.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/masq"
)

// Config holds logging configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// New creates a slog.Logger writing to w.
// Substitution keys and other secrets are redacted before they reach w.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		ReplaceAttr: NewReplaceAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewReplaceAttr returns a ReplaceAttr function that redacts attributes
// carrying key material. Extra masq options are appended to the defaults.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	all := append([]masq.Option{
		masq.WithFieldName("key"),
		masq.WithFieldName("substitution_key"),
		masq.WithFieldName("keyset"),
		masq.WithFieldPrefix("secret"),
	}, opts...)
	return masq.New(all...)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
