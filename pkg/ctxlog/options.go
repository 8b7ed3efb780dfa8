package ctxlog

import (
	"io"
	"log/slog"
	"os"
)

type settings struct {
	structured bool
	level      slog.Level
	handler    slog.Handler
	writer     io.Writer
	trace      bool
	observe    func(logger string, level slog.Level)
}

func defaultSettings() settings {
	return settings{
		level:  LevelInfo,
		writer: os.Stdout,
	}
}

// Option configures a Logger at creation time.
type Option func(*settings)

// WithStructured selects the structured render mode. The mode is fixed for
// the lifetime of the logger.
func WithStructured() Option {
	return func(s *settings) {
		s.structured = true
	}
}

// WithLevel sets the initial minimum level. Defaults to INFO.
func WithLevel(level slog.Level) Option {
	return func(s *settings) {
		s.level = level
	}
}

// WithHandler attaches the emission sink the rendered records are delegated
// to. When set, WithWriter is ignored.
func WithHandler(h slog.Handler) Option {
	return func(s *settings) {
		s.handler = h
	}
}

// WithWriter directs the default text handler at w. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		s.writer = w
	}
}
