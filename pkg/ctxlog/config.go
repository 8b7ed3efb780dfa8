package ctxlog

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config holds declarative logger configuration, typically decoded from the
// application's own config file or environment.
type Config struct {
	Name             string
	Level            string
	Structured       bool
	TraceCorrelation bool
}

// DefaultConfig returns a Config with sensible defaults for name.
func DefaultConfig(name string) Config {
	return Config{
		Name:  name,
		Level: "info",
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("logger name is required")
	}
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a level name to its slog.Level. Accepted names are
// debug, info, warn/warning, error and critical, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

func (c Config) options() []Option {
	level, _ := ParseLevel(c.Level)

	opts := []Option{WithLevel(level)}
	if c.Structured {
		opts = append(opts, WithStructured())
	}
	if c.TraceCorrelation {
		opts = append(opts, WithTraceCorrelation())
	}
	return opts
}
