// Package logging builds the structured logger used by the command line tool.
//
// Records go to stderr by default, as text for people or JSON for machines.
// The library packages never create loggers themselves; they accept a
// *slog.Logger and stay silent without one.
//
//	log := logging.New(logging.Config{Level: logging.LevelDebug})
//	log.Info("loading config", "path", path)
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is the minimum severity that is emitted.
type Level int

const (
	// LevelDebug includes one record per discarded attempt.
	LevelDebug Level = iota

	// LevelInfo reports configuration loading and the finished draw.
	LevelInfo

	// LevelWarn reports an exhausted attempt budget.
	LevelWarn

	// LevelError reports failures that end the run.
	LevelError
)

// ErrUnknownLevel is returned by ParseLevel.
var ErrUnknownLevel = errors.New("logging: unknown level")

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
	}
}

// Config configures New. The zero value logs Info and above as text to stderr.
type Config struct {
	Level Level

	// JSON switches the handler from text to JSON.
	JSON bool

	// Quiet discards every record.
	Quiet bool

	// Writer replaces stderr.
	Writer io.Writer

	// Service, when set, is attached to every record as "service".
	Service string
}

// New returns a logger for config.
func New(config Config) *slog.Logger {
	var w = config.Writer
	if w == nil {
		w = os.Stderr
	}
	if config.Quiet {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}
	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if config.Service != "" {
		logger = logger.With(slog.String("service", config.Service))
	}
	return logger
}
