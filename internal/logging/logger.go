// Package logging builds the application's slog logger. A full-screen TUI
// owns the terminal, so records always go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const defaultLogFile = "weddingstory/weddingstory.log"

// Options describes logger construction parameters.
type Options struct {
	File  string // empty selects the XDG state file
	Level string // debug, info, warn, error, off
}

// New opens the log file and returns a logger writing to it. The returned
// closer must be closed on exit. Level "off" yields a discarding logger.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, enabled := parseLevel(opts.Level)
	if !enabled {
		return Discard(), nopCloser{}, nil
	}

	path := strings.TrimSpace(opts.File)
	if path == "" {
		var err error
		path, err = xdg.StateFile(defaultLogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	return NewWithWriter(f, level), f, nil
}

// NewWithWriter returns a text logger writing to w at level.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "off", "none":
		return 0, false
	case "debug":
		return slog.LevelDebug, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, true
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
