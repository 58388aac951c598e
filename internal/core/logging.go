package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// NewLogger returns a text logger writing to w. verbose forces debug level.
func NewLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// OpenLogFile opens the TUI log file for appending. The terminal belongs to
// the TUI, so its logs cannot go to stderr.
func OpenLogFile(projectRoot string, cfg LogConfig) (*os.File, error) {
	if cfg.File == "" {
		return nil, nil
	}
	path := cfg.File
	if !filepath.IsAbs(path) {
		if err := EnsureProjectDirs(projectRoot); err != nil {
			return nil, err
		}
		path = filepath.Join(ProjectDir(projectRoot), path)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
