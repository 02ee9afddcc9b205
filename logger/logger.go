package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Off disables logging when used as the log file.
const Off = "off"

// Logger wraps slog.Logger and owns the file it writes to.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New creates a logger writing to path. The terminal belongs to the UI, so
// logs never go to stdout or stderr: an empty path resolves to the user cache
// dir and "off" discards everything.
func New(level string, path string, debug bool) (*Logger, error) {
	opts := &slog.HandlerOptions{
		Level:     getLogLevel(level),
		AddSource: debug,
	}

	if strings.EqualFold(strings.TrimSpace(path), Off) {
		return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, opts))}, nil
	}

	if strings.TrimSpace(path) == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(file, opts)
	} else {
		handler = slog.NewJSONHandler(file, opts)
	}
	return &Logger{Logger: slog.New(handler), closer: file}, nil
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// DefaultPath is where logs go when no file is configured.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "resort-concierge", "concierge.log"), nil
}

// Close flushes and closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// WithComponent tags every record with the emitting component.
func (l *Logger) WithComponent(name string) *slog.Logger {
	return l.Logger.With(slog.String("component", name))
}

func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
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
