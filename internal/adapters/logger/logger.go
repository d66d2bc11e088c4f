// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.seluk.ch/corekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// logFileFormat is the time layout for per-run log file names. It sorts
// lexically by age, which PruneLogDir relies on.
const logFileFormat = "2006-01-02_15-04-05"

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	out    io.Writer
	level  slog.Level
}

// New creates a Logger writing human-readable output to stderr at the given
// level.
func New(level slog.Level) *Logger {
	l := &Logger{out: os.Stderr, level: level}
	l.logger = slog.New(newHandler(l.out, level))
	return l
}

// ParseLevel maps a configuration string to a slog level. Unknown strings
// default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

// SetLevel changes the minimum level of subsequent log output. The app
// layer applies the configured level once the configuration is loaded.
func (l *Logger) SetLevel(level slog.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.logger = slog.New(newHandler(l.out, level))
}

// SetOutput redirects the logger's output, e.g. to a log file. It is safe
// for concurrent use with the log methods.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.logger = slog.New(newHandler(l.out, l.level))
}

// LogToFile creates a timestamped log file in dir and mirrors all
// subsequent output to it in addition to the current writer. It returns
// the path of the created file. The file stays open for the lifetime of
// the process.
func (l *Logger) LogToFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.Wrap(err, "failed to create log directory")
	}

	path := filepath.Join(dir, time.Now().Format(logFileFormat)+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640) //nolint:gosec // Below the configured log directory
	if err != nil {
		return "", zerr.Wrap(err, "failed to create log file")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = io.MultiWriter(l.out, f)
	l.logger = slog.New(newHandler(l.out, l.level))
	return path, nil
}

// PruneLogDir deletes all but the keep newest log files in dir. A negative
// keep disables pruning, a missing directory is not an error.
func PruneLogDir(dir string, keep int) error {
	if keep < 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read log directory")
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".log") {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return nil
	}

	// Timestamped names sort oldest first.
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to delete old log file"), "file", name)
		}
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
