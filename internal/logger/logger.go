// Package logger holds the process-wide slog logger used by stegctl.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables it.
var L = slog.New(slog.DiscardHandler)

const (
	logPrefix     = "stegctl-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 14
)

// Options configures Init.
type Options struct {
	Enabled bool       // false discards all output
	LogDir  string     // daily JSON files go here; empty logs text to Writer
	Writer  io.Writer  // text destination when LogDir is empty. Default: os.Stderr
	Level   slog.Level // minimum level, LevelInfo when zero
}

// Init replaces L according to opts. The returned function closes the log
// file, if one was opened.
func Init(opts Options) (func() error, error) {
	closeFn := func() error { return nil }
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return closeFn, nil
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	if opts.LogDir == "" {
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		L = slog.New(slog.NewTextHandler(w, handlerOpts))
		return closeFn, nil
	}

	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		return closeFn, err
	}
	cleanOldLogs(opts.LogDir, time.Now())

	name := filepath.Join(opts.LogDir, logPrefix+time.Now().Format(dateLayout)+logSuffix)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return closeFn, err
	}
	L = slog.New(slog.NewJSONHandler(f, handlerOpts))
	return f.Close, nil
}

// ParseLevel maps debug, info, warn or error to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// cleanOldLogs removes stegctl-YYYY-MM-DD.log files older than retentionDays.
func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		day, err := time.Parse(dateLayout, strings.TrimSuffix(strings.TrimPrefix(name, logPrefix), logSuffix))
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(dir, name))
		}
	}
}

// Debug logs at debug level on L.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level on L.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at warn level on L.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at error level on L.
func Error(msg string, args ...any) { L.Error(msg, args...) }
