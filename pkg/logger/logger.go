package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// SimpleHandler implements slog.Handler for common log format.
type SimpleHandler struct {
	Output io.Writer
	Level  slog.Level

	attrs []slog.Attr
}

func (h *SimpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.Level
}

func (h *SimpleHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String()

	timeStr := r.Time.Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf("%s [%s] %s", timeStr, level, r.Message)

	for _, a := range h.attrs {
		msg += fmt.Sprintf(" %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		msg += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})

	_, err := fmt.Fprintln(h.Output, msg)
	return err
}

func (h *SimpleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *SimpleHandler) WithGroup(name string) slog.Handler {
	return h
}

// ParseLevel converts a level name ("debug", "info", "warn"/"warning",
// "error") to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %q", name)
}

// Setup installs a SimpleHandler as the default slog logger. With an empty
// logFile output goes to stderr, otherwise the file is appended to.
func Setup(levelName, logFile string) error {
	level, err := ParseLevel(levelName)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
	}

	slog.SetDefault(slog.New(&SimpleHandler{Output: out, Level: level}))
	return nil
}
