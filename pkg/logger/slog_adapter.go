package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// SlogHandler implements slog.Handler by wrapping a namespace Logger, for
// libraries that expect a *slog.Logger.
type SlogHandler struct {
	logger *Logger
}

// NewSlogHandler creates a slog.Handler backed by the given Logger.
func NewSlogHandler(logger *Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether the handler handles records at the given level.
// All levels are handled when the underlying logger is enabled.
func (h *SlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return h.logger.Enabled()
}

// Handle formats the record message with key=value attributes and a level
// prefix, then forwards it to the underlying logger.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.logger.Enabled() {
		return nil
	}

	var msg strings.Builder
	msg.WriteString(levelPrefix(r.Level))
	msg.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		msg.WriteString(" " + a.Key + "=" + a.Value.String())
		return true
	})

	h.logger.Print(msg.String())
	return nil
}

// WithAttrs returns the handler unchanged; attributes are not persisted.
func (h *SlogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup returns the handler unchanged; groups are not persisted.
func (h *SlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

func levelPrefix(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "[DEBUG] "
	case slog.LevelInfo:
		return "[INFO] "
	case slog.LevelWarn:
		return "[WARN] "
	case slog.LevelError:
		return "[ERROR] "
	}
	return ""
}

// NewSlogLogger creates a slog.Logger for the given namespace.
func NewSlogLogger(namespace string) *slog.Logger {
	return slog.New(NewSlogHandler(New(namespace)))
}

// Discard returns a slog.Logger that discards all output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
