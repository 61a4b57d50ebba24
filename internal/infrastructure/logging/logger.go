package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/domus-home/domus-core/internal/infrastructure/config"
)

// Logger is the slog.Logger used across Domus, carrying the service
// and version fields on every record. Safe for concurrent use.
type Logger struct {
	*slog.Logger
}

// New builds a Logger from the logging section of config.yaml. Format
// selects JSON or text handlers, output selects stdout or stderr, and
// unknown levels fall back to info.
func New(cfg config.LoggingConfig, version string) *Logger {
	handler := handlerFor(cfg, writerFor(cfg.Output)).WithAttrs([]slog.Attr{
		slog.String("service", "domus"),
		slog.String("version", version),
	})
	return &Logger{Logger: slog.New(handler)}
}

func writerFor(output string) io.Writer {
	if strings.EqualFold(output, "stderr") {
		return os.Stderr
	}
	return os.Stdout
}

func handlerFor(cfg config.LoggingConfig, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// parseLevel maps a config level string to a slog.Level, defaulting
// to info. "warning" is accepted as an alias for "warn".
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// With returns a child logger with extra default attributes, typically
// a component tag:
//
//	regLog := log.With("component", "registry")
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Default returns a JSON/info/stdout logger for the window before the
// configuration file has been loaded.
func Default() *Logger {
	return New(config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "stdout",
	}, "dev")
}
