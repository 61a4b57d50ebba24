package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/domus-home/domus-core/internal/infrastructure/config"
)

// bufferLogger builds a Logger writing to buf so tests can inspect
// records without touching stdout.
func bufferLogger(buf *bytes.Buffer, cfg config.LoggingConfig) *Logger {
	handler := handlerFor(cfg, buf).WithAttrs([]slog.Attr{
		slog.String("service", "domus"),
		slog.String("version", "test"),
	})
	return &Logger{Logger: slog.New(handler)}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"trace", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogger_JSONRecord(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf, config.LoggingConfig{Level: "info", Format: "json"})

	log.Info("device registered", "id", "dev-1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "device registered" {
		t.Errorf("msg = %v, want device registered", record["msg"])
	}
	if record["id"] != "dev-1" {
		t.Errorf("id = %v, want dev-1", record["id"])
	}
	if record["service"] != "domus" {
		t.Errorf("service = %v, want domus", record["service"])
	}
	if record["version"] != "test" {
		t.Errorf("version = %v, want test", record["version"])
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf, config.LoggingConfig{Level: "info", Format: "text"})

	log.Info("starting")

	out := buf.String()
	if !strings.Contains(out, "msg=starting") {
		t.Errorf("text output = %q, want msg=starting", out)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf, config.LoggingConfig{Level: "warn", Format: "json"})

	log.Debug("hidden")
	log.Info("also hidden")
	if buf.Len() != 0 {
		t.Fatalf("records below warn were emitted: %q", buf.String())
	}

	log.Warn("visible")
	if buf.Len() == 0 {
		t.Error("warn record was filtered out")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := bufferLogger(&buf, config.LoggingConfig{Level: "info", Format: "json"})

	child := log.With("component", "registry")
	if child == log {
		t.Fatal("With() returned the parent logger")
	}
	child.Info("ready")

	if !strings.Contains(buf.String(), `"component":"registry"`) {
		t.Errorf("child record = %q, missing component attribute", buf.String())
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "text"} {
		if log := New(config.LoggingConfig{Level: "info", Format: format, Output: "stdout"}, "1.0.0"); log == nil {
			t.Errorf("New(format=%s) = nil", format)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() = nil")
	}
}
