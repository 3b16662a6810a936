package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/wardrobe-backend/internal/config"
)

func TestNewLogger_JSONByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "info"})
	logger.Info("collection synced", slog.String("collection", "self"))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if m["app"] != "wardrobe" {
		t.Errorf("app = %v, want wardrobe", m["app"])
	}
	if m["collection"] != "self" {
		t.Errorf("collection = %v, want self", m["collection"])
	}
	if _, ok := m["source"]; ok {
		t.Error("json output should not carry source")
	}
}

func TestNewLogger_TextHasSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "debug", Format: "TEXT"})
	logger.Debug("remote change applied")

	out := buf.String()
	if !strings.Contains(out, "source=") {
		t.Errorf("text output should include source, got %q", out)
	}
	if !strings.Contains(out, "app=wardrobe") {
		t.Errorf("text output should include app attr, got %q", out)
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn record should pass at warn level")
	}
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})
	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should install the logger as slog default")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

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
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
