package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

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
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(handler(&buf, true, slog.LevelInfo))

	logger.Info("classified batch", "items", 3)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "classified batch" {
		t.Errorf("expected msg 'classified batch', got %q", m["msg"])
	}
	if m["items"] != float64(3) {
		t.Errorf("expected items=3, got %v", m["items"])
	}
}

func TestHandlerText(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(handler(&buf, false, slog.LevelInfo))

	logger.Info("classified batch", "items", 3)

	out := buf.String()
	if !strings.Contains(out, "msg=\"classified batch\"") {
		t.Errorf("expected text output containing msg, got: %s", out)
	}
	if !strings.Contains(out, "items=3") {
		t.Errorf("expected text output containing items=3, got: %s", out)
	}
}

func TestHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(handler(&buf, false, slog.LevelWarn))

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("expected info line to be filtered, got: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("expected warn line to pass, got: %s", out)
	}
}
