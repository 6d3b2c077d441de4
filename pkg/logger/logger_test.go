package logger

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestConfigure(t *testing.T) {
	t.Setenv("MCP_DEBUG", "0")
	defer setLogger(slog.LevelInfo, os.Stderr)

	var buf bytes.Buffer
	if err := Configure("warn", &buf); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	Info("hidden message")
	Warn("visible message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info line written at warn level: %s", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "key=value") {
		t.Errorf("warn line missing: %s", out)
	}

	if err := Configure("nope", &buf); err == nil {
		t.Errorf("Configure accepted an unknown level")
	}
}

func TestConfigureDebugFromEnv(t *testing.T) {
	t.Setenv("MCP_DEBUG", "1")
	defer setLogger(slog.LevelInfo, os.Stderr)

	var buf bytes.Buffer
	if err := Configure("error", &buf); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	With("request_id", "abc").Debug("debug message")

	if !strings.Contains(buf.String(), "request_id=abc") {
		t.Errorf("MCP_DEBUG did not force debug level: %q", buf.String())
	}
}
