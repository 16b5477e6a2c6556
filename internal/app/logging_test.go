package app

import (
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("below-level messages should be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error messages, got %q", out)
	}
}

func TestLoggerPrefixAndFormat(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "glance"})

	logger.Info("opened %d lines", 42)

	out := buf.String()
	if !strings.Contains(out, "[INFO] glance: opened 42 lines") {
		t.Errorf("unexpected log line %q", out)
	}
}

func TestLoggerWithField(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.WithField("session", "abc").Info("started")

	out := buf.String()
	if !strings.Contains(out, "session=abc") {
		t.Errorf("expected field in output, got %q", out)
	}
}

func TestLoggerWithComponentDoesNotMutateParent(t *testing.T) {
	var buf strings.Builder
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	child := logger.WithComponent("watch")
	child.Info("child")
	logger.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "component=watch") {
		t.Errorf("expected component field on child line, got %q", lines[0])
	}
	if strings.Contains(lines[1], "component=") {
		t.Errorf("parent logger should not carry child field, got %q", lines[1])
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic and must not write anywhere.
	NullLogger.Info("discarded")
	NullLogger.WithComponent("x").Error("also discarded")
}
