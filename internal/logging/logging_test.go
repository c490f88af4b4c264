package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		valid    bool
	}{
		{"debug", LogLevelDebug, true},
		{"DEBUG", LogLevelDebug, true},
		{"info", LogLevelInfo, true},
		{"warn", LogLevelWarn, true},
		{"warning", LogLevelWarn, true},
		{"WARNING", LogLevelWarn, true},
		{"error", LogLevelError, true},
		{"unknown", LogLevelInfo, false},
		{"", LogLevelInfo, false},
	}

	for _, tt := range tests {
		if result := ParseLogLevel(tt.input); result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
		if valid := ValidLogLevel(tt.input); valid != tt.valid {
			t.Errorf("ValidLogLevel('%s') = %v, expected %v", tt.input, valid, tt.valid)
		}
	}
}

func newTestLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	l := NewLogger(LoggerConfig{Level: level, Output: buf, Prefix: "test"})
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LogLevelDebug)

	logger.Info("ran %d instructions", 3)

	want := "2024-01-02T03:04:05.000 [INFO] test: ran 3 instructions\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LogLevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	out := buf.String()
	if strings.Contains(out, "debug") || strings.Contains(out, "info") {
		t.Errorf("messages below WARN were written: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "[ERROR]") {
		t.Errorf("expected WARN and ERROR lines, got %q", out)
	}
	if logger.Enabled(LogLevelInfo) {
		t.Error("Enabled(Info) should be false at WARN")
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LogLevelInfo)
	logger := base.WithComponent("dispatcher").WithFields(map[string]any{"run": "abc", "line": 4})

	logger.Info("hello")

	if !strings.HasSuffix(buf.String(), "hello {component=dispatcher, line=4, run=abc}\n") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "{") {
		t.Errorf("WithField must not change the parent logger: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("nothing")
	NullLogger.WithField("a", 1).Error("still nothing")
	if NullLogger.Enabled(LogLevelError) {
		t.Error("NullLogger should be disabled")
	}
}

func TestNewLogger_DefaultOutput(t *testing.T) {
	logger := NewLogger(LoggerConfig{})
	if logger.output == nil {
		t.Error("expected default output to be set")
	}
}
