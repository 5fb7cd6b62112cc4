package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
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
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Session: "s1"})

	l.Info("started %d windows", 2)
	out := buf.String()
	for _, want := range []string{"level=INFO", `msg="started 2 windows"`, "session=s1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogger_NoArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Output: &buf})

	l.Warn("100%")
	if !strings.Contains(buf.String(), "msg=100%") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	l.Debug("d")
	l.Info("i")
	if buf.Len() != 0 {
		t.Fatalf("below-level records written: %q", buf.String())
	}
	l.Error("e")
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLogger_SharedLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})
	child := parent.WithComponent("config")

	child.SetLevel(LogLevelDebug)
	if !parent.Enabled(LogLevelDebug) {
		t.Error("level change on child not seen by parent")
	}

	child.Debug("reloaded")
	if !strings.Contains(buf.String(), "component=config") {
		t.Errorf("output = %q, want component field", buf.String())
	}
}

func TestLogger_SessionDefault(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(LoggerConfig{Output: &buf}).Info("x")
	if !strings.Contains(buf.String(), "session=") {
		t.Errorf("output = %q, want session field", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	l := NullLogger.WithField("k", "v")
	l.SetLevel(LogLevelDebug)
	l.Error("ignored %d", 1)
	if l.Enabled(LogLevelError) {
		t.Error("NullLogger.Enabled() = true")
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "seqterm", "seqterm.log")
	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	NewLogger(LoggerConfig{Output: f}).Info("hello")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestDefaultLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got, want := DefaultLogFile(), filepath.Join("/tmp/state", "seqterm", "seqterm.log"); got != want {
		t.Errorf("DefaultLogFile() = %q, want %q", got, want)
	}
}
