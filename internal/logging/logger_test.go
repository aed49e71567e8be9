package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func setupLogger(t *testing.T, level Level) (string, func()) {
	t.Helper()

	logDir := t.TempDir()
	logPath, err := Initialize(logDir, level)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if filepath.Dir(logPath) != logDir {
		t.Fatalf("log path %q not under %q", logPath, logDir)
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			_ = Close()
			std = nil
		})
	}
	t.Cleanup(cleanup)

	return logPath, cleanup
}

func TestInitializeAndLogWrites(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelInfo)
	defer cleanup()

	Info("hello %s", "world")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "INFO: hello world") {
		t.Fatalf("expected log line to contain message, got: %q", content)
	}
}

func TestSetEnabledDisablesLogging(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelDebug)
	defer cleanup()

	SetEnabled(false)
	Info("should not write")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(strings.TrimSpace(string(data))) != 0 {
		t.Fatalf("expected no log output when disabled, got: %q", string(data))
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath, cleanup := setupLogger(t, LevelWarn)
	defer cleanup()

	Info("info message")
	Warn("warn message")
	cleanup()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "INFO: info message") {
		t.Fatalf("did not expect info log at warn level: %q", content)
	}
	if !strings.Contains(content, "WARN: warn message") {
		t.Fatalf("expected warn log, got: %q", content)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{" INFO ", LevelInfo, true},
		{"", LevelInfo, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", LevelInfo, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseLevel(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeWriterAndWithError(t *testing.T) {
	var buf strings.Builder
	InitializeWriter(&buf, LevelError)
	t.Cleanup(func() { std = nil })

	Debug("hidden")
	WithError(nil, "ignored")
	WithError(os.ErrNotExist, "open config")

	out := buf.String()
	if strings.Contains(out, "hidden") || strings.Contains(out, "ignored") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "ERROR: open config: file does not exist") {
		t.Fatalf("expected error line, got %q", out)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close on a non-closing writer: %v", err)
	}
	Error("after close")
	if strings.Contains(buf.String(), "after close") {
		t.Fatalf("logger still active after Close")
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelWarn.String(); got != "WARN" {
		t.Fatalf("LevelWarn.String() = %q", got)
	}
	if got := Level(9).String(); got != "UNKNOWN" {
		t.Fatalf("Level(9).String() = %q", got)
	}
}
