package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "cubegen.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestConfigureCreatesDirectory(t *testing.T) {
	path := useTempLog(t)
	if Path() != path {
		t.Fatalf("expected log path %q, got %q", path, Path())
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("  ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default log path, got %q", Path())
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := useTempLog(t)
	Error(errors.New("first failure"))
	Error(nil)
	Error(errors.New("second failure"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "first failure") || !strings.Contains(text, "second failure") {
		t.Fatalf("expected both errors in log, got %q", text)
	}
	if got := strings.Count(strings.TrimSpace(text), "\n"); got != 1 {
		t.Fatalf("expected two lines, got %d newlines in %q", got, text)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("timer.start", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file when tracing is disabled, stat err=%v", err)
	}
}

func TestTraceWritesJSONEntry(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("timer.stop", map[string]interface{}{"ms": 1500})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace entry: %v", err)
	}
	if entry.Event != "timer.stop" {
		t.Fatalf("expected event timer.stop, got %q", entry.Event)
	}
	if entry.Payload["ms"] != float64(1500) {
		t.Fatalf("expected ms payload 1500, got %v", entry.Payload["ms"])
	}
}
