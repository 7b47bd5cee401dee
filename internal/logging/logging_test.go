package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToRotatingFile(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "logs", "climber.log")

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("row generated", "line", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "row generated") {
		t.Errorf("log file = %q, expected the message", data)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message should be written")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewWithoutOutputDiscards(t *testing.T) {
	logger, closer, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Error("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}
