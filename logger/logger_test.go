package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{" WARN ", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"verbose", 0, true},
	}
	for _, tt := range tests {
		l, c, err := New(Options{Level: tt.level})
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q) expected error", tt.level)
			}
			continue
		}
		if err != nil {
			t.Fatalf("New(%q): %v", tt.level, err)
		}
		if l.GetLevel() != tt.want {
			t.Errorf("New(%q) level = %v, want %v", tt.level, l.GetLevel(), tt.want)
		}
		c.Close()
	}
}

func TestNewWritesFile(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "logs", "arena-dl.log")
	l, c, err := New(Options{Level: "info", File: fp, MaxSizeMB: 1, BackupCount: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("hello file", "block", "42")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello file") || !strings.Contains(string(data), "block=42") {
		t.Errorf("log file content = %q", data)
	}
}
