package common

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{100, "100"},
		{1023, "1023"},
		{1024, "1.0K"},
		{1536, "1.5K"},
		{10 * 1024, "10K"},
		{1024 * 1024, "1.0M"},
		{20 * 1024 * 1024, "20M"},
		{3 * 1024 * 1024 * 1024, "3.0G"},
	}

	for _, tt := range tests {
		result := FormatSize(tt.input)
		if result != tt.expected {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCacheDir_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	if got := CacheDir(); got != filepath.Join("/tmp/xdg-cache", "bigchar") {
		t.Errorf("CacheDir() = %q", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/xdg-cache", "bigchar", "bigchar.log") {
		t.Errorf("DefaultLogPath() = %q", got)
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "nested", "bigchar.log")
	closer, err := SetupLogging(path, true)
	if err != nil {
		t.Fatalf("SetupLogging failed: %v", err)
	}

	slog.Debug("playback started", "id", "A")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "playback started") || !strings.Contains(string(data), "id=A") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestSetupLogging_InfoLevelDropsDebug(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "bigchar.log")
	closer, err := SetupLogging(path, false)
	if err != nil {
		t.Fatalf("SetupLogging failed: %v", err)
	}
	slog.Debug("hidden")
	slog.Info("shown")
	_ = closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Errorf("debug entry should not be logged at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Errorf("info entry missing")
	}
}
