package common

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{1 << 40, "1.0 TB"},
	}

	for _, tt := range tests {
		result := FormatBytes(tt.input)
		if result != tt.expected {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestDataDirUsesHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if DataDir() == "" {
		t.Fatalf("DataDir() empty")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"", "WARN"},
		{"bogus", "WARN"},
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input).String()
		if result != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
