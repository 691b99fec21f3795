package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world", 8, "hello..."},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.max); got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, map[string]string{"name": "vsx"}); err != nil {
		t.Fatalf("printJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "vsx"`) {
		t.Errorf("printJSON() output = %q", buf.String())
	}
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := printYAML(&buf, map[string]string{"name": "vsx"}); err != nil {
		t.Fatalf("printYAML() error: %v", err)
	}
	if !strings.Contains(buf.String(), "name: vsx") {
		t.Errorf("printYAML() output = %q", buf.String())
	}
}
