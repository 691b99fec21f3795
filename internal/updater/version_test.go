package updater

import "testing"

func TestIsUpdateAvailable(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected bool
	}{
		{"newer patch", "1.0.0", "1.0.1", true},
		{"newer minor", "1.0.0", "1.1.0", true},
		{"newer major", "1.0.0", "2.0.0", true},
		{"equal", "1.2.3", "1.2.3", false},
		{"current newer", "2.0.0", "1.9.9", false},
		{"v prefixes tolerated", "v1.0.0", "v1.0.1", true},
		{"mixed prefixes", "1.0.0", "v1.0.1", true},
		{"prerelease older than release", "1.0.0-rc.1", "1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsUpdateAvailable(tt.current, tt.latest)
			if err != nil {
				t.Fatalf("IsUpdateAvailable(%q, %q) error: %v", tt.current, tt.latest, err)
			}
			if got != tt.expected {
				t.Errorf("IsUpdateAvailable(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.expected)
			}
		})
	}
}

func TestIsUpdateAvailableBadVersions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
	}{
		{"bad current", "dev", "1.0.0"},
		{"bad latest", "1.0.0", "nightly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := IsUpdateAvailable(tt.current, tt.latest); err == nil {
				t.Errorf("IsUpdateAvailable(%q, %q) error = nil, want parse error", tt.current, tt.latest)
			}
		})
	}
}
