package cli

import (
	"testing"

	"github.com/vsx-labs/vsx/internal/registry"
)

func TestVersionRows(t *testing.T) {
	client := registry.New(registry.Config{APIVersion: "1.2.0", BaseURL: "https://registry.test"}, nil)

	versions := []registry.Extension{
		{Version: "3.0.0", Engines: map[string]string{"vscode": "^2.0.0"}},
		{Version: "2.5.0", Engines: map[string]string{"vscode": "^1.0.0"}},
		{Version: "2.0.0"},
		{Version: "1.0.0", Engines: map[string]string{"vscode": "*"}},
	}

	rows := versionRows(client, versions)
	if len(rows) != 4 {
		t.Fatalf("versionRows() returned %d rows, want 4", len(rows))
	}

	tests := []struct {
		idx        int
		version    string
		rng        string
		compatible bool
	}{
		{0, "3.0.0", "^2.0.0", false},
		{1, "2.5.0", "^1.0.0", true},
		{2, "2.0.0", "", false},
		{3, "1.0.0", "*", true},
	}

	for _, tt := range tests {
		row := rows[tt.idx]
		if row.Version != tt.version || row.EngineRange != tt.rng || row.Compatible != tt.compatible {
			t.Errorf("row %d = %+v, want {%s %s %v}", tt.idx, row, tt.version, tt.rng, tt.compatible)
		}
	}
}
