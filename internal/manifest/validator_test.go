package manifest

import "testing"

func TestValidateValidManifest(t *testing.T) {
	result, err := Validate([]byte(validManifest))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("Validate() reported issues for a valid manifest: %+v", result.Issues)
	}
}

func TestValidateMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing publisher", `{"name":"go","version":"1.0.0","engines":{"vscode":"^1.0.0"}}`},
		{"missing engines", `{"name":"go","version":"1.0.0","publisher":"golang"}`},
		{"missing vscode engine", `{"name":"go","version":"1.0.0","publisher":"golang","engines":{"node":">=18"}}`},
		{"empty name", `{"name":"","version":"1.0.0","publisher":"golang","engines":{"vscode":"*"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatal("Validate() = valid, want issues")
			}
			if len(result.Issues) == 0 {
				t.Fatal("Validate() reported invalid but returned no issues")
			}
		})
	}
}

func TestValidateWrongTypes(t *testing.T) {
	data := `{"name":"go","version":"1.0.0","publisher":"golang","engines":{"vscode":"*"},"categories":"oops"}`

	result, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("Validate() = valid, want type issue on /categories")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/categories" {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue located at /categories: %+v", result.Issues)
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte("{broken")); err == nil {
		t.Fatal("Validate() error = nil, want parse error")
	}
}
