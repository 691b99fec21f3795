package registry

import "testing"

func TestEncodeEmptyParams(t *testing.T) {
	tests := []struct {
		name   string
		params *SearchParams
	}{
		{"nil params", nil},
		{"zero params", &SearchParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.encode(); got != "" {
				t.Errorf("encode() = %q, want empty string", got)
			}
		})
	}
}

func TestEncodeSingleFields(t *testing.T) {
	tests := []struct {
		name     string
		params   SearchParams
		expected string
	}{
		{"query only", SearchParams{Query: "python"}, "?query=python"},
		{"category only", SearchParams{Category: "Themes"}, "?category=Themes"},
		{"size only", SearchParams{Size: 50}, "?size=50"},
		{"offset only", SearchParams{Offset: 100}, "?offset=100"},
		{"sort order only", SearchParams{SortOrder: "desc"}, "?sortOrder=desc"},
		{"sort by only", SearchParams{SortBy: "downloadCount"}, "?sortBy=downloadCount"},
		{"include all versions only", SearchParams{IncludeAllVersions: true}, "?includeAllVersions=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.encode(); got != tt.expected {
				t.Errorf("encode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	params := SearchParams{
		Query:              "go",
		Category:           "Programming Languages",
		Size:               10,
		Offset:             20,
		SortOrder:          "asc",
		SortBy:             "timestamp",
		IncludeAllVersions: true,
	}

	expected := "?query=go&category=Programming+Languages&size=10&offset=20&sortOrder=asc&sortBy=timestamp&includeAllVersions=true"
	if got := params.encode(); got != expected {
		t.Errorf("encode() = %q, want %q", got, expected)
	}
}

func TestEncodeEscapesValues(t *testing.T) {
	params := SearchParams{Query: "c++ & rust"}

	expected := "?query=c%2B%2B+%26+rust"
	if got := params.encode(); got != expected {
		t.Errorf("encode() = %q, want %q", got, expected)
	}
}
