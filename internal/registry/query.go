package registry

import (
	"net/url"
	"strconv"
	"strings"
)

// queryRule describes one optional search parameter: when present returns the
// key and the value to append. Rules are evaluated in declaration order so the
// resulting query string has a fixed, testable field order.
type queryRule struct {
	key     string
	present func(p *SearchParams) bool
	value   func(p *SearchParams) string
}

var searchRules = []queryRule{
	{"query", func(p *SearchParams) bool { return p.Query != "" }, func(p *SearchParams) string { return p.Query }},
	{"category", func(p *SearchParams) bool { return p.Category != "" }, func(p *SearchParams) string { return p.Category }},
	{"size", func(p *SearchParams) bool { return p.Size != 0 }, func(p *SearchParams) string { return strconv.Itoa(p.Size) }},
	{"offset", func(p *SearchParams) bool { return p.Offset != 0 }, func(p *SearchParams) string { return strconv.Itoa(p.Offset) }},
	{"sortOrder", func(p *SearchParams) bool { return p.SortOrder != "" }, func(p *SearchParams) string { return p.SortOrder }},
	{"sortBy", func(p *SearchParams) bool { return p.SortBy != "" }, func(p *SearchParams) string { return p.SortBy }},
	{"includeAllVersions", func(p *SearchParams) bool { return p.IncludeAllVersions }, func(p *SearchParams) string { return "true" }},
}

// encode builds the query string for the search endpoint. Returns "" when no
// field is set, otherwise "?" followed by one URL-encoded pair per present
// field, joined with "&".
func (p *SearchParams) encode() string {
	if p == nil {
		return ""
	}

	var pairs []string
	for _, rule := range searchRules {
		if rule.present(p) {
			pairs = append(pairs, rule.key+"="+url.QueryEscape(rule.value(p)))
		}
	}

	if len(pairs) == 0 {
		return ""
	}
	return "?" + strings.Join(pairs, "&")
}
