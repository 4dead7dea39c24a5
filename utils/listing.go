// utils/listing.go
package utils

import "strings"

// MatchesQuery reports whether the lower-cased query is a substring of any of
// the given fields. List endpoints always apply free-text search post-fetch,
// over a fixed field set (name, city, area, email, phone); there is no
// server-side text index.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// SplitCSV parses a comma-separated multi-select filter value, dropping empty
// entries
func SplitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var out []string
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
