package domain

import (
	"encoding/json"
	"regexp"
	"strings"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func trimSpace(s string) string { return strings.TrimSpace(s) }

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Deref returns the pointed-to string or "" for nil. Templates use it for nullable fields.
func Deref(s *string) string { return deref(s) }

var whitespaceRun = regexp.MustCompile(`\s+`)

func upper(s string) string { return strings.ToUpper(s) }

func marshalString(s string) ([]byte, error) { return json.Marshal(s) }
