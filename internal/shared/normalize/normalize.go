// Package normalize trims optional free-text input. Blank values become
// absent (nil), never an empty string.
package normalize

import "strings"

// String trims s and returns nil when nothing is left.
func String(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Ptr is String for an already optional value.
func Ptr(p *string) *string {
	if p == nil {
		return nil
	}
	return String(*p)
}

// Value dereferences p, returning "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
