// Package slug provides URL-friendly slug generation from titles and names.
package slug

import (
	"regexp"
	"strings"
)

// nonAlphanumeric matches every maximal run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make creates a URL-friendly slug from the given string.
// Example: "Grand Opening, 2026!" -> "grand-opening-2026"
//
// The result contains only lowercase letters, digits, and single hyphen
// separators, with no leading or trailing hyphen. An input with no
// alphanumeric characters yields the empty string; callers must treat
// that as a validation failure rather than persist an empty slug.
func Make(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
