package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// GenerateSlug derives a URL-safe slug from a category name:
// lowercase, runs of whitespace collapsed into a single hyphen.
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	return whitespaceRun.ReplaceAllString(lower, "-")
}
