package jobs

import (
	"regexp"
	"strings"
)

var reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify makes url-safe slug from title: lowercase, every run of characters
// outside of [a-z0-9] replaced by a single hyphen, no leading or trailing hyphens.
func Slugify(title string) string {
	s := reNonSlug.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
