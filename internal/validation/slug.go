package validation

import (
	"regexp"
	"strings"
)

var (
	slugRegex    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL slug from a title: lowercased, runs of
// non-alphanumeric characters collapsed to single hyphens, leading and
// trailing hyphens trimmed.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug reports whether s is kebab-case
func IsValidSlug(s string) bool {
	return slugRegex.MatchString(s)
}
