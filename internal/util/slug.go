package util

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-friendly slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens. Slugs are not
// guaranteed unique; they exist for readable URLs only.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
