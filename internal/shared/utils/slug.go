package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLength matches the width of the slug column.
const maxSlugLength = 150

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

	// NFD decomposition followed by removal of combining marks strips
	// accents: "é" → "e", "à" → "a".
	accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// GenerateSlug derives a URL-safe slug from a title. The same title
// always yields the same slug.
func GenerateSlug(title string) string {
	ascii, _, err := transform.String(accentStripper, title)
	if err != nil {
		ascii = title
	}

	slug := strings.ToLower(ascii)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}

	return slug
}
