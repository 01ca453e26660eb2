// Package slugify derives URL-safe identifiers from human-readable text.
package slugify

import (
	"strings"
	"unicode"
)

// Slugify converts a tag name to a URL-friendly slug: lowercase,
// runs of non-alphanumeric characters collapse to a single hyphen,
// leading and trailing hyphens are trimmed.
func Slugify(name string) string {
	lower := strings.ToLower(name)

	var sb strings.Builder

	lastHyphen := false

	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)

			lastHyphen = false

			continue
		}

		if !lastHyphen {
			sb.WriteByte('-')

			lastHyphen = true
		}
	}

	return strings.Trim(sb.String(), "-")
}

// Anchor converts a heading title to a stable anchor id. Unlike
// Slugify, characters that are neither alphanumeric, whitespace, nor
// hyphens are dropped rather than turned into separators; whitespace
// then collapses to single hyphens.
func Anchor(title string) string {
	lower := strings.ToLower(title)

	var sb strings.Builder

	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteByte(' ')
		}
	}

	// Whitespace runs to single hyphens, then collapse hyphen runs.
	slug := strings.Join(strings.Fields(sb.String()), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return strings.Trim(slug, "-")
}

// TitleCase reconstructs a human-readable label from a slug by
// splitting on hyphens and upper-casing the first letter of each
// segment. Lossy: the original casing and punctuation are gone.
func TitleCase(slug string) string {
	parts := strings.Split(slug, "-")

	for i, part := range parts {
		if part == "" {
			continue
		}

		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	return strings.Join(parts, " ")
}
