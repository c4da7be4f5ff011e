package tagging

import (
	"strings"
)

// slugRuneAllowed reports whether r may appear in a slug: ASCII
// letters/digits plus hiragana, katakana and the CJK unified range used
// by the tag vocabulary.
func slugRuneAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 0x3040 && r <= 0x309F: // hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // katakana
		return true
	case r >= 0x4E00 && r <= 0x9FAF: // CJK unified ideographs
		return true
	}
	return false
}

// Slugify derives a URL slug from a tag or post title: lowercase,
// disallowed runes become hyphens, hyphen runs collapse to one, and
// leading/trailing hyphens are trimmed. The derivation is stable — the
// same title always produces the same slug.
func Slugify(title string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lowered))
	lastHyphen := false
	for _, r := range lowered {
		if slugRuneAllowed(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
