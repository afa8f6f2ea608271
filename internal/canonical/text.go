package canonical

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// nullSentinels are the textual "missing" markers collapsed to nil before any
// type-specific parsing runs. Matched case-insensitively after normalization.
var nullSentinels = map[string]struct{}{
	"n/a":  {},
	"na":   {},
	"null": {},
	"none": {},
}

// NormalizeText applies NFKC unicode normalization, strips control and other
// non-printable runes, trims, and collapses internal whitespace runs to
// single spaces.
func NormalizeText(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Map(func(r rune) rune {
		// Tab and newline are control runes but count as whitespace; they
		// must survive until the collapse below turns them into one space.
		if unicode.IsSpace(r) {
			return r
		}
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// CoerceNull normalizes s and collapses empty strings and null sentinels to
// nil. Every field passes through here before its type-specific parser, so
// "missing" is never ambiguous with a present-but-falsy value.
func CoerceNull(s string) *string {
	normalized := NormalizeText(s)
	if normalized == "" {
		return nil
	}
	if _, ok := nullSentinels[strings.ToLower(normalized)]; ok {
		return nil
	}
	return &normalized
}
