// Package turkcase provides Turkic-aware case conversion and apostrophe
// handling shared across the analysis packages.
//
// Turkic Latin alphabets use dotted/dotless I variants:
//   - I (U+0049) lowercases to ı (U+0131, dotless small i)
//   - İ (U+0130, dotted capital I) lowercases to i (U+0069)
//   - i (U+0069) uppercases to İ (U+0130, dotted capital I)
//   - ı (U+0131, dotless small i) uppercases to I (U+0049)
//
// All other runes use standard Unicode case mapping.
//
// All functions are safe for concurrent use.
package turkcase

import (
	"strings"
	"unicode"
)

// Lower returns the Turkic-aware lowercase form of r.
func Lower(r rune) rune {
	switch r {
	case 'I':
		return 'ı' // I -> ı
	case 'İ':
		return 'i' // İ -> i
	default:
		return unicode.ToLower(r)
	}
}

// Upper returns the Turkic-aware uppercase form of r.
func Upper(r rune) rune {
	switch r {
	case 'i':
		return 'İ' // i -> İ
	case 'ı':
		return 'I' // ı -> I
	default:
		return unicode.ToUpper(r)
	}
}

// ToLower returns s with Turkic-aware lowercasing applied to every rune.
func ToLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(Lower(r))
	}
	return b.String()
}

// ToUpper returns s with Turkic-aware uppercasing applied to every rune.
func ToUpper(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(Upper(r))
	}
	return b.String()
}

// IsApostrophe reports whether r is an apostrophe glyph in any of the
// variants found in Turkic corpora: ASCII apostrophe, curly quotes,
// modifier letters, prime, and backtick. Uzbek orthography in particular
// mixes all of these for the oʻ/gʻ letters and the glottal stop.
func IsApostrophe(r rune) bool {
	switch r {
	case '\'', '‘', '’', 'ʻ', 'ʼ', 'ʹ', '`', '´':
		return true
	}
	return false
}

// FoldApostrophes replaces every apostrophe variant in s with the ASCII
// apostrophe.
func FoldApostrophes(s string) string {
	var changed bool
	for _, r := range s {
		if r != '\'' && IsApostrophe(r) {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsApostrophe(r) {
			b.WriteRune('\'')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
