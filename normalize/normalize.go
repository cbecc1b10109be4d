// Package normalize produces lookup-candidate variants of a surface
// word for transducer lookup.
//
// The variant ladder is ordered from most to least faithful: the exact
// surface form first, then case folding, then Unicode compatibility
// folding (NFKC, zero-width strip, apostrophe and hyphen variant
// folding), then diacritic stripping. Callers try each variant in
// order and stop at the first hit, preferring an exact match over any
// normalization that could change meaning.
//
// Case folding is Turkic-aware: I lowercases to ı and İ to i.
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/turkic-nlp/turkicnlp/internal/turkcase"
)

// hyphenFolder folds the Unicode hyphen variants seen in Turkic corpora
// to the ASCII hyphen-minus.
var hyphenFolder = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
	"−", "-", // minus sign
)

// zeroWidth is the set of zero-width characters stripped during
// folding: zero-width space, non-joiner, joiner, BOM, soft hyphen.
func zeroWidth(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\uFEFF', '\u00AD':
		return true
	}
	return false
}

// Fold returns the compatibility-folded form of s: NFKC normalization
// with zero-width characters removed, apostrophe variants folded to ',
// and hyphen variants folded to the ASCII hyphen.
func Fold(s string) string {
	folded := norm.NFKC.String(s)
	if strings.ContainsFunc(folded, zeroWidth) {
		var b strings.Builder
		b.Grow(len(folded))
		for _, r := range folded {
			if !zeroWidth(r) {
				b.WriteRune(r)
			}
		}
		folded = b.String()
	}
	folded = turkcase.FoldApostrophes(folded)
	return hyphenFolder.Replace(folded)
}

// stripMn removes combining marks after NFD decomposition and
// recomposes with NFC.
var stripMn = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes combining diacritical marks from s: NFD
// decompose, drop nonspacing marks, NFC recompose. Letters with
// non-decomposable diacritics (ə, ı, ŋ) are left alone.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMn, s)
	if err != nil {
		return s
	}
	return out
}

// Variants returns the ordered lookup-candidate list for surface. The
// result is never empty and its first element is always the unmodified
// surface. Consecutive duplicates are collapsed so a fully ASCII word
// yields a short list.
func Variants(surface string) []string {
	variants := make([]string, 0, 6)
	add := func(v string) {
		for _, seen := range variants {
			if seen == v {
				return
			}
		}
		variants = append(variants, v)
	}

	add(surface)
	add(turkcase.ToLower(surface))

	folded := Fold(surface)
	add(folded)
	add(turkcase.ToLower(folded))

	stripped := StripDiacritics(folded)
	add(stripped)
	add(turkcase.ToLower(stripped))

	return variants
}
