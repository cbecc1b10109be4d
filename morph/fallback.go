package morph

import (
	"strings"
	"unicode"

	"github.com/turkic-nlp/turkicnlp/doc"
	"github.com/turkic-nlp/turkicnlp/internal/turkcase"
	"github.com/turkic-nlp/turkicnlp/normalize"
)

// Fallback values for words the transducer does not know.
const (
	UnknownPOS   = "X"
	EmptyFeats   = "_"
	numeralFeats = "NumType=Card"
)

// Fallback analyzes a word the transducer returned nothing for. The
// heuristics run in a fixed order and the last resort always matches,
// so the returned fields are never empty.
func (d *Disambiguator) Fallback(surface string, sent []*doc.Word, idx int) (lemma, upos, feats string) {
	if isNumericToken(surface) {
		return surface, "NUM", numeralFeats
	}

	folded := normalize.Fold(surface)

	// Proper nouns inflect through an apostrophe in several
	// orthographies (Ankara'da, Toshkent'ga); a short suffix after
	// the apostrophe on a capitalized token is a clitic, not part of
	// the name.
	if capitalized(surface) {
		if cut := strings.IndexByte(folded, '\''); cut > 0 {
			suffix := folded[cut+1:]
			if n := len([]rune(suffix)); n > 0 && n <= 4 && alphabetic(suffix) {
				return folded[:cut], "PROPN", EmptyFeats
			}
		}
	}

	// Reduplication (adverb formation): both halves of a hyphenated
	// token normalize to the same string.
	if cut := strings.IndexByte(folded, '-'); cut > 0 && cut < len(folded)-1 {
		left := turkcase.ToLower(folded[:cut])
		right := turkcase.ToLower(folded[cut+1:])
		if left == right {
			return left, "ADV", EmptyFeats
		}
	}

	if capitalized(surface) && !sentenceInitial(sent, idx) {
		return folded, "PROPN", EmptyFeats
	}

	if entries := d.lex.Lookup(turkcase.ToLower(folded)); len(entries) > 0 {
		return turkcase.ToLower(folded), entries[0].UPOS, entries[0].Feats
	}

	return surface, UnknownPOS, EmptyFeats
}

// isNumericToken reports whether the token is a number, allowing
// digit separators, signs, percent, and ratio/date punctuation.
func isNumericToken(s string) bool {
	digit := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case r == '.' || r == ',' || r == '%' || r == '+' || r == '-' || r == '/' || r == ':':
		default:
			return false
		}
	}
	return digit
}

func alphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
