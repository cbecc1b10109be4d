// Package translit converts Turkic text between writing scripts.
//
// Every language carries its own mapping table because the same
// Cyrillic letter maps to different Latin letters across the family
// (e.g. Cyrillic г is Latin q in Azerbaijani but g in Kazakh). Tables
// are registered under "<lang>_<Src>_to_<Tgt>" keys in tables.go; a
// missing table is a construction-time error, never a silent identity
// mapping.
//
// The engine is a greedy longest-match scanner over code points (chunk
// lengths 4 down to 1), case-insensitive with case-preserving
// re-casing. A few language/direction pairs apply contextual rules
// before the generic scanner:
//
//   - Turkmen Cyrillic е is ýe word-initially, after front vowels, or
//     after a hard sign; hard and soft signs are otherwise dropped.
//   - Uzbek Cyrillic е is ye word-initially or after a vowel-class
//     letter; apostrophe glyph variants fold to ' before Latin→Cyrillic
//     conversion.
//   - Turkmen Latin ýe collapses back to a single Cyrillic е.
//   - Uyghur word-initial vowels take the hamza-carrier fused forms in
//     the Perso-Arabic direction.
//
// Unmapped characters pass through unchanged. All methods are safe for
// concurrent use; tables are read-only after package init.
package translit

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/turkic-nlp/turkicnlp/internal/turkcase"
	"github.com/turkic-nlp/turkicnlp/script"
)

// ErrNoTable is returned by New when no transliteration table is
// registered for the requested (language, source, target) combination.
var ErrNoTable = errors.New("translit: no transliteration table for pair")

// maxChunk is the longest table key, in code points.
const maxChunk = 4

// Transliterator converts text from one script to another for a single
// language. Construct with New; the zero value is not usable.
type Transliterator struct {
	lang   string
	source script.Script
	target script.Script
	table  map[string]string

	reverseOnce sync.Once
	reverse     *Transliterator
	reverseErr  error
}

// New returns a Transliterator for the given ISO 639-3 language code
// and script pair. Returns an error wrapping ErrNoTable when the pair
// has no registered table.
func New(lang string, source, target script.Script) (*Transliterator, error) {
	key := tableKey(lang, source, target)
	table, ok := transliterationTables[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s -> %s", ErrNoTable, lang, source, target)
	}
	return &Transliterator{lang: lang, source: source, target: target, table: table}, nil
}

func tableKey(lang string, source, target script.Script) string {
	return lang + "_" + source.Code() + "_to_" + target.Code()
}

// Lang returns the transliterator's ISO 639-3 language code.
func (t *Transliterator) Lang() string { return t.lang }

// Source returns the source script.
func (t *Transliterator) Source() script.Script { return t.source }

// Target returns the target script.
func (t *Transliterator) Target() script.Script { return t.target }

// Reverse returns a transliterator for the opposite direction. It is
// built on first use and cached; the error wraps ErrNoTable when the
// opposite direction is not table-defined.
func (t *Transliterator) Reverse() (*Transliterator, error) {
	t.reverseOnce.Do(func() {
		t.reverse, t.reverseErr = New(t.lang, t.target, t.source)
	})
	return t.reverse, t.reverseErr
}

// Transliterate converts text from the source script to the target
// script. The same input always yields the same output.
func (t *Transliterator) Transliterate(text string) string {
	if text == "" {
		return ""
	}
	switch {
	case t.lang == "tuk" && t.source == script.Cyrillic && t.target == script.Latin:
		return t.tukCyrlToLatn(text)
	case t.lang == "uzb" && t.source == script.Cyrillic && t.target == script.Latin:
		return t.uzbCyrlToLatn(text)
	case t.lang == "tuk" && t.source == script.Latin && t.target == script.Cyrillic:
		return t.tukLatnToCyrl(text)
	case t.lang == "uig" && t.source == script.Latin && t.target == script.PersoArabic:
		return t.uigLatnToArab(text)
	case t.lang == "uzb" && t.source == script.Latin && t.target == script.Cyrillic:
		text = turkcase.FoldApostrophes(text)
	}
	return t.generic(text)
}

// generic is the table-driven greedy scanner used when no contextual
// rule applies.
func (t *Transliterator) generic(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		out, n := t.match(runes, i, 1)
		if n == 0 {
			b.WriteRune(runes[i])
			i++
			continue
		}
		b.WriteString(out)
		i += n
	}
	return b.String()
}

// match probes table keys of decreasing chunk length (maxChunk down to
// minLen) at position i. It returns the mapped output and the number of
// runes consumed, or ("", 0) when nothing matches. Case-insensitive:
// when only the lowercase chunk matches and the original chunk starts
// uppercase, the output is re-cased: first rune only for multi-rune
// outputs, the whole output when it is a single rune.
func (t *Transliterator) match(runes []rune, i, minLen int) (string, int) {
	longest := maxChunk
	if rem := len(runes) - i; rem < longest {
		longest = rem
	}
	for length := longest; length >= minLen; length-- {
		chunk := string(runes[i : i+length])
		if out, ok := t.table[chunk]; ok {
			return out, length
		}
		lower := strings.ToLower(chunk)
		if lower == chunk {
			continue
		}
		if out, ok := t.table[lower]; ok {
			if unicode.IsUpper(runes[i]) {
				out = recase(out)
			}
			return out, length
		}
	}
	return "", 0
}

// recase upper-cases the first rune of out, or the whole string when
// out is a single rune.
func recase(out string) string {
	runes := []rune(out)
	if len(runes) == 0 {
		return out
	}
	if len(runes) == 1 {
		return string(turkcase.Upper(runes[0]))
	}
	return string(turkcase.Upper(runes[0])) + string(runes[1:])
}

// wordInitial reports whether position i starts a word: it is the
// first rune or follows a non-letter.
func wordInitial(runes []rune, i int) bool {
	return i == 0 || !unicode.IsLetter(runes[i-1])
}
