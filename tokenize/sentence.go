package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/turkic-nlp/turkicnlp/internal/turkcase"
)

// abbreviations maps common abbreviations (lowercase, with trailing dot)
// to true, shared across the supported languages. Used to suppress false
// sentence breaks after abbreviated words. Short prefixes like "т." are
// included to support greedy forward matching to "т.б.".
var abbreviations = map[string]bool{
	// Turkish, Azerbaijani, Turkmen, Uzbek (Latin)
	"prof.": true, "doç.": true, "dos.": true, "dr.": true, "akad.": true,
	"vb.": true, "vs.": true, "bkz.": true, "örn.": true, "yy.": true,
	"sn.": true, "no.": true, "tel.": true,
	// Kazakh, Kyrgyz, Tatar (Cyrillic)
	"проф.": true, "док.": true, "акад.": true,
	"т.": true, "т.б.": true, "ж.": true, "мыс.": true, "һ.б.": true,
	// Units
	"km.": true, "kg.": true, "sm.": true, "cm.": true, "min.": true,
	"км.": true, "кг.": true, "см.": true, "мин.": true,
}

// terminal reports whether r ends a sentence. The Arabic question mark
// and full stop appear in Uyghur and Ottoman text.
func terminal(r rune) bool {
	return r == '.' || r == '?' || r == '!' || r == '؟' || r == '۔'
}

// sentenceTokens splits s into sentence-level tokens.
// Adjacent tokens cover the entire input without gaps or overlaps:
// concatenating all Token.Text values reconstructs s exactly.
func sentenceTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/40+1)
	sentStart := 0 // byte offset where the current sentence begins

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Double newline forces a sentence break regardless of punctuation.
		if r == '\n' && i+1 < len(s) && s[i+1] == '\n' {
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			tokens = append(tokens, Token{
				Text:  s[sentStart:j],
				Start: sentStart,
				End:   j,
				Type:  Sentence,
			})
			sentStart = j
			i = j
			continue
		}

		if terminal(r) {
			// Ellipsis: consume all consecutive dots ("..." and "....").
			if r == '.' && i+2 < len(s) && s[i+1] == '.' && s[i+2] == '.' {
				j := i
				for j < len(s) && s[j] == '.' {
					j++
				}
				if breaksAt(s, j) {
					tokens = append(tokens, Token{
						Text:  s[sentStart:j],
						Start: sentStart,
						End:   j,
						Type:  Sentence,
					})
					sentStart = j
				}
				i = j
				continue
			}

			// Single dot: check for abbreviation.
			if r == '.' && isAbbreviation(s, i) {
				i += size
				continue
			}

			// Consume the entire terminal cluster (e.g. "?!", "???").
			j := i + size
			for j < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[j:])
				if !terminal(nr) {
					break
				}
				j += ns
			}

			if breaksAt(s, j) {
				tokens = append(tokens, Token{
					Text:  s[sentStart:j],
					Start: sentStart,
					End:   j,
					Type:  Sentence,
				})
				sentStart = j
			}
			i = j
			continue
		}

		// Unicode ellipsis U+2026.
		if r == '…' {
			j := i + size
			if breaksAt(s, j) {
				tokens = append(tokens, Token{
					Text:  s[sentStart:j],
					Start: sentStart,
					End:   j,
					Type:  Sentence,
				})
				sentStart = j
			}
			i = j
			continue
		}

		i += size
	}

	// Emit the final sentence if there is remaining text.
	if sentStart < len(s) {
		tokens = append(tokens, Token{
			Text:  s[sentStart:],
			Start: sentStart,
			End:   len(s),
			Type:  Sentence,
		})
	}

	return tokens
}

// breaksAt reports whether position pos in s is followed by at least
// one whitespace character and then a letter that can open a sentence:
// an uppercase letter in bicameral scripts, or any letter in caseless
// scripts such as Arabic.
func breaksAt(s string, pos int) bool {
	i := pos
	foundSpace := false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			foundSpace = true
			i += size
			continue
		}
		if !foundSpace || !unicode.IsLetter(r) {
			return false
		}
		return unicode.IsUpper(r) || !unicode.IsLower(r)
	}
	return false
}

// isAbbreviation checks whether the dot at byte position dotPos is part
// of a known abbreviation rather than a sentence-ending period.
func isAbbreviation(s string, dotPos int) bool {
	word, _ := wordBefore(s, dotPos)
	if word == "" {
		return false
	}

	candidate := turkcase.ToLower(word) + "."
	if abbreviations[candidate] {
		// Greedy forward matching: check if the abbreviation extends
		// further, e.g. after matching "т." check for "т.б.".
		return greedyAbbreviation(s, candidate, dotPos+1)
	}

	// Final dot of a multi-part abbreviation: "т.б." at its second dot
	// resolves through the whole dotted run, not the last letter alone.
	if run := dottedRun(s, dotPos); run != "" && abbreviations[turkcase.ToLower(run)+"."] {
		return true
	}
	return false
}

// greedyAbbreviation tries to extend a matched abbreviation prefix
// forward. It returns true once no further extension is possible,
// confirming the abbreviation. The next segment must be word + "."
// immediately adjacent with no whitespace.
func greedyAbbreviation(s, prefix string, pos int) bool {
	if pos >= len(s) {
		return true
	}

	j := pos
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsLetter(r) {
			break
		}
		j += size
	}
	if j == pos || j >= len(s) || s[j] != '.' {
		return true
	}

	extended := prefix + turkcase.ToLower(s[pos:j]) + "."
	if abbreviations[extended] {
		return greedyAbbreviation(s, extended, j+1)
	}
	return true
}

// wordBefore extracts the word immediately before byte position pos.
// A word consists of consecutive letters. Returns ("", pos) when no
// word is found.
func wordBefore(s string, pos int) (string, int) {
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsLetter(r) {
			break
		}
		i -= size
	}
	if i == pos {
		return "", pos
	}
	return s[i:pos], i
}

// dottedRun walks back from dotPos over letters and inner dots and
// returns the run ("т.б"), or "" when the run contains no dot.
func dottedRun(s string, dotPos int) string {
	i := dotPos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		i -= size
	}
	run := s[i:dotPos]
	if !strings.Contains(run, ".") {
		return ""
	}
	return run
}
