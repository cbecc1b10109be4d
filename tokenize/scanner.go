package tokenize

import (
	"unicode"
	"unicode/utf8"
)

// wordTokens splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Number grouping (dot as thousand separator, comma as decimal)
//   - Hyphen joining (single U+002D between letter/digit)
//   - Apostrophe joining (U+0027, U+2019, U+02BB, U+02BC between letters)
//   - Default unicode classification
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Whitespace: merge contiguous into one Space token
		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		// Digits: scan a number token with possible separator dots and decimal comma
		if unicode.IsDigit(r) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Letters: scan a word token with possible hyphens and apostrophes
		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Punctuation: one token per mark, except consecutive hyphens
		// and dots which merge into a single token ("--", "...").
		if unicode.IsPunct(r) {
			start := i
			i += size
			if r == '-' || r == '.' {
				for i < len(s) {
					nr, ns := utf8.DecodeRuneInString(s[i:])
					if nr != r {
						break
					}
					i += ns
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		// Fallback: treat unclassified runes as Symbol
		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanNumber reads a number token starting at position pos.
// Handles thousand-separator dots (groups of exactly 3) and decimal
// commas. Digits may be ASCII or any Unicode decimal digit (Eastern
// Arabic numerals appear in Arabic-script text).
func scanNumber(s string, pos int) Token {
	i := pos

	i = consumeDigits(s, i)

	// Thousand-separator dots: \d{1,3}(\.\d{3})+
	for i < len(s) && s[i] == '.' {
		j := consumeDigits(s, i+1)
		if j-i-1 == 3 {
			i = j
			continue
		}
		break
	}

	// Decimal comma: must be followed by at least one digit
	if i < len(s) && s[i] == ',' {
		if j := consumeDigits(s, i+1); j > i+1 {
			i = j
		}
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// apostrophe reports whether r is one of the apostrophe forms that can
// join a clitic or modifier to the preceding word. U+02BB covers the
// Uzbek Latin okina (oʻzbek, gʻoz).
func apostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʻ' || r == 'ʼ'
}

// scanWord reads a word token starting at position pos.
// A word begins with a letter and may contain digits (e.g. "A4"), single
// hyphens (U+002D) between letters/digits, and apostrophes between letters.
func scanWord(s string, pos int) Token {
	i := consumeWordOrDigitRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Hyphen joining: single U+002D, preceded by letter/digit, followed by letter/digit
		if r == '-' {
			next := i + size
			if next < len(s) {
				nr, _ := utf8.DecodeRuneInString(s[next:])
				if nr == '-' {
					break
				}
				if unicode.IsLetter(nr) || unicode.IsDigit(nr) {
					i = consumeWordOrDigitRun(s, next)
					continue
				}
			}
			break
		}

		// Apostrophe joining between letters (Ankara'da, oʻzbek)
		if apostrophe(r) {
			next := i + size
			if next < len(s) {
				nr, _ := utf8.DecodeRuneInString(s[next:])
				pr, _ := utf8.DecodeLastRuneInString(s[pos:i])
				if unicode.IsLetter(nr) && unicode.IsLetter(pr) {
					i = next
					for i < len(s) {
						lr, ls := utf8.DecodeRuneInString(s[i:])
						if !unicode.IsLetter(lr) {
							break
						}
						i += ls
					}
					continue
				}
			}
			break
		}

		break
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// consumeWordOrDigitRun consumes a contiguous run of letters and digits.
func consumeWordOrDigitRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		pos += size
	}
	return pos
}

// consumeDigits consumes a contiguous run of decimal digits.
func consumeDigits(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsDigit(r) {
			break
		}
		pos += size
	}
	return pos
}
