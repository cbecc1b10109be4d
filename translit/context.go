package translit

import "strings"

// tukFrontish is the set of Turkmen Cyrillic letters that force ýe on a
// following е: front vowels plus the hard sign.
var tukFrontish = map[rune]bool{
	'и': true, 'И': true, 'ө': true, 'Ө': true,
	'ү': true, 'Ү': true, 'ә': true, 'Ә': true,
	'ъ': true, 'Ъ': true,
}

// uzbVowelish is the set of Uzbek Cyrillic letters after which е takes
// its ye form. Includes the sign letters, which are themselves
// consumed by the table.
var uzbVowelish = map[rune]bool{
	'а': true, 'А': true, 'е': true, 'Е': true, 'ё': true, 'Ё': true,
	'и': true, 'И': true, 'й': true, 'Й': true, 'о': true, 'О': true,
	'у': true, 'У': true, 'ў': true, 'Ў': true, 'ы': true, 'Ы': true,
	'э': true, 'Э': true, 'ю': true, 'Ю': true, 'я': true, 'Я': true,
	'ь': true, 'Ь': true, 'ъ': true, 'Ъ': true,
}

// tukCyrlToLatn handles Turkmen Cyrillic → Latin with the contextual е
// rule: word-initial е, or е after и/ө/ү/ә or the hard sign, becomes
// ýe; otherwise plain e. Hard and soft signs are dropped.
func (t *Transliterator) tukCyrlToLatn(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		// Multi-character table entries win over the contextual rule.
		if out, n := t.match(runes, i, 2); n > 0 {
			b.WriteString(out)
			i += n
			continue
		}

		r := runes[i]
		switch r {
		case 'ъ', 'Ъ', 'ь', 'Ь':
			i++
			continue
		case 'е', 'Е':
			needsY := wordInitial(runes, i) || (i > 0 && tukFrontish[runes[i-1]])
			switch {
			case needsY && r == 'е':
				b.WriteString("ýe")
			case needsY:
				b.WriteString("Ýe")
			case r == 'е':
				b.WriteByte('e')
			default:
				b.WriteByte('E')
			}
			i++
			continue
		}

		if out, n := t.match(runes, i, 1); n > 0 {
			b.WriteString(out)
			i += n
			continue
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// uzbCyrlToLatn handles Uzbek Cyrillic → Latin with the contextual е
// rule: word-initial е, or е after a vowel-class letter, becomes ye.
func (t *Transliterator) uzbCyrlToLatn(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		if out, n := t.match(runes, i, 2); n > 0 {
			b.WriteString(out)
			i += n
			continue
		}

		r := runes[i]
		if r == 'е' || r == 'Е' {
			needsY := wordInitial(runes, i) || (i > 0 && uzbVowelish[runes[i-1]])
			switch {
			case needsY && r == 'е':
				b.WriteString("ye")
			case needsY:
				b.WriteString("Ye")
			case r == 'е':
				b.WriteByte('e')
			default:
				b.WriteByte('E')
			}
			i++
			continue
		}

		if out, n := t.match(runes, i, 1); n > 0 {
			b.WriteString(out)
			i += n
			continue
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// tukLatnToCyrl handles Turkmen Latin → Cyrillic: the ýe digraph
// collapses back to a single е before the generic scanner runs.
func (t *Transliterator) tukLatnToCyrl(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		if i+1 < len(runes) && (runes[i] == 'ý' || runes[i] == 'Ý') &&
			(runes[i+1] == 'e' || runes[i+1] == 'E') {
			if runes[i] == 'ý' {
				b.WriteRune('е')
			} else {
				b.WriteRune('Е')
			}
			i += 2
			continue
		}

		if out, n := t.match(runes, i, 1); n > 0 {
			b.WriteString(out)
			i += n
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// uigInitialVowels maps word-initial Uyghur Latin vowels to the
// hamza-carrier fused Arabic forms. Consulted before the generic table.
var uigInitialVowels = map[rune]string{
	'a': "ئا", 'e': "ئە", 'o': "ئو", 'u': "ئۇ",
	'ö': "ئۆ", 'ü': "ئۈ", 'é': "ئې", 'i': "ئى",
	'A': "ئا", 'E': "ئە", 'O': "ئو", 'U': "ئۇ",
	'Ö': "ئۆ", 'Ü': "ئۈ", 'É': "ئې", 'I': "ئى",
}

// uigLatnToArab handles Uyghur Latin → Perso-Arabic: word-initial bare
// vowels receive the glottal-stop carrier. Arabic has no case, so no
// re-casing is performed.
func (t *Transliterator) uigLatnToArab(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		if wordInitial(runes, i) {
			if out, ok := uigInitialVowels[runes[i]]; ok {
				b.WriteString(out)
				i++
				continue
			}
		}

		if out, n := t.matchCaseless(runes, i); n > 0 {
			b.WriteString(out)
			i += n
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// matchCaseless is match without output re-casing, for caseless target
// scripts.
func (t *Transliterator) matchCaseless(runes []rune, i int) (string, int) {
	longest := maxChunk
	if rem := len(runes) - i; rem < longest {
		longest = rem
	}
	for length := longest; length >= 1; length-- {
		chunk := string(runes[i : i+length])
		if out, ok := t.table[chunk]; ok {
			return out, length
		}
		lower := strings.ToLower(chunk)
		if lower == chunk {
			continue
		}
		if out, ok := t.table[lower]; ok {
			return out, length
		}
	}
	return "", 0
}
