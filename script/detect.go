package script

import "unicode"

// scriptRange is a closed interval of Unicode code points.
type scriptRange struct {
	lo, hi rune
}

// scriptRanges maps each script to its Unicode block ranges. Order
// matters for classification of a single rune only in that the first
// matching script wins, but the ranges are disjoint.
var scriptRanges = [...]struct {
	script Script
	ranges []scriptRange
}{
	{Latin, []scriptRange{
		{0x0041, 0x024F}, // Basic Latin letters + Extended A/B
		{0x1E00, 0x1EFF}, // Latin Extended Additional
	}},
	{Cyrillic, []scriptRange{
		{0x0400, 0x04FF}, // Cyrillic
		{0x0500, 0x052F}, // Cyrillic Supplement
		{0x2DE0, 0x2DFF}, // Cyrillic Extended-A
		{0xA640, 0xA69F}, // Cyrillic Extended-B
	}},
	{PersoArabic, []scriptRange{
		{0x0600, 0x06FF}, // Arabic
		{0x0750, 0x077F}, // Arabic Supplement
		{0x08A0, 0x08FF}, // Arabic Extended-A
		{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
		{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
	}},
	{OldTurkicRunic, []scriptRange{
		{0x10C00, 0x10C4F}, // Old Turkic
	}},
}

// classify maps a rune to its script, or Unknown for neutral characters
// (digits, punctuation, separators, symbols, controls) and for letters
// outside every range table.
func classify(r rune) Script {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) ||
		unicode.IsSymbol(r) || unicode.IsControl(r) {
		return Unknown
	}
	for _, e := range scriptRanges {
		for _, rg := range e.ranges {
			if r >= rg.lo && r <= rg.hi {
				return e.script
			}
		}
	}
	return Unknown
}

// Detect returns the dominant script of text, counting classifiable
// letters per script. Digits, punctuation, and whitespace are ignored.
// Ties are broken by scan order: the first-encountered script wins.
// Returns ErrNoScript when no classifiable letters are present.
func Detect(text string) (Script, error) {
	var counts [len(scriptNames)]int
	var order []Script
	for _, r := range text {
		sc := classify(r)
		if sc == Unknown {
			continue
		}
		if counts[sc] == 0 {
			order = append(order, sc)
		}
		counts[sc]++
	}
	if len(order) == 0 {
		return Unknown, ErrNoScript
	}
	best := order[0]
	for _, sc := range order[1:] {
		if counts[sc] > counts[best] {
			best = sc
		}
	}
	return best, nil
}

// Segment is a contiguous run of text in a single script.
type Segment struct {
	Text   string `json:"text"`
	Script Script `json:"script"`
}

// DetectSegments splits text into maximal contiguous runs of one script.
// Neutral characters never form their own segment: they are absorbed
// into the run they follow, and neutrals before the first classifiable
// character are dropped. Text with no classifiable characters yields an
// empty result.
func DetectSegments(text string) []Segment {
	if text == "" {
		return nil
	}

	var segments []Segment
	current := Unknown
	start := 0

	for i, r := range text {
		sc := classify(r)
		if sc == Unknown {
			continue
		}
		if sc != current {
			if current != Unknown {
				segments = append(segments, Segment{Text: text[start:i], Script: current})
			}
			start = i
			current = sc
		}
	}
	if current != Unknown {
		segments = append(segments, Segment{Text: text[start:], Script: current})
	}
	return segments
}
