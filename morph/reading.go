// Package morph selects a single morphological analysis per word for
// Turkic-language text, combining an external finite-state transducer
// with position heuristics and a closed-class lexicon.
//
// The package provides three API layers:
//
//   - Structured: ParseReading turns a raw transducer output string
//     into a Reading, and Disambiguator.Choose picks the best Reading
//     from a candidate list given sentence context.
//
//   - Orchestrated: Analyzer wires normalization, script bridging,
//     lookup, disambiguation, and tag mapping together, and annotates
//     doc.Sentence / doc.Document values in place.
//
//   - Pluggable: the Lookup interface is the transducer boundary; any
//     weighted string relation can back it (a compiled FST, a TSV
//     table, a network service).
//
// All state is read-only after construction. An Analyzer is safe for
// concurrent use provided its Lookup is.
//
// Known limitations (v1.0):
//
//   - Disambiguation is heuristic. The context scores are hand-tuned
//     starting values, not validated against a treebank.
//   - The subprocess tagger protocol assumes space-separated tokens;
//     analyses containing spaces are not escaped.
//   - Lexicon coverage ships for eight languages; others fall back to
//     weight-only disambiguation.
package morph

import (
	"regexp"
	"strings"
)

// Reading is one candidate morphological analysis of a surface form.
// POS and Feats use the source tagset of the transducer; Weight is the
// transducer path cost, lower is better.
type Reading struct {
	Lemma  string   `json:"lemma"`
	POS    string   `json:"pos"`
	Feats  []string `json:"feats,omitempty"` // source order preserved
	Weight float64  `json:"weight"`
	Raw    string   `json:"raw,omitempty"`
}

// HasFeat reports whether the reading carries the given source tag.
func (r *Reading) HasFeat(tag string) bool {
	for _, f := range r.Feats {
		if f == tag {
			return true
		}
	}
	return false
}

// markerPattern matches transducer-internal marker tokens such as
// compound and epsilon markers, which carry no linguistic content.
var markerPattern = regexp.MustCompile(`\[@[^\]]*\]|@[^@<>\s]*@`)

// tagPattern extracts the contents of each <...> tag.
var tagPattern = regexp.MustCompile(`<([^<>]+)>`)

// ParseReading converts one raw weighted transducer output into a
// Reading. The raw string may carry a tab-delimited prefix (the
// surface echo), a ^...$ shell, and multiple /-separated analyses, of
// which the last is kept. Returns ok=false when no tags can be
// extracted; a bare lemma with no POS is not a usable analysis.
func ParseReading(raw string, weight float64) (Reading, bool) {
	s := raw
	if i := strings.LastIndexByte(s, '\t'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimPrefix(s, "^")
	s = strings.TrimSuffix(s, "$")
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	s = markerPattern.ReplaceAllString(s, "")

	lt := strings.IndexByte(s, '<')
	if lt < 0 {
		return Reading{}, false
	}
	lemma := s[:lt]

	matches := tagPattern.FindAllStringSubmatch(s[lt:], -1)
	if len(matches) == 0 {
		return Reading{}, false
	}
	tags := make([]string, len(matches))
	for i, m := range matches {
		tags[i] = m[1]
	}

	r := Reading{
		Lemma:  lemma,
		POS:    tags[0],
		Weight: weight,
		Raw:    raw,
	}
	if len(tags) > 1 {
		r.Feats = tags[1:]
	}
	return r, true
}
