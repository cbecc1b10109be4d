package tagmap

import (
	"sort"
	"strings"
)

// uposFeatWhitelist lists the feature categories each UPOS may carry in
// the output. FST tag soup occasionally produces readings like a
// proper noun with a tense tag; the whitelist strips those artifacts
// after mapping. UPOS values without an entry (X, PUNCT, ...) pass
// their features through unfiltered.
var uposFeatWhitelist = map[string]map[string]bool{
	"NOUN": {
		"Case": true, "Number": true,
		"Number[psor]": true, "Person[psor]": true,
	},
	"PROPN": {
		"Case": true, "Number": true,
		"Number[psor]": true, "Person[psor]": true,
	},
	"ADJ": {
		"Case": true, "Number": true, "Degree": true,
	},
	"ADV": {
		"Degree": true,
	},
	"PRON": {
		"Case": true, "Number": true, "Person": true,
		"PronType": true, "Reflex": true,
		"Number[psor]": true, "Person[psor]": true,
	},
	"DET": {
		"PronType": true, "Definite": true,
	},
	"NUM": {
		"Case": true, "Number": true, "NumType": true,
	},
	"VERB": {
		"Tense": true, "Mood": true, "Aspect": true, "Voice": true,
		"VerbForm": true, "Person": true, "Number": true,
		"Polarity": true, "Evident": true, "Case": true,
	},
	"AUX": {
		"Tense": true, "Mood": true, "Aspect": true, "Voice": true,
		"VerbForm": true, "Person": true, "Number": true,
		"Polarity": true, "Evident": true,
	},
	"PART": {
		"PartType": true, "Polarity": true,
	},
	"ADP": {
		"Case": true,
	},
}

// CleanFeats drops every feature entry in feats whose category prefix
// is not whitelisted for upos. Compound entries produced by possession
// tags are split into their components first. An empty result yields
// EmptyFeats; this function never fails.
func CleanFeats(upos, feats string) string {
	if feats == "" || feats == EmptyFeats {
		return EmptyFeats
	}
	allowed, ok := uposFeatWhitelist[upos]
	if !ok {
		return feats
	}

	var kept []string
	for _, entry := range strings.Split(feats, "|") {
		cat, _, found := strings.Cut(entry, "=")
		if found && allowed[cat] {
			kept = append(kept, entry)
		}
	}
	if len(kept) == 0 {
		return EmptyFeats
	}
	sort.Strings(kept)
	return strings.Join(kept, "|")
}
