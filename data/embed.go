// Package data embeds the closed-class lexicon files shipped with the
// library. Each lexicon is a JSON file of surface-form lists keyed by
// entry type (pronouns, degree adverbs, question particles, cardinal
// numerals and so on) for one language.
package data

import "embed"

//go:embed lexicons/*.json
var lexiconFS embed.FS

// Lexicon returns the raw lexicon JSON for an ISO 639-3 language code.
// The second return is false when no lexicon ships for the language.
func Lexicon(lang string) ([]byte, bool) {
	b, err := lexiconFS.ReadFile("lexicons/" + lang + ".json")
	if err != nil {
		return nil, false
	}
	return b, true
}

// Languages lists the language codes with an embedded lexicon.
func Languages() []string {
	entries, err := lexiconFS.ReadDir("lexicons")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		langs = append(langs, name[:len(name)-len(".json")])
	}
	return langs
}
