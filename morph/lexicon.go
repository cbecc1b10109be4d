package morph

import (
	"encoding/json"
	"fmt"

	"github.com/turkic-nlp/turkicnlp/data"
	"github.com/turkic-nlp/turkicnlp/internal/turkcase"
)

// LexEntry is one universal-tagset analysis recorded for a closed-class
// surface form.
type LexEntry struct {
	UPOS  string
	Feats string
}

// Lexicon maps lowercased closed-class surface forms to their known
// analyses. It supports disambiguation and unknown-word fallback only;
// it is never the primary analysis source. Read-only after load.
type Lexicon struct {
	forms map[string][]LexEntry
}

type lexiconFile struct {
	Lang    string `json:"lang"`
	Entries []struct {
		Type          string   `json:"type"`
		UPOS          string   `json:"upos"`
		Feats         string   `json:"feats"`
		LemmaStrategy string   `json:"lemma_strategy"`
		Forms         []string `json:"forms"`
	} `json:"entries"`
}

// ParseLexicon decodes a lexicon JSON document. Surface forms are
// lowercased on load; an empty feats string is stored as the "_"
// sentinel.
func ParseLexicon(b []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("morph: parsing lexicon: %w", err)
	}
	lex := &Lexicon{forms: make(map[string][]LexEntry)}
	for _, e := range f.Entries {
		feats := e.Feats
		if feats == "" {
			feats = "_"
		}
		for _, form := range e.Forms {
			key := turkcase.ToLower(form)
			lex.forms[key] = append(lex.forms[key], LexEntry{UPOS: e.UPOS, Feats: feats})
		}
	}
	return lex, nil
}

// LoadLexicon loads the embedded lexicon for a language. The second
// return is false when no lexicon ships for the language; a shipped
// lexicon that fails to decode is a programming error and panics.
func LoadLexicon(lang string) (*Lexicon, bool) {
	b, ok := data.Lexicon(lang)
	if !ok {
		return nil, false
	}
	lex, err := ParseLexicon(b)
	if err != nil {
		panic(fmt.Sprintf("morph: embedded lexicon %s: %v", lang, err))
	}
	return lex, true
}

// Lookup returns the entries for a lowercased surface form, or nil.
func (l *Lexicon) Lookup(surfaceLower string) []LexEntry {
	if l == nil {
		return nil
	}
	return l.forms[surfaceLower]
}

// HasUPOS reports whether any entry for the surface form carries the
// given universal POS.
func (l *Lexicon) HasUPOS(surfaceLower, upos string) bool {
	for _, e := range l.Lookup(surfaceLower) {
		if e.UPOS == upos {
			return true
		}
	}
	return false
}

// Len reports the number of distinct surface forms.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.forms)
}
