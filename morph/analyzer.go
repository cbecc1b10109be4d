package morph

import (
	"errors"
	"fmt"

	"github.com/turkic-nlp/turkicnlp/doc"
	"github.com/turkic-nlp/turkicnlp/normalize"
	"github.com/turkic-nlp/turkicnlp/script"
	"github.com/turkic-nlp/turkicnlp/tagmap"
	"github.com/turkic-nlp/turkicnlp/translit"
)

// Analyzer runs the full per-word pipeline: normalization, script
// bridging, transducer lookup, disambiguation, and tag mapping. It
// annotates words in place, writing only Lemma, UPOS, and Feats.
//
// An Analyzer holds no mutable state after construction and is safe
// for concurrent use when its Lookup is.
type Analyzer struct {
	lang      string
	src       script.Script
	fstScript script.Script
	fst       Lookup
	toFST     *translit.Transliterator // nil when src == fstScript
	fromFST   *translit.Transliterator // nil when no reverse table exists
	mapper    *tagmap.Mapper
	disamb    *Disambiguator
	tagger    *ExternalTagger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithExternalTagger routes disambiguation through an external tagger
// subprocess, falling back to the in-process heuristic when it fails.
func WithExternalTagger(t *ExternalTagger) Option {
	return func(a *Analyzer) { a.tagger = t }
}

// New builds an analyzer for a language whose input text uses script
// sc, backed by the given transducer. When sc differs from the script
// the language's transducer expects, the required transliteration
// tables must exist; a missing table is a construction error, never a
// silent identity mapping.
func New(lang string, sc script.Script, fst Lookup, opts ...Option) (*Analyzer, error) {
	if fst == nil {
		return nil, errors.New("morph: nil lookup")
	}
	cfg, err := script.ConfigFor(lang)
	if err != nil {
		return nil, err
	}
	a := &Analyzer{
		lang:      lang,
		src:       sc,
		fstScript: cfg.FSTScript,
		fst:       fst,
		mapper:    tagmap.ForLanguage(lang),
	}
	if a.src != a.fstScript {
		a.toFST, err = translit.New(lang, a.src, a.fstScript)
		if err != nil {
			return nil, fmt.Errorf("morph: bridging %s to transducer script: %w", lang, err)
		}
		// The reverse direction is optional: some languages define
		// only one table. Lemmas stay in the transducer's script
		// when no way back exists.
		a.fromFST, _ = a.toFST.Reverse()
	}
	a.disamb = NewDisambiguator(lang, a.toFST)
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Lang returns the analyzer's ISO 639-3 language code.
func (a *Analyzer) Lang() string { return a.lang }

// ProcessDocument annotates every sentence of the document.
func (a *Analyzer) ProcessDocument(d *doc.Document) {
	for _, sent := range d.Sentences {
		a.ProcessSentence(sent)
	}
}

// ProcessSentence annotates every word of the sentence. After the
// call each word has a non-empty Lemma, UPOS, and Feats.
func (a *Analyzer) ProcessSentence(sent *doc.Sentence) {
	words := sent.Words

	cands := make([][]Reading, len(words))
	for i, w := range words {
		if wordIsPunct(w) {
			continue
		}
		cands[i] = a.candidates(w.Text)
	}

	var chosen []*Reading
	if a.tagger != nil {
		chosen = a.tagger.Tag(words, cands)
	}

	for i, w := range words {
		if wordIsPunct(w) {
			w.Lemma = w.Text
			w.UPOS = "PUNCT"
			w.Feats = EmptyFeats
			continue
		}
		if len(cands[i]) == 0 {
			w.Lemma, w.UPOS, w.Feats = a.disamb.Fallback(w.Text, words, i)
			continue
		}
		var best Reading
		if chosen != nil && chosen[i] != nil {
			best = *chosen[i]
		} else {
			best = a.disamb.Choose(cands[i], words, i, w.Text)
		}
		a.annotate(w, best)
	}
}

// candidates normalizes the surface form, bridges scripts when
// needed, and queries the transducer, stopping at the first variant
// that yields any analyses. A lookup error counts as no analyses.
func (a *Analyzer) candidates(surface string) []Reading {
	for _, variant := range normalize.Variants(surface) {
		probe := variant
		if a.toFST != nil {
			probe = a.toFST.Transliterate(variant)
		}
		raw, err := a.fst.Lookup(probe)
		if err != nil || len(raw) == 0 {
			continue
		}
		readings := make([]Reading, 0, len(raw))
		for _, w := range raw {
			if r, ok := ParseReading(w.Form, w.Weight); ok {
				readings = append(readings, r)
			}
		}
		if len(readings) > 0 {
			return readings
		}
	}
	return nil
}

// annotate maps the chosen reading's tags to the universal vocabulary
// and writes the word's output fields, transliterating the lemma back
// to the caller's script when the pipeline bridged scripts.
func (a *Analyzer) annotate(w *doc.Word, r Reading) {
	upos := a.mapper.UPOS(r.POS)
	feats := tagmap.CleanFeats(upos, a.mapper.Feats(r.Feats))

	lemma := r.Lemma
	if a.fromFST != nil {
		lemma = a.fromFST.Transliterate(lemma)
	}
	if lemma == "" {
		lemma = w.Text
	}

	w.Lemma = lemma
	w.UPOS = upos
	w.Feats = feats
}
