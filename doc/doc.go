// Package doc holds the Document → Sentence → Word data model shared
// by all processing stages, mapping directly to CoNLL-U.
//
// Processing stages mutate Word fields in place; each stage owns a
// fixed subset of fields and must not overwrite fields written by
// another stage. The morphology stage writes Lemma, UPOS, and Feats
// only.
package doc

import (
	"strconv"
	"strings"
)

// Word is a syntactic word, one line in CoNLL-U output.
type Word struct {
	ID     int    `json:"id"` // 1-based index within the sentence
	Text   string `json:"text"`
	Lemma  string `json:"lemma,omitempty"`
	UPOS   string `json:"upos,omitempty"`
	XPOS   string `json:"xpos,omitempty"`
	Feats  string `json:"feats,omitempty"`
	Head   int    `json:"head,omitempty"` // 0 = root; -1 = unset
	Deprel string `json:"deprel,omitempty"`
	Misc   string `json:"misc,omitempty"`
	Script string `json:"script,omitempty"` // ISO 15924 code when it differs from the document default
}

// Sentence is an ordered sequence of words.
type Sentence struct {
	Text  string  `json:"text,omitempty"`
	Words []*Word `json:"words"`
}

// Document is the top-level container for one processed text.
type Document struct {
	Lang      string      `json:"lang,omitempty"`   // ISO 639-3
	Script    string      `json:"script,omitempty"` // ISO 15924
	Text      string      `json:"text,omitempty"`
	Sentences []*Sentence `json:"sentences"`
}

// orUnderscore returns s, or the CoNLL-U empty-field sentinel.
func orUnderscore(s string) string {
	if s == "" {
		return "_"
	}
	return s
}

// ConlluLine formats the word as a single CoNLL-U line. The Script
// field, when set, is folded into MISC as Script=<code>.
func (w *Word) ConlluLine() string {
	misc := orUnderscore(w.Misc)
	if w.Script != "" {
		if misc == "_" {
			misc = "Script=" + w.Script
		} else {
			misc += "|Script=" + w.Script
		}
	}

	head := "_"
	if w.Head >= 0 {
		// Head is only meaningful once a parser has run; ID 0 words
		// do not occur, so a zero Head on an unparsed word stays "_".
		if w.Head > 0 || w.Deprel != "" {
			head = strconv.Itoa(w.Head)
		}
	}

	fields := []string{
		strconv.Itoa(w.ID),
		orUnderscore(w.Text),
		orUnderscore(w.Lemma),
		orUnderscore(w.UPOS),
		orUnderscore(w.XPOS),
		orUnderscore(w.Feats),
		head,
		orUnderscore(w.Deprel),
		"_", // DEPS: enhanced dependencies are out of scope
		misc,
	}
	return strings.Join(fields, "\t")
}

// Conllu serializes the document in CoNLL-U format, one block per
// sentence with a trailing blank line.
func (d *Document) Conllu() string {
	var b strings.Builder
	for _, sent := range d.Sentences {
		if sent.Text != "" {
			b.WriteString("# text = ")
			b.WriteString(sent.Text)
			b.WriteByte('\n')
		}
		for _, w := range sent.Words {
			b.WriteString(w.ConlluLine())
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
