package morph

import (
	"strings"
	"testing"

	"github.com/turkic-nlp/turkicnlp/data"
)

func TestParseLexicon(t *testing.T) {
	t.Parallel()
	lex, err := ParseLexicon([]byte(`{
		"lang": "tur",
		"entries": [
			{"type": "adverb_degree", "upos": "ADV", "feats": "", "lemma_strategy": "lower", "forms": ["Çok", "az"]},
			{"type": "particle_question", "upos": "PART", "feats": "PartType=Int", "lemma_strategy": "lower", "forms": ["mı"]}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if lex.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lex.Len())
	}

	// Forms are lowercased Turkic-style on load: Ç -> ç.
	entries := lex.Lookup("çok")
	if len(entries) != 1 || entries[0].UPOS != "ADV" || entries[0].Feats != "_" {
		t.Errorf("Lookup(çok) = %+v, want one ADV entry with sentinel feats", entries)
	}

	if !lex.HasUPOS("mı", "PART") {
		t.Error("HasUPOS(mı, PART) = false, want true")
	}
	if lex.HasUPOS("mı", "ADV") {
		t.Error("HasUPOS(mı, ADV) = true, want false")
	}
	if lex.Lookup("yok") != nil {
		t.Error("Lookup(yok) must be nil for an absent form")
	}
}

func TestParseLexiconBadJSON(t *testing.T) {
	t.Parallel()
	if _, err := ParseLexicon([]byte("{")); err == nil {
		t.Error("malformed JSON must be an error")
	}
}

func TestNilLexicon(t *testing.T) {
	t.Parallel()
	var lex *Lexicon
	if lex.Lookup("çok") != nil || lex.HasUPOS("çok", "ADV") || lex.Len() != 0 {
		t.Error("nil lexicon must behave as empty")
	}
}

func TestLoadLexicon(t *testing.T) {
	t.Parallel()
	for _, lang := range data.Languages() {
		lex, ok := LoadLexicon(lang)
		if !ok {
			t.Errorf("LoadLexicon(%s): embedded lexicon missing", lang)
			continue
		}
		if lex.Len() == 0 {
			t.Errorf("LoadLexicon(%s): empty lexicon", lang)
		}
	}
	if _, ok := LoadLexicon("xyz"); ok {
		t.Error("LoadLexicon(xyz) = ok, want false")
	}
}

func TestReadTableLookup(t *testing.T) {
	t.Parallel()
	table, err := ReadTableLookup(strings.NewReader(
		"# surface\tanalysis\tweight\n" +
			"алма\tалма<n><nom><sg>\t1.0\n" +
			"алма\tал<v><neg><imp><p2><sg>\t2.5\n" +
			"\n" +
			"алды\tал<v><past><p3>\n"))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}

	got, err := table.Lookup("алма")
	if err != nil || len(got) != 2 {
		t.Fatalf("Lookup(алма) = %v, %v; want 2 analyses", got, err)
	}
	if got[0].Weight != 1.0 || got[1].Weight != 2.5 {
		t.Errorf("weights = %v, %v; want 1.0, 2.5", got[0].Weight, got[1].Weight)
	}

	// The weight column defaults to zero when absent.
	got, _ = table.Lookup("алды")
	if len(got) != 1 || got[0].Weight != 0 {
		t.Errorf("Lookup(алды) = %v, want one zero-weight analysis", got)
	}
}

func TestReadTableLookupErrors(t *testing.T) {
	t.Parallel()
	if _, err := ReadTableLookup(strings.NewReader("oneFieldOnly\n")); err == nil {
		t.Error("a line without tabs must be an error")
	}
	if _, err := ReadTableLookup(strings.NewReader("a\tb\tnotanumber\n")); err == nil {
		t.Error("a bad weight must be an error")
	}
}
