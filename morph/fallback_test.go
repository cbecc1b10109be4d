package morph

import "testing"

func TestFallback(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("tur", nil)

	tests := []struct {
		name    string
		surface string
		sent    []string
		idx     int
		lemma   string
		upos    string
		feats   string
	}{
		{
			name:    "integer",
			surface: "42",
			sent:    []string{"42", "elma"},
			idx:     0,
			lemma:   "42", upos: "NUM", feats: "NumType=Card",
		},
		{
			name:    "decimal with separators",
			surface: "12.345,67",
			sent:    []string{"12.345,67"},
			idx:     0,
			lemma:   "12.345,67", upos: "NUM", feats: "NumType=Card",
		},
		{
			name:    "apostrophe clitic on proper noun",
			surface: "Ankara'da",
			sent:    []string{"Ankara'da", "yaşıyor"},
			idx:     0,
			lemma:   "Ankara", upos: "PROPN", feats: "_",
		},
		{
			name:    "curly apostrophe folded before the cut",
			surface: "İzmir’den",
			sent:    []string{"İzmir’den", "geldi"},
			idx:     0,
			lemma:   "İzmir", upos: "PROPN", feats: "_",
		},
		{
			name:    "reduplicated adverb",
			surface: "yavaş-yavaş",
			sent:    []string{"yavaş-yavaş", "yürüdü"},
			idx:     0,
			lemma:   "yavaş", upos: "ADV", feats: "_",
		},
		{
			name:    "reduplication is case-insensitive",
			surface: "Yavaş-yavaş",
			sent:    []string{"Yavaş-yavaş", "yürüdü"},
			idx:     0,
			lemma:   "yavaş", upos: "ADV", feats: "_",
		},
		{
			name:    "capitalized mid-sentence",
			surface: "Qaraqalpaq",
			sent:    []string{"o", "Qaraqalpaq", "bilmiyor"},
			idx:     1,
			lemma:   "Qaraqalpaq", upos: "PROPN", feats: "_",
		},
		{
			name:    "closed-class lexicon entry",
			surface: "bile",
			sent:    []string{"geldi", "bile"},
			idx:     1,
			lemma:   "bile", upos: "PART", feats: "PartType=Add",
		},
		{
			name:    "lexicon lookup lowercases",
			surface: "Bile",
			sent:    []string{"Bile", "geldi"},
			idx:     0,
			lemma:   "bile", upos: "PART", feats: "PartType=Add",
		},
		{
			name:    "unknown token",
			surface: "zzzq",
			sent:    []string{"zzzq"},
			idx:     0,
			lemma:   "zzzq", upos: "X", feats: "_",
		},
		{
			name:    "capitalized sentence-initial unknown",
			surface: "Zzzq",
			sent:    []string{"Zzzq", "geldi"},
			idx:     0,
			lemma:   "Zzzq", upos: "X", feats: "_",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lemma, upos, feats := d.Fallback(tt.surface, words(tt.sent...), tt.idx)
			if lemma != tt.lemma || upos != tt.upos || feats != tt.feats {
				t.Errorf("Fallback(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.surface, lemma, upos, feats, tt.lemma, tt.upos, tt.feats)
			}
		})
	}
}

func TestIsNumericToken(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"7", "3,5", "-12", "50%", "1/2", "12:30", "١٢"} {
		if !isNumericToken(in) {
			t.Errorf("isNumericToken(%q) = false, want true", in)
		}
	}
	for _, in := range []string{"", "-", "..", "a1", "on"} {
		if isNumericToken(in) {
			t.Errorf("isNumericToken(%q) = true, want false", in)
		}
	}
}
