package tagmap

import "testing"

func TestUPOS(t *testing.T) {
	t.Parallel()
	m := ForLanguage("kaz")
	tests := []struct {
		tag  string
		want string
	}{
		{"n", "NOUN"},
		{"np", "PROPN"},
		{"v", "VERB"},
		{"vaux", "AUX"},
		{"adj", "ADJ"},
		{"post", "ADP"},
		{"cnjcoo", "CCONJ"},
		{"zzz", UnknownPOS},
		{"", UnknownPOS},
	}
	for _, tt := range tests {
		tt := tt
		if got := m.UPOS(tt.tag); got != tt.want {
			t.Errorf("UPOS(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestFeats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		lang string
		tags []string
		want string
	}{
		{
			name: "sorted alphabetically regardless of source order",
			lang: "kaz",
			tags: []string{"pl", "dat"},
			want: "Case=Dat|Number=Plur",
		},
		{
			name: "unknown tags dropped",
			lang: "kaz",
			tags: []string{"dat", "mystery", "sg"},
			want: "Case=Dat|Number=Sing",
		},
		{
			name: "all unknown yields sentinel",
			lang: "kaz",
			tags: []string{"mystery", "enigma"},
			want: EmptyFeats,
		},
		{
			name: "empty yields sentinel",
			lang: "kaz",
			tags: nil,
			want: EmptyFeats,
		},
		{
			name: "possession compound",
			lang: "kaz",
			tags: []string{"px1sg", "nom"},
			want: "Case=Nom|Number[psor]=Sing|Person[psor]=1",
		},
		{
			name: "turkmen evidential",
			lang: "tuk",
			tags: []string{"ifi", "p3"},
			want: "Evident=Nfh|Person=3",
		},
		{
			name: "unknown language falls back to common map",
			lang: "xyz",
			tags: []string{"dat", "pl"},
			want: "Case=Dat|Number=Plur",
		},
		{
			name: "interrogative pronoun tag variants",
			lang: "uig",
			tags: []string{"int"},
			want: "PronType=Int",
		},
		{
			name: "gender tags",
			lang: "xyz",
			tags: []string{"f", "sg"},
			want: "Gender=Fem|Number=Sing",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := ForLanguage(tt.lang)
			if got := m.Feats(tt.tags); got != tt.want {
				t.Errorf("Feats(%v) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}

func TestCleanFeats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		upos  string
		feats string
		want  string
	}{
		{
			name:  "proper noun keeps case drops person and tense",
			upos:  "PROPN",
			feats: "Case=Nom|Person=3|Tense=Aor",
			want:  "Case=Nom",
		},
		{
			name:  "noun drops tense",
			upos:  "NOUN",
			feats: "Case=Dat|Number=Sing|Tense=Past",
			want:  "Case=Dat|Number=Sing",
		},
		{
			name:  "verb keeps verbal features",
			upos:  "VERB",
			feats: "Mood=Ind|Person=3|Tense=Past",
			want:  "Mood=Ind|Person=3|Tense=Past",
		},
		{
			name:  "everything stripped yields sentinel",
			upos:  "ADV",
			feats: "Case=Dat|Tense=Past",
			want:  EmptyFeats,
		},
		{
			name:  "unlisted upos passes through",
			upos:  "X",
			feats: "Case=Dat|Tense=Past",
			want:  "Case=Dat|Tense=Past",
		},
		{
			name:  "sentinel in sentinel out",
			upos:  "NOUN",
			feats: EmptyFeats,
			want:  EmptyFeats,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanFeats(tt.upos, tt.feats); got != tt.want {
				t.Errorf("CleanFeats(%q, %q) = %q, want %q", tt.upos, tt.feats, got, tt.want)
			}
		})
	}
}
