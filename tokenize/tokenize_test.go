package tokenize

import (
	"reflect"
	"strings"
	"testing"
)

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "latin",
			in:   "Men eve gittim.",
			want: []string{"Men", "eve", "gittim"},
		},
		{
			name: "cyrillic",
			in:   "Ол алма жеді.",
			want: []string{"Ол", "алма", "жеді"},
		},
		{
			name: "arabic script",
			in:   "ئۇ ئالما يەيدۇ.",
			want: []string{"ئۇ", "ئالما", "يەيدۇ"},
		},
		{
			name: "apostrophe clitic stays attached",
			in:   "Ankara'da yaşıyor",
			want: []string{"Ankara'da", "yaşıyor"},
		},
		{
			name: "curly apostrophe",
			in:   "İzmir’den geldi",
			want: []string{"İzmir’den", "geldi"},
		},
		{
			name: "uzbek okina",
			in:   "oʻzbek tili",
			want: []string{"oʻzbek", "tili"},
		},
		{
			name: "hyphenated reduplication",
			in:   "yavaş-yavaş yürüdü",
			want: []string{"yavaş-yavaş", "yürüdü"},
		},
		{
			name: "double hyphen splits",
			in:   "bir--iki",
			want: []string{"bir", "iki"},
		},
		{
			name: "numbers excluded",
			in:   "saat 12.300 kişi",
			want: []string{"saat", "kişi"},
		},
		{
			name: "trailing apostrophe not joined",
			in:   "dedi' o",
			want: []string{"dedi", "o"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Words(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordTokensOffsets(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Ол алма жеді.",
		"Ankara'da 12,5 km. -- tamam!",
		"ئالما ١٢ دانە؟",
		"a b\tc\n\nd",
	}
	for _, in := range inputs {
		tokens := WordTokens(in)
		var b strings.Builder
		for _, tok := range tokens {
			if in[tok.Start:tok.End] != tok.Text {
				t.Errorf("%q: offset invariant broken for %v", in, tok)
			}
			b.WriteString(tok.Text)
		}
		if b.String() != in {
			t.Errorf("%q: concatenation = %q", in, b.String())
		}
	}
}

func TestWordTokensTypes(t *testing.T) {
	t.Parallel()

	tokens := WordTokens("алма, 12,5 km!")
	var types []TokenType
	for _, tok := range tokens {
		if tok.Type != Space {
			types = append(types, tok.Type)
		}
	}
	want := []TokenType{Word, Punctuation, Number, Word, Punctuation}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("types = %v, want %v", types, want)
	}
}

func TestScanNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"42 kişi", "42"},
		{"12.300 kişi", "12.300"},
		{"12,5 km", "12,5"},
		{"1.234.567,89 soʻm", "1.234.567,89"},
		{"12.34 x", "12"},
		{"١٢٣ دانە", "١٢٣"},
	}
	for _, tt := range tests {
		got := scanNumber(tt.in, 0)
		if got.Text != tt.want {
			t.Errorf("scanNumber(%q) = %q, want %q", tt.in, got.Text, tt.want)
		}
	}
}

func TestSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "two sentences",
			in:   "Ол келді. Алма жеді.",
			want: []string{"Ол келді.", " Алма жеді."},
		},
		{
			name: "question and exclamation cluster",
			in:   "Керек пе?! Жоқ.",
			want: []string{"Керек пе?!", " Жоқ."},
		},
		{
			name: "no break before lowercase",
			in:   "saat 5.30 civarı geldi.",
			want: []string{"saat 5.30 civarı geldi."},
		},
		{
			name: "abbreviation suppressed",
			in:   "Dr. Ahmet geldi. Sonra gitti.",
			want: []string{"Dr. Ahmet geldi.", " Sonra gitti."},
		},
		{
			name: "multi-part cyrillic abbreviation",
			in:   "Алма, өрік т.б. Бәрі пісті.",
			want: []string{"Алма, өрік т.б. Бәрі пісті."},
		},
		{
			name: "arabic question mark breaks on caseless letter",
			in:   "ئالما بارمۇ؟ بار.",
			want: []string{"ئالما بارمۇ؟", " بار."},
		},
		{
			name: "double newline",
			in:   "Birinci satır\n\nikinci satır",
			want: []string{"Birinci satır\n\n", "ikinci satır"},
		},
		{
			name: "ellipsis before uppercase",
			in:   "Bilmiyorum... Belki.",
			want: []string{"Bilmiyorum...", " Belki."},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sentences(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSentenceTokensCoverInput(t *testing.T) {
	t.Parallel()

	in := "Проф. Ахметов келді. Ол сөйледі?! Бітті...\n\nЖаңа бөлім."
	var b strings.Builder
	for _, tok := range SentenceTokens(in) {
		if tok.Type != Sentence {
			t.Errorf("token %v is not a sentence", tok)
		}
		if in[tok.Start:tok.End] != tok.Text {
			t.Errorf("offset invariant broken for %v", tok)
		}
		b.WriteString(tok.Text)
	}
	if b.String() != in {
		t.Errorf("concatenation = %q, want the input back", b.String())
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()
	tok := Token{Text: "alma", Start: 0, End: 4, Type: Word}
	if got := tok.String(); got != `Word("alma")[0:4]` {
		t.Errorf("String() = %q", got)
	}
	if got := TokenType(99).String(); got != "TokenType(99)" {
		t.Errorf("TokenType(99).String() = %q", got)
	}
}
