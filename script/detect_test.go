package script

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want Script
	}{
		{
			name: "turkish latin",
			in:   "Bugün hava çok güzel, değil mi?",
			want: Latin,
		},
		{
			name: "kazakh cyrillic",
			in:   "Қазақстан Республикасының астанасы",
			want: Cyrillic,
		},
		{
			name: "uyghur arabic",
			in:   "مەن ئۇيغۇرچە سۆزلەيمەن",
			want: PersoArabic,
		},
		{
			name: "old turkic runes",
			in:   "𐰜𐰇𐰚 𐱅𐰇𐰼𐰰",
			want: OldTurkicRunic,
		},
		{
			name: "mixed majority cyrillic",
			in:   "Алматы қаласы (Almaty)",
			want: Cyrillic,
		},
		{
			name: "tie broken by first encountered",
			in:   "abc где",
			want: Latin,
		},
		{
			name: "digits and punctuation ignored",
			in:   "123 !!! сөз",
			want: Cyrillic,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Detect(tt.in)
			if err != nil {
				t.Fatalf("Detect(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectNoScript(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "123", "... !?", "12.5 + 3"} {
		_, err := Detect(in)
		if !errors.Is(err, ErrNoScript) {
			t.Errorf("Detect(%q): err = %v, want ErrNoScript", in, err)
		}
	}
}

func TestDetectSegments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "single run",
			in:   "salam",
			want: []Segment{{Text: "salam", Script: Latin}},
		},
		{
			name: "script switch",
			in:   "almaАлма",
			want: []Segment{
				{Text: "alma", Script: Latin},
				{Text: "Алма", Script: Cyrillic},
			},
		},
		{
			name: "neutrals extend preceding run",
			in:   "alma, алма",
			want: []Segment{
				{Text: "alma, ", Script: Latin},
				{Text: "алма", Script: Cyrillic},
			},
		},
		{
			name: "all neutral",
			in:   "12, 34!",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DetectSegments(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectSegments(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScriptJSON(t *testing.T) {
	t.Parallel()
	for _, sc := range []Script{Latin, Cyrillic, PersoArabic, OldTurkicRunic} {
		b, err := json.Marshal(sc)
		if err != nil {
			t.Fatalf("Marshal(%s): %v", sc, err)
		}
		var back Script
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", b, err)
		}
		if back != sc {
			t.Errorf("round trip: got %s, want %s", back, sc)
		}
	}

	var sc Script
	if err := json.Unmarshal([]byte(`"Xxxx"`), &sc); err == nil {
		t.Error("Unmarshal of unknown code: want error, got nil")
	}
}

func TestConfigFor(t *testing.T) {
	t.Parallel()

	cfg, err := ConfigFor("kaz")
	if err != nil {
		t.Fatalf("ConfigFor(kaz): %v", err)
	}
	if cfg.Primary != Cyrillic {
		t.Errorf("kaz primary = %s, want Cyrillic", cfg.Primary)
	}
	if cfg.FSTScript != Cyrillic {
		t.Errorf("kaz FST script = %s, want Cyrillic (primary default)", cfg.FSTScript)
	}
	if cfg.Direction != "ltr" {
		t.Errorf("kaz direction = %q, want ltr", cfg.Direction)
	}

	cfg, err = ConfigFor("uig")
	if err != nil {
		t.Fatalf("ConfigFor(uig): %v", err)
	}
	if cfg.Direction != "rtl" {
		t.Errorf("uig direction = %q, want rtl", cfg.Direction)
	}

	if _, err := ConfigFor("xyz"); err == nil {
		t.Error("ConfigFor(xyz): want error, got nil")
	}

	if got := len(Languages()); got != 23 {
		t.Errorf("Languages() has %d entries, want 23", got)
	}
}
