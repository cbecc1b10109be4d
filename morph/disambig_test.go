package morph

import (
	"reflect"
	"testing"

	"github.com/turkic-nlp/turkicnlp/doc"
)

func words(texts ...string) []*doc.Word {
	out := make([]*doc.Word, len(texts))
	for i, t := range texts {
		out[i] = &doc.Word{ID: i + 1, Text: t}
	}
	return out
}

func TestChooseWeightWins(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{
		{Lemma: "ал", POS: "v", Feats: []string{"past"}, Weight: 2.0},
		{Lemma: "алма", POS: "n", Feats: []string{"nom"}, Weight: 0.5},
	}
	sent := words("ол", "алма", "жеді")
	got := d.Choose(readings, sent, 1, "алма")
	if got.POS != "n" {
		t.Errorf("lowest weight must win regardless of POS priority, got %s", got.POS)
	}
}

func TestChooseSingleReading(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{{Lemma: "алма", POS: "n", Weight: 1.0}}
	if got := d.Choose(readings, words("алма"), 0, "алма"); got.Lemma != "алма" {
		t.Errorf("single reading must be returned as is, got %+v", got)
	}
}

func TestChooseSentenceFinalVerb(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{
		{Lemma: "алма", POS: "n", Feats: []string{"nom", "sg"}, Weight: 1.0},
		{Lemma: "ал", POS: "v", Feats: []string{"past", "p3"}, Weight: 1.0},
	}

	// Final position, trailing punctuation ignored: the verb wins.
	sent := words("ол", "кітапты", "алды", ".")
	if got := d.Choose(readings, sent, 2, "алды"); got.POS != "v" {
		t.Errorf("sentence-final position must prefer the verb, got %s", got.POS)
	}

	// Non-final position with no question particle: the noun wins.
	sent = words("алды", "кітапты", "ол")
	if got := d.Choose(readings, sent, 0, "алды"); got.POS != "n" {
		t.Errorf("non-final position must prefer the noun, got %s", got.POS)
	}
}

func TestChooseQuestionParticleException(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{
		{Lemma: "алма", POS: "n", Feats: []string{"nom", "sg"}, Weight: 1.0},
		{Lemma: "ал", POS: "v", Feats: []string{"past", "p3"}, Weight: 1.0},
	}

	// A question particle follows, so the finite-verb penalty is
	// waived and POS priority breaks the tie toward the verb.
	sent := words("сен", "алды", "ма", "?")
	if got := d.Choose(readings, sent, 1, "алды"); got.POS != "v" {
		t.Errorf("verb before question particle must win, got %s", got.POS)
	}
}

func TestChoosePOSPriorityTieBreak(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{
		{Lemma: "бар", POS: "adj", Weight: 1.0},
		{Lemma: "бар", POS: "n", Weight: 1.0},
	}
	sent := words("бар", "нәрсе", "осы")
	if got := d.Choose(readings, sent, 0, "бар"); got.POS != "n" {
		t.Errorf("POS priority must rank noun above adjective, got %s", got.POS)
	}
}

func TestChooseFewerFeatsTieBreak(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{
		{Lemma: "алма", POS: "n", Feats: []string{"nom", "sg", "px3sp"}, Weight: 1.0},
		{Lemma: "алма", POS: "n", Feats: []string{"nom", "sg"}, Weight: 1.0},
	}
	sent := words("алма", "тәтті")
	got := d.Choose(readings, sent, 0, "алма")
	if len(got.Feats) != 2 {
		t.Errorf("fewer features must win the final tie-break, got %v", got.Feats)
	}
}

func TestChooseVerbalFeatsOnNominalPenalized(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)

	// Tense and voice tags alike mark the nominal as a parse artifact.
	for _, verbal := range []string{"past", "rfl", "rcp"} {
		readings := []Reading{
			{Lemma: "алма", POS: "n", Feats: []string{"nom", verbal}, Weight: 1.0},
			{Lemma: "алма", POS: "adj", Feats: []string{"nom"}, Weight: 1.0},
		}
		sent := words("алма", "тәтті")
		if got := d.Choose(readings, sent, 0, "алма"); got.POS != "adj" {
			t.Errorf("nominal with %s must lose, got %s %v", verbal, got.POS, got.Feats)
		}
	}
}

func TestChooseReflexivePronounNotPenalized(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("tur", nil)
	readings := []Reading{
		{Lemma: "kendi", POS: "prn", Feats: []string{"refl"}, Weight: 1.0},
		{Lemma: "kendi", POS: "n", Feats: []string{"nom"}, Weight: 1.0},
	}
	// refl is Reflex=Yes on a pronoun, not a voice tag; the lexicon
	// records kendi as a pronoun, which outweighs the noun's higher
	// POS priority.
	sent := words("o", "kendi", "geldi")
	if got := d.Choose(readings, sent, 1, "kendi"); got.POS != "prn" {
		t.Errorf("reflexive pronoun must win, got %s %v", got.POS, got.Feats)
	}
}

func TestChooseFinalFiniteBonusIsTenseOnly(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	// Listed first so a scoring tie would keep the imperative; only a
	// finite tense earns the extra point in final position.
	readings := []Reading{
		{Lemma: "ал", POS: "v", Feats: []string{"imp"}, Weight: 1.0},
		{Lemma: "ал", POS: "v", Feats: []string{"past"}, Weight: 1.0},
	}
	sent := words("оны", "алды")
	if got := d.Choose(readings, sent, 1, "алды"); !got.HasFeat("past") {
		t.Errorf("finite tense must outrank finite mood sentence-finally, got %v", got.Feats)
	}
}

func TestChooseMidSentenceCapitalization(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{
		{Lemma: "алма", POS: "n", Feats: []string{"nom"}, Weight: 1.0},
		{Lemma: "Алма", POS: "np", Feats: []string{"nom"}, Weight: 1.0},
	}

	// Mid-sentence capitalization favors the proper noun.
	sent := words("кеше", "Алма", "келді")
	if got := d.Choose(readings, sent, 1, "Алма"); got.POS != "np" {
		t.Errorf("capitalized mid-sentence must prefer the proper noun, got %s", got.POS)
	}

	// Sentence-initially capitalization carries no signal and the
	// common noun wins on POS priority.
	sent = words("Алма", "тәтті", "еді")
	if got := d.Choose(readings, sent, 0, "Алма"); got.POS != "n" {
		t.Errorf("sentence-initial capitalization must not add the proper-noun bonus, got %s", got.POS)
	}
}

func TestChooseLexiconAgreement(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{
		{Lemma: "өте", POS: "n", Feats: []string{"nom"}, Weight: 1.0},
		{Lemma: "өте", POS: "adv", Weight: 1.0},
	}
	// The degree adverb өте is in the Kazakh lexicon, outweighing the
	// noun's higher POS priority.
	sent := words("ол", "өте", "жақсы")
	if got := d.Choose(readings, sent, 1, "өте"); got.POS != "adv" {
		t.Errorf("lexicon agreement must prefer the adverb, got %s", got.POS)
	}
}

func TestChooseDeterminism(t *testing.T) {
	t.Parallel()
	d := NewDisambiguator("kaz", nil)
	readings := []Reading{
		{Lemma: "ал", POS: "v", Feats: []string{"past"}, Weight: 1.0},
		{Lemma: "алма", POS: "n", Feats: []string{"nom"}, Weight: 1.0},
		{Lemma: "алма", POS: "adj", Feats: []string{"nom"}, Weight: 1.0},
	}
	sent := words("ол", "алма", "жеді")
	first := d.Choose(readings, sent, 1, "алма")
	for i := 0; i < 20; i++ {
		if got := d.Choose(readings, sent, 1, "алма"); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestIsQuestionParticle(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"ма", "ме", "mi", "mı", "мү", "Ма", "ма?"} {
		if !IsQuestionParticle(in) {
			t.Errorf("IsQuestionParticle(%q) = false, want true", in)
		}
	}
	for _, in := range []string{"алма", "m", "", "мама"} {
		if IsQuestionParticle(in) {
			t.Errorf("IsQuestionParticle(%q) = true, want false", in)
		}
	}
}
