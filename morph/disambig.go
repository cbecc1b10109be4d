package morph

import (
	"sort"
	"strings"
	"unicode"

	"github.com/turkic-nlp/turkicnlp/doc"
	"github.com/turkic-nlp/turkicnlp/internal/turkcase"
	"github.com/turkic-nlp/turkicnlp/normalize"
	"github.com/turkic-nlp/turkicnlp/tagmap"
	"github.com/turkic-nlp/turkicnlp/translit"
)

// Context score adjustments. Turkic clauses are verb-final, so
// sentence position carries real signal about part of speech. The
// values are hand-tuned starting heuristics.
const (
	finalVerbBonus          = 3  // sentence-final verb or auxiliary
	finalNominalPenalty     = -2 // sentence-final noun or proper noun
	finalFiniteBonus        = 1  // finite tense in final position
	nonFinalFinitePenalty   = -2 // finite verb away from the clause end
	verbalOnNominalPenalty  = -3 // nominal reading carrying verbal features
	caseOnVerbPenalty       = -1 // case on a verb without a participle marker
	midCapProperBonus       = 1  // capitalized mid-sentence, proper-noun reading
	midCapImperativePenalty = -2 // capitalized mid-sentence, imperative reading
	lexiconAgreementBonus   = 2  // lexicon records this POS for the surface
)

// posPriority orders source-tagset POS categories for tie-breaking
// when weight and context score are equal. Lower wins.
var posPriority = map[string]int{
	"v":     0,
	"vblex": 0,
	"vaux":  1,
	"vbser": 1,
	"cop":   1,
	"n":     2,
	"np":    3,
	"adj":   4,
	"adv":   5,
	"prn":   6,
	"det":   7,
}

const defaultPriority = 8

func priorityOf(pos string) int {
	if p, ok := posPriority[pos]; ok {
		return p
	}
	return defaultPriority
}

var (
	verbPOS    = set("v", "vblex", "vaux", "vbser", "cop")
	nominalPOS = set("n", "np", "adj", "prn", "det", "num")

	finiteTenseTags = set("past", "pres", "fut", "fut2", "aor", "ifi", "pret", "npst", "pst")
	finiteMoodTags  = set("imp", "cond", "opt", "nec", "des")

	caseTags = set("nom", "acc", "dat", "gen", "loc", "abl", "ins",
		"com", "abe", "equ", "sim", "ben", "all", "prl", "ter", "par")

	// verbalTags marks tense, mood, aspect, voice, and non-finite
	// verb morphology. A nominal reading carrying one of these is a
	// parse artifact. refl is not here: it marks reflexive pronouns
	// (Reflex=Yes), not the rfl voice.
	verbalTags = set("past", "pres", "fut", "fut2", "aor", "ifi", "pret", "npst", "pst",
		"imp", "cond", "opt", "nec", "des",
		"perf", "impf", "prog", "hab", "evid",
		"pass", "caus", "rcp", "rfl", "coop",
		"inf", "ger", "prc", "gna", "gpr")
)

// nonFinitePrefixes covers participle and converb tag families that
// appear with subcategory suffixes in the source tagset.
var nonFinitePrefixes = []string{"prc_", "gna_", "gpr_", "ger_"}

func set(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}

func isVerbalTag(tag string) bool {
	if verbalTags[tag] {
		return true
	}
	for _, p := range nonFinitePrefixes {
		if strings.HasPrefix(tag, p) {
			return true
		}
	}
	return false
}

func isParticipleTag(tag string) bool {
	if tag == "prc" || tag == "gpr" || tag == "ger" {
		return true
	}
	for _, p := range nonFinitePrefixes {
		if strings.HasPrefix(tag, p) {
			return true
		}
	}
	return false
}

// questionParticles is the closed set of interrogative particle forms
// across the language family, one entry per vowel-harmony variant.
var questionParticles = set(
	"mı", "mi", "mu", "mü", "my", // Latin-script Oghuz, Uzbek, Turkmen
	"ма", "ме", "мы", "мө", "мү", "би", "бы", "бу", "бү", // Kipchak Cyrillic
	"ба", "бе", "па", "пе", "пы", "пи", "пу", "пү",
	"مۇ", // Uyghur
)

// IsQuestionParticle reports whether a token is an interrogative
// particle in any supported language, ignoring case and a trailing
// question mark.
func IsQuestionParticle(text string) bool {
	t := turkcase.ToLower(strings.TrimSuffix(normalize.Fold(text), "?"))
	return questionParticles[t]
}

// Disambiguator picks one Reading from a candidate list using weight,
// sentence position, and closed-class lexicon agreement. Read-only
// after construction; safe for concurrent use.
type Disambiguator struct {
	mapper *tagmap.Mapper
	lex    *Lexicon                 // may be nil
	bridge *translit.Transliterator // caller script -> FST script, may be nil
}

// NewDisambiguator builds a disambiguator for a language, loading its
// embedded lexicon when one ships. bridge, when non-nil, is used to
// transliterate surface forms into the transducer's script before the
// lexicon agreement check.
func NewDisambiguator(lang string, bridge *translit.Transliterator) *Disambiguator {
	lex, _ := LoadLexicon(lang)
	return &Disambiguator{
		mapper: tagmap.ForLanguage(lang),
		lex:    lex,
		bridge: bridge,
	}
}

// Choose selects the best reading. sent and idx give the word's
// sentence context; surface is its original text. The choice is
// deterministic for identical inputs. An empty candidate list returns
// a zero Reading.
func (d *Disambiguator) Choose(readings []Reading, sent []*doc.Word, idx int, surface string) Reading {
	if len(readings) == 0 {
		return Reading{}
	}
	if len(readings) == 1 {
		return readings[0]
	}

	scores := make([]int, len(readings))
	for i := range readings {
		scores[i] = d.contextScore(&readings[i], sent, idx, surface)
	}

	order := make([]int, len(readings))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := &readings[order[a]], &readings[order[b]]
		if ra.Weight != rb.Weight {
			return ra.Weight < rb.Weight
		}
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		pa, pb := priorityOf(ra.POS), priorityOf(rb.POS)
		if pa != pb {
			return pa < pb
		}
		return len(ra.Feats) < len(rb.Feats)
	})
	return readings[order[0]]
}

func (d *Disambiguator) contextScore(r *Reading, sent []*doc.Word, idx int, surface string) int {
	score := 0

	isVerb := verbPOS[r.POS]
	finiteTense := false
	finiteMood := false
	hasCase := false
	participle := false
	verbal := false
	for _, f := range r.Feats {
		if finiteTenseTags[f] {
			finiteTense = true
		}
		if finiteMoodTags[f] {
			finiteMood = true
		}
		if caseTags[f] {
			hasCase = true
		}
		if isParticipleTag(f) {
			participle = true
		}
		if isVerbalTag(f) {
			verbal = true
		}
	}

	if sentenceFinal(sent, idx) {
		if isVerb {
			score += finalVerbBonus
		}
		if r.POS == "n" || r.POS == "np" {
			score += finalNominalPenalty
		}
		if finiteTense {
			score += finalFiniteBonus
		}
	} else if isVerb && (finiteTense || finiteMood) && !nextIsQuestionParticle(sent, idx) {
		score += nonFinalFinitePenalty
	}

	if nominalPOS[r.POS] && verbal {
		score += verbalOnNominalPenalty
	}
	if isVerb && hasCase && !participle {
		score += caseOnVerbPenalty
	}

	if capitalized(surface) && !sentenceInitial(sent, idx) {
		if r.POS == "np" {
			score += midCapProperBonus
		}
		if isVerb && r.HasFeat("imp") {
			score += midCapImperativePenalty
		}
	}

	if d.lexiconAgrees(r, surface) {
		score += lexiconAgreementBonus
	}
	return score
}

// lexiconAgrees reports whether the closed-class lexicon records the
// reading's universal POS for this surface form, checked under
// case/diacritic normalization and, when the pipeline bridges scripts,
// under transliteration to the transducer's script.
func (d *Disambiguator) lexiconAgrees(r *Reading, surface string) bool {
	if d.lex == nil {
		return false
	}
	upos := d.mapper.UPOS(r.POS)
	folded := turkcase.ToLower(normalize.Fold(surface))
	if d.lex.HasUPOS(folded, upos) {
		return true
	}
	if d.lex.HasUPOS(turkcase.ToLower(normalize.StripDiacritics(folded)), upos) {
		return true
	}
	if d.bridge != nil {
		if d.lex.HasUPOS(turkcase.ToLower(d.bridge.Transliterate(folded)), upos) {
			return true
		}
	}
	return false
}

func capitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// wordIsPunct reports whether a word consists entirely of punctuation
// or symbol characters.
func wordIsPunct(w *doc.Word) bool {
	if w.Text == "" {
		return false
	}
	for _, r := range w.Text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// sentenceFinal reports whether idx is the last non-punctuation
// position in the sentence.
func sentenceFinal(sent []*doc.Word, idx int) bool {
	for i := len(sent) - 1; i > idx; i-- {
		if !wordIsPunct(sent[i]) {
			return false
		}
	}
	return idx >= 0 && idx < len(sent)
}

// sentenceInitial reports whether idx is the first non-punctuation
// position in the sentence.
func sentenceInitial(sent []*doc.Word, idx int) bool {
	for i := 0; i < idx && i < len(sent); i++ {
		if !wordIsPunct(sent[i]) {
			return false
		}
	}
	return idx >= 0 && idx < len(sent)
}

func nextIsQuestionParticle(sent []*doc.Word, idx int) bool {
	for i := idx + 1; i < len(sent); i++ {
		if wordIsPunct(sent[i]) {
			continue
		}
		return IsQuestionParticle(sent[i].Text)
	}
	return false
}
