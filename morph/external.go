package morph

import (
	"fmt"
	"log"
	"os/exec"
	"regexp"
	"strings"

	"github.com/turkic-nlp/turkicnlp/doc"
)

// ExternalTagger routes disambiguation through an external tagger
// process speaking the two-level analysis stream format: one
// ^surface/analysis1/analysis2$ token per word, space-joined per
// sentence on stdin, one ^analysis$ token per word on stdout.
//
// The tagger is advisory. Its output is only accepted for a word when
// it matches one of that word's pre-existing candidates exactly; an
// unmatched token, a mismatched token count, or a process failure
// hands that word (or the whole sentence) back to the in-process
// heuristic, logged at low severity and never surfaced to the caller.
type ExternalTagger struct {
	path string
	args []string

	// run executes the process; replaceable in tests.
	run func(input string) (string, error)
}

// NewExternalTagger configures a tagger subprocess invocation.
func NewExternalTagger(path string, args ...string) *ExternalTagger {
	t := &ExternalTagger{path: path, args: args}
	t.run = t.execute
	return t
}

func (t *ExternalTagger) execute(input string) (string, error) {
	cmd := exec.Command(t.path, t.args...)
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// streamToken matches one ^...$ unit in the tagger's output.
var streamToken = regexp.MustCompile(`\^([^$^]*)\$`)

// Tag runs the subprocess over one sentence and returns, per word,
// the candidate it selected or nil where the in-process heuristic
// should decide. The slice is always len(words) long; a total failure
// returns all-nil.
func (t *ExternalTagger) Tag(words []*doc.Word, cands [][]Reading) []*Reading {
	chosen := make([]*Reading, len(words))

	input := t.stream(words, cands)
	out, err := t.run(input)
	if err != nil {
		log.Printf("morph: external tagger %s failed, using heuristic: %v", t.path, err)
		return chosen
	}

	tokens := streamToken.FindAllStringSubmatch(out, -1)
	if len(tokens) != len(words) {
		log.Printf("morph: external tagger %s returned %d tokens for %d words, using heuristic", t.path, len(tokens), len(words))
		return chosen
	}

	for i, tok := range tokens {
		if len(cands[i]) == 0 {
			continue
		}
		r, ok := ParseReading(tok[1], 0)
		if !ok {
			continue
		}
		chosen[i] = matchCandidate(cands[i], r)
	}
	return chosen
}

// stream renders the sentence in the input format. Words without
// candidates are sent as unknowns (*surface).
func (t *ExternalTagger) stream(words []*doc.Word, cands [][]Reading) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('^')
		b.WriteString(w.Text)
		if len(cands[i]) == 0 {
			b.WriteString("/*")
			b.WriteString(w.Text)
		} else {
			for j := range cands[i] {
				b.WriteByte('/')
				b.WriteString(cands[i][j].analysisString())
			}
		}
		b.WriteByte('$')
	}
	return b.String()
}

// analysisString renders the reading in lemma<pos><feat>... form.
func (r *Reading) analysisString() string {
	var b strings.Builder
	b.Grow(len(r.Lemma) + 2 + len(r.POS) + 8*len(r.Feats))
	b.WriteString(r.Lemma)
	fmt.Fprintf(&b, "<%s>", r.POS)
	for _, f := range r.Feats {
		fmt.Fprintf(&b, "<%s>", f)
	}
	return b.String()
}

// matchCandidate finds the candidate equal to r by lemma, POS, and
// feature sequence. Nil when nothing matches exactly; an analysis the
// pipeline never proposed is not trusted.
func matchCandidate(cands []Reading, r Reading) *Reading {
	for i := range cands {
		c := &cands[i]
		if c.Lemma != r.Lemma || c.POS != r.POS || len(c.Feats) != len(r.Feats) {
			continue
		}
		same := true
		for j := range c.Feats {
			if c.Feats[j] != r.Feats[j] {
				same = false
				break
			}
		}
		if same {
			return c
		}
	}
	return nil
}
