package tokenize

import (
	"strings"

	"github.com/turkic-nlp/turkicnlp/doc"
)

// Split tokenizes running text into the document model, one Sentence
// per detected sentence with Word entries for word, number, and
// punctuation tokens. Whitespace and symbol tokens are dropped;
// Sentence.Text keeps the original sentence with surrounding
// whitespace trimmed.
func Split(text string) []*doc.Sentence {
	var sentences []*doc.Sentence
	for _, st := range SentenceTokens(text) {
		sent := &doc.Sentence{Text: strings.TrimSpace(st.Text)}
		for _, wt := range WordTokens(st.Text) {
			switch wt.Type {
			case Word, Number, Punctuation:
				sent.Words = append(sent.Words, &doc.Word{
					ID:   len(sent.Words) + 1,
					Text: wt.Text,
				})
			}
		}
		if len(sent.Words) > 0 {
			sentences = append(sentences, sent)
		}
	}
	return sentences
}
