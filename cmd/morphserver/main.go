// Command morphserver exposes the morphological analyzer as a JSON
// REST API.
//
// Endpoints:
//
//	GET  /api/analyze?word=<word>&lang=<iso639-3>
//	POST /api/analyze/text   body: {"text":"...","lang":"..."}
//	GET  /api/languages
//	GET  /api/translit?text=<text>&lang=<lang>&from=<code>&to=<code>
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/rs/cors"

	"github.com/turkic-nlp/turkicnlp/doc"
	"github.com/turkic-nlp/turkicnlp/morph"
	"github.com/turkic-nlp/turkicnlp/script"
	"github.com/turkic-nlp/turkicnlp/tokenize"
	"github.com/turkic-nlp/turkicnlp/translit"
)

// ---- JSON response types ------------------------------------------------

type wordJSON struct {
	Text   string `json:"text"`
	Lemma  string `json:"lemma"`
	UPOS   string `json:"upos"`
	Feats  string `json:"feats"`
	Script string `json:"script,omitempty"`
}

type analyzeResponse struct {
	Lang string   `json:"lang"`
	Word wordJSON `json:"word"`
}

type sentenceJSON struct {
	Text  string     `json:"text,omitempty"`
	Words []wordJSON `json:"words"`
}

type analyzeTextResponse struct {
	Lang      string         `json:"lang"`
	Sentences []sentenceJSON `json:"sentences"`
	Conllu    string         `json:"conllu"`
}

type languageJSON struct {
	Lang    string   `json:"lang"`
	Scripts []string `json:"scripts"`
	Primary string   `json:"primary"`
}

type translitResponse struct {
	Text   string `json:"text"`
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- server state -------------------------------------------------------

// server caches one analyzer per language. The lookup table is shared
// and read-only, so analyzers are built lazily and reused.
type server struct {
	fst morph.Lookup

	mu        sync.Mutex
	analyzers map[string]*morph.Analyzer
}

func (s *server) analyzer(lang string) (*morph.Analyzer, error) {
	cfg, err := script.ConfigFor(lang)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.analyzers[lang]; ok {
		return a, nil
	}
	a, err := morph.New(lang, cfg.Primary, s.fst)
	if err != nil {
		return nil, err
	}
	s.analyzers[lang] = a
	return a, nil
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toWordJSON(w *doc.Word) wordJSON {
	return wordJSON{
		Text:   w.Text,
		Lemma:  w.Lemma,
		UPOS:   w.UPOS,
		Feats:  w.Feats,
		Script: w.Script,
	}
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleAnalyzeWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	word := r.URL.Query().Get("word")
	lang := r.URL.Query().Get("lang")
	if word == "" || lang == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' or 'lang' query parameter")
		return
	}
	a, err := s.analyzer(lang)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sent := &doc.Sentence{Words: []*doc.Word{{ID: 1, Text: word}}}
	a.ProcessSentence(sent)
	writeJSON(w, http.StatusOK, analyzeResponse{Lang: lang, Word: toWordJSON(sent.Words[0])})
}

func (s *server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body struct {
		Text string `json:"text"`
		Lang string `json:"lang"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" || body.Lang == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with non-empty 'text' and 'lang' fields")
		return
	}
	a, err := s.analyzer(body.Lang)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	d := &doc.Document{Lang: body.Lang, Text: body.Text, Sentences: tokenize.Split(body.Text)}
	a.ProcessDocument(d)

	out := make([]sentenceJSON, 0, len(d.Sentences))
	for _, sent := range d.Sentences {
		sj := sentenceJSON{Text: sent.Text}
		for _, word := range sent.Words {
			sj.Words = append(sj.Words, toWordJSON(word))
		}
		out = append(out, sj)
	}
	writeJSON(w, http.StatusOK, analyzeTextResponse{Lang: body.Lang, Sentences: out, Conllu: d.Conllu()})
}

func (s *server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	langs := script.Languages()
	out := make([]languageJSON, 0, len(langs))
	for _, lang := range langs {
		cfg, err := script.ConfigFor(lang)
		if err != nil {
			continue
		}
		lj := languageJSON{Lang: lang, Primary: cfg.Primary.Code()}
		for _, sc := range cfg.Available {
			lj.Scripts = append(lj.Scripts, sc.Code())
		}
		out = append(out, lj)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleTranslit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	text, lang := q.Get("text"), q.Get("lang")
	if text == "" || lang == "" {
		writeError(w, http.StatusBadRequest, "missing 'text' or 'lang' query parameter")
		return
	}
	from, err := script.FromCode(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := script.FromCode(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tr, err := translit.New(lang, from, to)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, translit.ErrNoTable) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, translitResponse{Text: text, Result: tr.Transliterate(text)})
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	table := flag.String("table", "", "path to TSV lookup table (surface<TAB>analysis<TAB>weight)")
	flag.Parse()

	if *table == "" {
		log.Fatal("missing -table: a lookup table is required")
	}
	f, err := os.Open(*table)
	if err != nil {
		log.Fatalf("opening lookup table: %v", err)
	}
	fst, err := morph.ReadTableLookup(f)
	f.Close()
	if err != nil {
		log.Fatalf("loading lookup table: %v", err)
	}
	log.Printf("loaded %d surface forms from %s", fst.Len(), *table)

	s := &server{fst: fst, analyzers: make(map[string]*morph.Analyzer)}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/text", s.handleAnalyzeText)
	mux.HandleFunc("/api/analyze", s.handleAnalyzeWord)
	mux.HandleFunc("/api/languages", s.handleLanguages)
	mux.HandleFunc("/api/translit", s.handleTranslit)

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
