// Command analyze annotates text morphologically and prints CoNLL-U.
//
// Usage:
//
//	analyze -lang kaz -table analyses.tsv [file]
//
// Reads the named file, or stdin when no file is given. The lookup
// table is a TSV of surface<TAB>analysis<TAB>weight lines standing in
// for a compiled transducer.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/turkic-nlp/turkicnlp/doc"
	"github.com/turkic-nlp/turkicnlp/morph"
	"github.com/turkic-nlp/turkicnlp/script"
	"github.com/turkic-nlp/turkicnlp/tokenize"
)

func main() {
	lang := flag.String("lang", "", "ISO 639-3 language code")
	table := flag.String("table", "", "path to TSV lookup table")
	flag.Parse()

	if *lang == "" || *table == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -lang <code> -table <file.tsv> [file]")
		os.Exit(2)
	}

	cfg, err := script.ConfigFor(*lang)
	if err != nil {
		log.Fatal(err)
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

	var text []byte
	if flag.NArg() > 0 {
		text, err = os.ReadFile(flag.Arg(0))
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	analyzer, err := morph.New(*lang, cfg.Primary, fst)
	if err != nil {
		log.Fatal(err)
	}

	d := &doc.Document{
		Lang:      *lang,
		Script:    cfg.Primary.Code(),
		Sentences: tokenize.Split(string(text)),
	}
	analyzer.ProcessDocument(d)
	fmt.Print(d.Conllu())
}
