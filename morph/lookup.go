package morph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Weighted is one raw transducer output with its path cost.
type Weighted struct {
	Form   string
	Weight float64
}

// Lookup is the transducer boundary. Implementations return the raw
// weighted analyses for a surface form, or an empty slice when the
// form is unknown. Errors are treated as "no readings" by the
// analyzer, never propagated to the caller.
type Lookup interface {
	Lookup(surface string) ([]Weighted, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(surface string) ([]Weighted, error)

// Lookup calls f.
func (f LookupFunc) Lookup(surface string) ([]Weighted, error) {
	return f(surface)
}

// TableLookup is a map-backed Lookup, loaded from a TSV stream of
// surface/analysis/weight lines. It stands in for a compiled
// transducer in tests and offline tooling.
type TableLookup struct {
	entries map[string][]Weighted
}

// NewTableLookup builds an empty table.
func NewTableLookup() *TableLookup {
	return &TableLookup{entries: make(map[string][]Weighted)}
}

// Add registers one analysis for a surface form. Multiple analyses
// per surface accumulate in insertion order.
func (t *TableLookup) Add(surface, form string, weight float64) {
	t.entries[surface] = append(t.entries[surface], Weighted{Form: form, Weight: weight})
}

// Lookup returns the analyses registered for surface.
func (t *TableLookup) Lookup(surface string) ([]Weighted, error) {
	return t.entries[surface], nil
}

// Len reports the number of distinct surface forms in the table.
func (t *TableLookup) Len() int { return len(t.entries) }

// ReadTableLookup parses a lookup table from r. Each line is
// surface<TAB>analysis<TAB>weight; the weight column is optional and
// defaults to zero. Blank lines and lines starting with '#' are
// skipped.
func ReadTableLookup(r io.Reader) (*TableLookup, error) {
	t := NewTableLookup()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r\n")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("morph: lookup table line %d: want at least 2 tab-separated fields, got %d", line, len(fields))
		}
		weight := 0.0
		if len(fields) >= 3 && fields[2] != "" {
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("morph: lookup table line %d: bad weight %q: %w", line, fields[2], err)
			}
			weight = w
		}
		t.Add(fields[0], fields[1], weight)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("morph: reading lookup table: %w", err)
	}
	return t, nil
}
