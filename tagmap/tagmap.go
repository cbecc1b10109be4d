// Package tagmap translates Apertium morphological tags into Universal
// Dependencies UPOS and feature strings.
//
// A shared base covers the POS inventory and the case, number, person,
// tense, mood, aspect, voice, verb-form, degree, and possession tags
// common to the Turkic family; individual languages override or extend
// specific entries (evidentials, converbs, language-specific cases)
// without altering the base.
//
// Unknown languages receive the common Turkic mapper rather than an
// error, so pipelines degrade gracefully. Unmapped POS tags become "X";
// unmapped feature tags are dropped.
//
// All mappers are read-only after package init and safe for concurrent
// use.
package tagmap

import (
	"sort"
	"strings"
)

// UnknownPOS is the UPOS assigned to unmapped source POS tags.
const UnknownPOS = "X"

// EmptyFeats is the sentinel feature string for a reading with no
// mappable features.
const EmptyFeats = "_"

// Mapper converts Apertium tags for one language. Construct with
// ForLanguage.
type Mapper struct {
	lang  string
	pos   map[string]string
	feats map[string]string
}

// Lang returns the ISO 639-3 code the mapper was built for, or "" for
// the common fallback mapper.
func (m *Mapper) Lang() string { return m.lang }

// UPOS converts an Apertium POS tag (e.g. "n", "vaux") to a UD UPOS
// tag. Unmapped tags yield UnknownPOS.
func (m *Mapper) UPOS(tag string) string {
	if upos, ok := m.pos[tag]; ok {
		return upos
	}
	return UnknownPOS
}

// Feats converts an ordered Apertium feature tag sequence to a UD
// feature string: each tag is mapped, unknown tags are dropped, and the
// mapped entries are pipe-joined in alphabetical order for determinism.
// An empty result yields EmptyFeats.
func (m *Mapper) Feats(tags []string) string {
	mapped, _ := m.MapFeats(tags)
	if len(mapped) == 0 {
		return EmptyFeats
	}
	sort.Strings(mapped)
	return strings.Join(mapped, "|")
}

// MapFeats maps Apertium feature tags to UD entries and reports the
// tags that had no mapping.
func (m *Mapper) MapFeats(tags []string) (mapped, unknown []string) {
	for _, tag := range tags {
		if ud, ok := m.feats[tag]; ok {
			mapped = append(mapped, ud)
		} else {
			unknown = append(unknown, tag)
		}
	}
	return mapped, unknown
}

// HasFeat reports whether the mapper knows the Apertium feature tag.
func (m *Mapper) HasFeat(tag string) bool {
	_, ok := m.feats[tag]
	return ok
}

// ForLanguage returns the tag mapper for an ISO 639-3 language code.
// Languages without a bespoke map get the common Turkic mapper.
func ForLanguage(lang string) *Mapper {
	feats, ok := languageFeatMaps[lang]
	if !ok {
		return &Mapper{pos: basePOSMap, feats: commonFeatMap}
	}
	return &Mapper{lang: lang, pos: basePOSMap, feats: feats}
}
