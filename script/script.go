// Package script classifies text by writing system and holds the
// per-language script registry for the Turkic language family.
//
// Four scripts are supported: Latin, Cyrillic, Perso-Arabic, and Old
// Turkic Runic (Orkhon). Classification is by fixed Unicode code-point
// ranges; digits, punctuation, whitespace, and symbols are neutral and
// never classified.
//
// Two API layers are provided:
//
//   - Detect returns the dominant script of a text.
//   - DetectSegments splits mixed-script text into contiguous
//     same-script runs.
//
// All functions are safe for concurrent use by multiple goroutines.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Script identifies a writing system.
type Script int

const (
	Unknown        Script = iota // zero value, no detection performed
	Latin                        // ISO 15924: Latn
	Cyrillic                     // ISO 15924: Cyrl
	PersoArabic                  // ISO 15924: Arab
	OldTurkicRunic               // ISO 15924: Orkh
)

// scriptNames maps Script values to their human-readable names.
var scriptNames = [...]string{
	Unknown:        "Unknown",
	Latin:          "Latin",
	Cyrillic:       "Cyrillic",
	PersoArabic:    "Perso-Arabic",
	OldTurkicRunic: "Old Turkic Runic",
}

// scriptCodes maps Script values to ISO 15924 codes.
var scriptCodes = [...]string{
	Unknown:        "",
	Latin:          "Latn",
	Cyrillic:       "Cyrl",
	PersoArabic:    "Arab",
	OldTurkicRunic: "Orkh",
}

// scriptFromCode maps ISO 15924 codes back to Script values.
var scriptFromCode = map[string]Script{
	"":     Unknown,
	"Latn": Latin,
	"Cyrl": Cyrillic,
	"Arab": PersoArabic,
	"Orkh": OldTurkicRunic,
}

// String returns the name of the script.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// Code returns the ISO 15924 code of the script, or "" for Unknown.
func (s Script) Code() string {
	if int(s) >= 0 && int(s) < len(scriptCodes) {
		return scriptCodes[s]
	}
	return ""
}

// MarshalJSON encodes the script as its ISO 15924 code (e.g. "Cyrl").
func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Code())
}

// UnmarshalJSON decodes an ISO 15924 code (e.g. "Cyrl") into a Script.
func (s *Script) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	sc, ok := scriptFromCode[code]
	if !ok {
		return fmt.Errorf("script: unknown script code: %q", code)
	}
	*s = sc
	return nil
}

// FromCode returns the Script for an ISO 15924 code.
func FromCode(code string) (Script, error) {
	sc, ok := scriptFromCode[code]
	if !ok {
		return Unknown, fmt.Errorf("script: unknown script code: %q", code)
	}
	return sc, nil
}

// ErrNoScript is returned by Detect when the text contains no
// classifiable letters.
var ErrNoScript = errors.New("script: no script characters detected")
