package script

import "fmt"

// Config is the per-language script configuration. FSTScript is the
// script the language's morphological transducer expects as input; when
// unset it defaults to Primary.
type Config struct {
	Available      []Script          // all scripts the language uses
	Primary        Script            // default when the caller does not specify
	Direction      string            // "ltr" or "rtl" for the primary script
	Transliterable map[Script]Script // source -> target pairs with table support
	FSTScript      Script            // script expected by the FST
}

// languageConfigs is the canonical registry, keyed by ISO 639-3 code.
// Languages without an entry for FSTScript use their primary script.
var languageConfigs = map[string]Config{
	"tur": {Available: []Script{Latin}, Primary: Latin},
	"aze": {
		Available:      []Script{Latin, Cyrillic},
		Primary:        Latin,
		Transliterable: map[Script]Script{Cyrillic: Latin, Latin: Cyrillic},
	},
	"azb": {Available: []Script{PersoArabic}, Primary: PersoArabic, Direction: "rtl"},
	"kaz": {
		Available:      []Script{Cyrillic, Latin},
		Primary:        Cyrillic,
		Transliterable: map[Script]Script{Latin: Cyrillic, Cyrillic: Latin},
	},
	"uzb": {
		Available:      []Script{Latin, Cyrillic},
		Primary:        Latin,
		Transliterable: map[Script]Script{Cyrillic: Latin, Latin: Cyrillic},
	},
	"kir": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"tuk": {
		Available:      []Script{Latin, Cyrillic},
		Primary:        Latin,
		Transliterable: map[Script]Script{Cyrillic: Latin, Latin: Cyrillic},
	},
	"tat": {
		Available:      []Script{Cyrillic, Latin},
		Primary:        Cyrillic,
		Transliterable: map[Script]Script{Latin: Cyrillic, Cyrillic: Latin},
	},
	"uig": {
		Available:      []Script{PersoArabic, Latin},
		Primary:        PersoArabic,
		Direction:      "rtl",
		Transliterable: map[Script]Script{Latin: PersoArabic, PersoArabic: Latin},
	},
	"bak": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"crh": {
		Available:      []Script{Latin, Cyrillic},
		Primary:        Latin,
		Transliterable: map[Script]Script{Cyrillic: Latin, Latin: Cyrillic},
	},
	"chv": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"sah": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"kaa": {
		Available:      []Script{Latin, Cyrillic},
		Primary:        Latin,
		Transliterable: map[Script]Script{Cyrillic: Latin, Latin: Cyrillic},
	},
	"gag": {Available: []Script{Latin}, Primary: Latin},
	"nog": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"kum": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"krc": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"alt": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"tyv": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"kjh": {Available: []Script{Cyrillic}, Primary: Cyrillic},
	"ota": {
		Available:      []Script{PersoArabic, Latin},
		Primary:        PersoArabic,
		Direction:      "rtl",
		Transliterable: map[Script]Script{Latin: PersoArabic},
	},
	"otk": {
		Available:      []Script{OldTurkicRunic, Latin},
		Primary:        Latin,
		Transliterable: map[Script]Script{OldTurkicRunic: Latin},
	},
}

// Languages returns the ISO 639-3 codes of all registered languages.
func Languages() []string {
	langs := make([]string, 0, len(languageConfigs))
	for lang := range languageConfigs {
		langs = append(langs, lang)
	}
	return langs
}

// ConfigFor returns the script configuration for an ISO 639-3 language
// code. The returned Config has Direction and FSTScript defaulted.
func ConfigFor(lang string) (Config, error) {
	cfg, ok := languageConfigs[lang]
	if !ok {
		return Config{}, fmt.Errorf("script: no script configuration for language %q", lang)
	}
	if cfg.Direction == "" {
		cfg.Direction = "ltr"
	}
	if cfg.FSTScript == Unknown {
		cfg.FSTScript = cfg.Primary
	}
	return cfg, nil
}
