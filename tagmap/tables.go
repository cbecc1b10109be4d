package tagmap

// basePOSMap is the Apertium POS → UD UPOS mapping shared by every
// language in the family.
var basePOSMap = map[string]string{
	"n":      "NOUN",
	"np":     "PROPN",
	"v":      "VERB",
	"vaux":   "AUX",
	"adj":    "ADJ",
	"adv":    "ADV",
	"prn":    "PRON",
	"det":    "DET",
	"post":   "ADP",
	"cnjcoo": "CCONJ",
	"cnjsub": "SCONJ",
	"num":    "NUM",
	"ij":     "INTJ",
	"part":   "PART",
	"punct":  "PUNCT",
	"sym":    "SYM",
}

// commonFeatMap captures the Turkic morphology tags shared across
// Apertium analyzers. It doubles as the fallback for languages without
// a bespoke map.
var commonFeatMap = map[string]string{
	// Case
	"nom": "Case=Nom",
	"gen": "Case=Gen",
	"dat": "Case=Dat",
	"acc": "Case=Acc",
	"abl": "Case=Abl",
	"loc": "Case=Loc",
	"ins": "Case=Ins",
	"equ": "Case=Equ",
	// Number
	"sg": "Number=Sing",
	"pl": "Number=Plur",
	"du": "Number=Dual",
	// Person
	"p1": "Person=1",
	"p2": "Person=2",
	"p3": "Person=3",
	// Clusivity (rare but present in some tagsets)
	"excl": "Clusivity=Excl",
	"incl": "Clusivity=Incl",
	// Possession
	"px1sg": "Number[psor]=Sing|Person[psor]=1",
	"px2sg": "Number[psor]=Sing|Person[psor]=2",
	"px3sg": "Number[psor]=Sing|Person[psor]=3",
	"px3sp": "Number[psor]=Sing|Person[psor]=3",
	"px1pl": "Number[psor]=Plur|Person[psor]=1",
	"px2pl": "Number[psor]=Plur|Person[psor]=2",
	"px3pl": "Number[psor]=Plur|Person[psor]=3",
	// Tense
	"past": "Tense=Past",
	"pres": "Tense=Pres",
	"fut":  "Tense=Fut",
	"aor":  "Tense=Aor",
	// Aspect
	"prog": "Aspect=Prog",
	"perf": "Aspect=Perf",
	// Mood
	"ind":   "Mood=Ind",
	"imp":   "Mood=Imp",
	"opt":   "Mood=Opt",
	"cond":  "Mood=Cnd",
	"neces": "Mood=Nec",
	// Verb form / polarity / voice
	"inf":  "VerbForm=Inf",
	"ger":  "VerbForm=Ger",
	"part": "VerbForm=Part",
	"neg":  "Polarity=Neg",
	"pass": "Voice=Pass",
	"rcp":  "Voice=Rcp",
	"rfl":  "Voice=Rfl",
	"caus": "Voice=Cau",
	// Degree
	"comp": "Degree=Cmp",
	"sup":  "Degree=Sup",
	// Gender (rare for Turkic but present in some tagsets)
	"f": "Gender=Fem",
	"m": "Gender=Masc",
	"n": "Gender=Neut",
	// Pronouns / particles
	"pers": "PronType=Prs",
	"dem":  "PronType=Dem",
	"qst":  "PartType=Int",
	"int":  "PronType=Int",
	"itg":  "PronType=Int",
	"rel":  "PronType=Rel",
	"refl": "Reflex=Yes",
}

// merged returns a copy of commonFeatMap with the overrides applied.
func merged(overrides map[string]string) map[string]string {
	m := make(map[string]string, len(commonFeatMap)+len(overrides))
	for k, v := range commonFeatMap {
		m[k] = v
	}
	for k, v := range overrides {
		m[k] = v
	}
	return m
}

// languageFeatMaps holds per-language feature maps. Kazakh, Tatar, and
// Turkish use conservative standalone maps matching their Apertium
// analyzers; the rest extend the common map with language-specific
// evidentials, converbs, and cases.
var languageFeatMaps = map[string]map[string]string{
	"kaz": {
		"nom": "Case=Nom", "gen": "Case=Gen", "dat": "Case=Dat",
		"acc": "Case=Acc", "abl": "Case=Abl", "loc": "Case=Loc",
		"ins": "Case=Ins",
		"sg":  "Number=Sing", "pl": "Number=Plur",
		"p1": "Person=1", "p2": "Person=2", "p3": "Person=3",
		"past": "Tense=Past", "pres": "Tense=Pres", "fut": "Tense=Fut",
		"aor": "Tense=Aor",
		"ind": "Mood=Ind", "imp": "Mood=Imp", "opt": "Mood=Opt",
		"cond":  "Mood=Cnd",
		"px1sg": "Number[psor]=Sing|Person[psor]=1",
		"px2sg": "Number[psor]=Sing|Person[psor]=2",
		"px3sp": "Number[psor]=Sing|Person[psor]=3",
	},
	"tat": {
		"nom": "Case=Nom", "gen": "Case=Gen", "dat": "Case=Dat",
		"acc": "Case=Acc", "abl": "Case=Abl", "loc": "Case=Loc",
		"sg": "Number=Sing", "pl": "Number=Plur",
		"p1": "Person=1", "p2": "Person=2", "p3": "Person=3",
		"past": "Tense=Past", "pres": "Tense=Pres", "fut": "Tense=Fut",
		"ind": "Mood=Ind", "imp": "Mood=Imp",
	},
	"tur": {
		"nom": "Case=Nom", "gen": "Case=Gen", "dat": "Case=Dat",
		"acc": "Case=Acc", "abl": "Case=Abl", "loc": "Case=Loc",
		"ins": "Case=Ins",
		"sg":  "Number=Sing", "pl": "Number=Plur",
		"p1": "Person=1", "p2": "Person=2", "p3": "Person=3",
		"past": "Tense=Past", "pres": "Tense=Pres", "fut": "Tense=Fut",
		"aor": "Tense=Aor",
		"ind": "Mood=Ind", "imp": "Mood=Imp", "opt": "Mood=Opt",
		"cond": "Mood=Cnd", "neces": "Mood=Nec",
	},

	// Common-map extensions. The evidential past (ifi/evid) and the
	// converb marker are the most frequent additions.
	"tuk": merged(map[string]string{
		"ifi": "Evident=Nfh",
	}),
	"uig": merged(map[string]string{
		"ifi": "Evident=Nfh",
	}),
	"chv": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
		"prl":  "Case=Prol",
		"ter":  "Case=Ter",
	}),
	"sah": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
		"par":  "Case=Par",
	}),
	"bak": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"kir": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"krc": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"kum": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"kjh": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"tyv": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"alt": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"kaa": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"aze": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
	"uzb": merged(map[string]string{
		"evid": "Evident=Nfh",
		"cvb":  "VerbForm=Conv",
	}),
}

func init() {
	// South Azerbaijani reuses the Azerbaijani map.
	languageFeatMaps["azb"] = languageFeatMaps["aze"]
}
