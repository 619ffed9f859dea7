package janampatri

// nakshatraThemes maps a janma nakshatra to the deity/theme keywords used
// when searching for birth verses.
var nakshatraThemes = map[string]string{
	"Ashwini":           "healing vitality Ashwini Kumaras",
	"Bharani":           "transformation Yama dharma",
	"Krittika":          "Agni fire purification",
	"Rohini":            "moon devotion beauty",
	"Mrigashira":        "Soma moon seeking",
	"Ardra":             "Shiva Rudra storm",
	"Punarvasu":         "Aditi abundance home",
	"Pushya":            "Brihaspati wisdom Jupiter",
	"Ashlesha":          "serpent wisdom Naga",
	"Magha":             "pitru ancestors royalty",
	"Purva Phalguni":    "love devotion Venus",
	"Uttara Phalguni":   "grace Aryaman",
	"Hasta":             "skill Savitr sun",
	"Chitra":            "Vishwakarma creation",
	"Swati":             "Vayu wind freedom",
	"Vishakha":          "Indra Agni victory",
	"Anuradha":          "Mitra friendship devotion",
	"Jyeshtha":          "Indra protection elder",
	"Mula":              "Nirriti dissolution",
	"Purva Ashadha":     "Apah waters",
	"Uttara Ashadha":    "Vishvedeva universal",
	"Shravana":          "Vishnu listening",
	"Dhanishta":         "Vasudeva rhythm",
	"Shatabhisha":       "Varuna healing",
	"Purva Bhadrapada":  "Aja Ekapada",
	"Uttara Bhadrapada": "Ahir Budhnya",
	"Revati":            "Pushan nourishment",
}

// nakshatraLifestyle carries hand-curated guidance for specific nakshatras;
// the rest fall back to defaultLifestyle.
var nakshatraLifestyle = map[string][]string{
	"Punarvasu": {
		"Keep mornings uncluttered; begin with a short prayer and fresh air.",
		"Nurture home energy: one small act of care in your living space daily.",
		"Prefer steady routines over sudden lifestyle swings this week.",
	},
}

var defaultLifestyle = []string{
	"Maintain a steady wake-sleep cycle and keep one daily reflection practice.",
	"Choose sattvic food and avoid over-stimulation in late evenings.",
	"Do one intentional act of service each week.",
}

func themeFor(nakshatraName string) string {
	if theme, ok := nakshatraThemes[nakshatraName]; ok {
		return theme
	}
	return nakshatraName + " devotion dharma"
}

func lifestyleFor(nakshatraName string) []string {
	if recs, ok := nakshatraLifestyle[nakshatraName]; ok {
		return recs
	}
	return defaultLifestyle
}
