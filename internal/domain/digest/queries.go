package digest

import (
	"github.com/yanqian/vedic-weekly/internal/domain/observance"
	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
)

// tithiQueries provides a default verse query for days with no observance,
// keyed by tithi name.
var tithiQueries = map[string]string{
	"Pratipada":  "Ganesha beginning auspicious",
	"Chaturthi":  "Ganesha chaturthi obstacles",
	"Ekadashi":   "Vishnu ekadashi devotion",
	"Trayodashi": "Shiva pradosham",
	"Amavasya":   "pitru ancestors amavasya tarpanam",
	"Purnima":    "full moon devotion",
	"Dwadashi":   "Vishnu devotion",
}

// dayQueryTags derives the verse search tags for one day: observance
// names plus deity and description when present, the tithi default map
// otherwise.
func dayQueryTags(day panchang.PanchangDay, set observance.Set) []string {
	if len(set) > 0 {
		tags := make([]string, 0, len(set)*3)
		for _, o := range set {
			tags = append(tags, o.Name, o.Deity, o.Description)
		}
		return tags
	}
	if q, ok := tithiQueries[day.TithiName]; ok {
		return []string{q}
	}
	return []string{day.TithiName, day.NakshatraName, "dharma"}
}

// weekQueryTags is the union of the week's observance tags, used for the
// verse of the week.
func weekQueryTags(sets []observance.Set) []string {
	var tags []string
	for _, set := range sets {
		for _, o := range set {
			tags = append(tags, o.Name, o.Deity, o.Description)
		}
	}
	return tags
}

// lifestyleForWeek builds at most five practical recommendations from the
// week's observances and weekdays.
func lifestyleForWeek(days []panchang.PanchangDay, sets []observance.Set) []string {
	names := make(map[string]bool)
	for _, set := range sets {
		for _, o := range set {
			names[o.Name] = true
		}
	}
	tithis := make(map[string]bool)
	vaaras := make(map[string]bool)
	for _, d := range days {
		tithis[d.TithiName] = true
		vaaras[d.Vaara] = true
	}

	var recs []string
	if names["Amavasya"] {
		recs = append(recs, "Amavasya week: spend time in quiet reflection and gratitude for ancestors.")
	}
	if names["Ekadashi"] {
		recs = append(recs, "Ekadashi: keep meals light and sattvic, with extra hydration and simple japa.")
	}
	if names["Sankashti Chaturthi"] || tithis["Chaturthi"] {
		recs = append(recs, "Chaturthi energy: clear one pending task and remove one source of clutter.")
	}
	if vaaras["Somavara"] {
		recs = append(recs, "Somavara: start the week with a short sankalpa and 10 minutes of silence.")
	}
	if vaaras["Guruvara"] {
		recs = append(recs, "Guruvara: reserve time for study, guidance, or one act of teaching.")
	}
	recs = append(recs, "Daily anchor: avoid digital overload for one focused hour after sunrise.")
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
