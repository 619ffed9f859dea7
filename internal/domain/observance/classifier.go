package observance

import (
	"time"

	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
)

// Observance is a named ritual occasion detected on a panchang day.
type Observance struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Deity       string    `json:"deity"`
	Description string    `json:"description"`
}

// Set holds the zero or more observances that apply to one day. An empty
// set is an absence signal, never an error.
type Set []Observance

// Names returns the observance names in detection order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, o := range s {
		names = append(names, o.Name)
	}
	return names
}

type rule struct {
	name        string
	deity       string
	description string
	applies     func(day panchang.PanchangDay) bool
}

// Every matching rule fires; overlapping observances are valid
// simultaneously, so the result is the union and evaluation order does not
// matter.
var rules = []rule{
	{
		name:        "Ekadashi",
		deity:       "Vishnu",
		description: "Fast and Vishnu worship",
		applies: func(d panchang.PanchangDay) bool {
			return d.Tithi == 11 || d.Tithi == 26
		},
	},
	{
		name:        "Pradosham",
		deity:       "Shiva",
		description: "Shiva puja during twilight",
		applies: func(d panchang.PanchangDay) bool {
			if d.Tithi != 13 && d.Tithi != 28 {
				return false
			}
			wd := d.Weekday()
			return wd == time.Monday || wd == time.Tuesday
		},
	},
	{
		name:        "Amavasya",
		deity:       "Pitrus",
		description: "Tarpanam for ancestors",
		applies: func(d panchang.PanchangDay) bool {
			return d.Tithi == 30
		},
	},
	{
		name:        "Purnima",
		deity:       "All",
		description: "Full moon observance",
		applies: func(d panchang.PanchangDay) bool {
			return d.Tithi == 15
		},
	},
	{
		name:        "Sankashti Chaturthi",
		deity:       "Ganesha",
		description: "Ganesha vrata",
		applies: func(d panchang.PanchangDay) bool {
			return d.Tithi == 19
		},
	},
}

// Classify maps a week of panchang days onto index-aligned observance
// sets. Pure and total: any legal tithi index 1-30 yields a well-formed,
// possibly empty set.
func Classify(week []panchang.PanchangDay) []Set {
	sets := make([]Set, len(week))
	for i, day := range week {
		sets[i] = ClassifyDay(day)
	}
	return sets
}

// ClassifyDay evaluates every rule against one day.
func ClassifyDay(day panchang.PanchangDay) Set {
	var set Set
	for _, r := range rules {
		if r.applies(day) {
			set = append(set, Observance{
				Name:        r.name,
				Date:        day.Date,
				Deity:       r.deity,
				Description: r.description,
			})
		}
	}
	return set
}
