package digest

import (
	"fmt"
	"strings"
)

// Render pretty-prints a digest for notification channels that want plain
// text instead of the structured value.
func Render(d WeeklyDigest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Vedic Wisdom Weekly ===\n")
	fmt.Fprintf(&b, "Week: %s to %s\n\n", d.WeekStart.Format("2006-01-02"), d.WeekEnd.Format("2006-01-02"))

	b.WriteString("Daily Panchang:\n")
	for _, day := range d.Days {
		p := day.Panchang
		fmt.Fprintf(&b, "  %s (%s) | %s %s | %s | Sunrise %s\n",
			p.Date.Format("2006-01-02"), p.Vaara, p.Paksha, p.TithiName, p.NakshatraName, p.SunriseClock)
	}

	all := d.Observances()
	b.WriteString("\n")
	if len(all) > 0 {
		b.WriteString("Observances this week:\n")
		for _, o := range all {
			fmt.Fprintf(&b, "  - %s: %s (%s): %s\n", o.Date.Format("2006-01-02"), o.Name, o.Deity, o.Description)
		}
	} else {
		b.WriteString("No major observances this week.\n")
	}

	b.WriteString("\nShloka by day:\n")
	for _, day := range d.Days {
		v := day.Verse.Verse
		fmt.Fprintf(&b, "  %s (%s %s)\n", day.Panchang.Date.Format("2006-01-02"), day.Panchang.Paksha, day.Panchang.TithiName)
		fmt.Fprintf(&b, "    %s\n    %s\n    - %s [%s]\n", v.Devanagari, v.Transliteration, v.Meaning, v.Source)
	}

	v := d.VerseOfWeek.Verse
	fmt.Fprintf(&b, "\nVerse of the week:\n  %s\n  %s\n  - %s [%s]\n", v.Devanagari, v.Transliteration, v.Meaning, v.Source)

	if len(d.Lifestyle) > 0 {
		b.WriteString("\nLifestyle recommendations:\n")
		for _, r := range d.Lifestyle {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
	}
	return b.String()
}
