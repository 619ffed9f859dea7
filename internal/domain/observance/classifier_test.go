package observance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
)

func dayWithTithi(tithi int, date time.Time) panchang.PanchangDay {
	paksha := panchang.PakshaShukla
	if tithi > 15 {
		paksha = panchang.PakshaKrishna
	}
	return panchang.PanchangDay{
		Date:      date,
		Tithi:     tithi,
		TithiName: panchang.TithiNames[tithi-1],
		Paksha:    paksha,
	}
}

func TestClassifyDayTotalOverAllTithis(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) // a Sunday
	for tithi := 1; tithi <= 30; tithi++ {
		set := ClassifyDay(dayWithTithi(tithi, date))
		switch tithi {
		case 11, 26:
			require.Contains(t, set.Names(), "Ekadashi", "tithi %d", tithi)
		case 15:
			require.Contains(t, set.Names(), "Purnima")
		case 30:
			require.Contains(t, set.Names(), "Amavasya")
		case 19:
			require.Contains(t, set.Names(), "Sankashti Chaturthi")
		}
	}
}

func TestSankashtiOnlyInKrishnaPaksha(t *testing.T) {
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	shukla := ClassifyDay(dayWithTithi(4, date))
	require.NotContains(t, shukla.Names(), "Sankashti Chaturthi")

	krishna := ClassifyDay(dayWithTithi(19, date))
	require.Contains(t, krishna.Names(), "Sankashti Chaturthi")
}

func TestPradoshamRequiresMondayOrTuesday(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	require.Contains(t, ClassifyDay(dayWithTithi(13, monday)).Names(), "Pradosham")
	require.Contains(t, ClassifyDay(dayWithTithi(28, tuesday)).Names(), "Pradosham")
	require.NotContains(t, ClassifyDay(dayWithTithi(13, friday)).Names(), "Pradosham")
	require.NotContains(t, ClassifyDay(dayWithTithi(14, monday)).Names(), "Pradosham")
}

func TestClassifyIsIndexAligned(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	week := make([]panchang.PanchangDay, 7)
	for i := range week {
		week[i] = dayWithTithi(24+i, start.AddDate(0, 0, i))
	}

	sets := Classify(week)
	require.Len(t, sets, 7)
	// Day index 2 carries tithi 26, an Ekadashi; day 6 carries tithi 30.
	require.Contains(t, sets[2].Names(), "Ekadashi")
	require.Contains(t, sets[6].Names(), "Amavasya")
	require.Empty(t, sets[0])
}

func TestOverlappingRulesAllFire(t *testing.T) {
	// Trayodashi on a Monday is Pradosham; nothing suppresses co-occurring
	// rules, so a synthetic day satisfying two rules reports both.
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	set := ClassifyDay(dayWithTithi(13, monday))
	require.Equal(t, []string{"Pradosham"}, set.Names())

	// Ekadashi never overlaps Purnima by construction, so union behavior
	// is observable through the weekday-gated rule above plus a plain rule.
	amavasya := ClassifyDay(dayWithTithi(30, monday))
	require.Equal(t, []string{"Amavasya"}, amavasya.Names())
}
