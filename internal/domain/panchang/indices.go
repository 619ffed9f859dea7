package panchang

import "math"

const (
	tithiArc     = 12.0
	nakshatraArc = 360.0 / 27.0
	halfTithiArc = 6.0
	rashiArc     = 30.0
)

// CalendarIndices bundles every index derivable from a single pair of
// Sun/Moon longitudes. Both the daily panchang and the birth chart consume
// this one function so the arithmetic cannot drift between the two.
type CalendarIndices struct {
	Tithi     int
	Paksha    Paksha
	Nakshatra int
	Yoga      int
	Karana    int
	Rashi     int
}

// IndicesFromPositions derives tithi, nakshatra, yoga, karana and rashi
// from ecliptic longitudes. All indices are 1-based.
func IndicesFromPositions(pos CelestialPosition) CalendarIndices {
	sun := NormalizeDegrees(pos.SunLongitude)
	moon := NormalizeDegrees(pos.MoonLongitude)
	elongation := NormalizeDegrees(moon - sun)

	tithi := int(elongation/tithiArc) + 1
	paksha := PakshaShukla
	if tithi > 15 {
		paksha = PakshaKrishna
	}

	return CalendarIndices{
		Tithi:     tithi,
		Paksha:    paksha,
		Nakshatra: int(moon/nakshatraArc) + 1,
		Yoga:      int(NormalizeDegrees(sun+moon)/nakshatraArc) + 1,
		Karana:    karanaIndex(elongation),
		Rashi:     int(moon/rashiArc) + 1,
	}
}

// karanaIndex maps the 60 half-tithis of a lunar month onto the 11 named
// karanas. Kimstughna is fixed to the first half-tithi and Shakuni,
// Chatushpada and Nagava to the last three; the remaining 56 cycle through
// the seven movable karanas.
func karanaIndex(elongation float64) int {
	halfTithi := int(elongation / halfTithiArc) // 0-59
	switch halfTithi {
	case 0:
		return 11 // Kimstughna
	case 57:
		return 8 // Shakuni
	case 58:
		return 9 // Chatushpada
	case 59:
		return 10 // Nagava
	default:
		return (halfTithi-1)%7 + 1
	}
}

// NormalizeDegrees folds an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
