package util

import (
	"fmt"
	"time"
)

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FixedZone builds a time.Location from a UTC offset expressed in hours.
// Fractional offsets (e.g. +5.5 for IST) are supported.
func FixedZone(offsetHours float64) *time.Location {
	seconds := int(offsetHours * 3600)
	sign := "+"
	if offsetHours < 0 {
		sign = "-"
		offsetHours = -offsetHours
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, int(offsetHours), int(offsetHours*60)%60)
	return time.FixedZone(name, seconds)
}

// ParseDate parses a YYYY-MM-DD calendar date in the given zone.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}

// FormatClock renders an instant as HH:MM in the given zone.
func FormatClock(ts time.Time, loc *time.Location) string {
	return ts.In(loc).Format("15:04")
}
