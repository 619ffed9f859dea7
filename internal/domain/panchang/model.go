package panchang

import (
	"time"

	"github.com/yanqian/vedic-weekly/pkg/util"
)

// GeoLocation identifies the fixed observer position. Supplied by
// configuration and never mutated.
type GeoLocation struct {
	Name           string  `json:"name,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	UTCOffsetHours float64 `json:"utcOffsetHours"`
}

// Zone returns the fixed time zone implied by the UTC offset.
func (l GeoLocation) Zone() *time.Location {
	return util.FixedZone(l.UTCOffsetHours)
}

// CelestialPosition holds the Sun and Moon ecliptic longitudes in degrees,
// normalized to [0, 360).
type CelestialPosition struct {
	SunLongitude  float64 `json:"sunLongitude"`
	MoonLongitude float64 `json:"moonLongitude"`
}

// Paksha is the lunar fortnight.
type Paksha string

const (
	// PakshaShukla covers the waxing half, tithi 1-15.
	PakshaShukla Paksha = "Shukla"
	// PakshaKrishna covers the waning half, tithi 16-30.
	PakshaKrishna Paksha = "Krishna"
)

// PanchangDay is one day's derived calendar facts, fixed at the local
// sunrise moment. Immutable once computed.
type PanchangDay struct {
	Date     time.Time   `json:"date"`
	Location GeoLocation `json:"location"`

	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
	// SunriseClock is the local HH:MM rendering kept for digests.
	SunriseClock string `json:"sunriseClock"`

	Vaara string `json:"vaara"`

	Tithi     int    `json:"tithi"`
	TithiName string `json:"tithiName"`
	Paksha    Paksha `json:"paksha"`

	Nakshatra     int    `json:"nakshatra"`
	NakshatraName string `json:"nakshatraName"`

	Yoga     int    `json:"yoga"`
	YogaName string `json:"yogaName"`

	Karana     int    `json:"karana"`
	KaranaName string `json:"karanaName"`
}

// Weekday returns the civil weekday of the panchang day.
func (d PanchangDay) Weekday() time.Weekday {
	return d.Date.Weekday()
}
