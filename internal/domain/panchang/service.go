package panchang

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/vedic-weekly/pkg/util"
)

// EphemerisClient is the port to the external ephemeris provider. The birth
// chart calculator consumes the same port at a different reference moment.
type EphemerisClient interface {
	Positions(ctx context.Context, at time.Time, loc GeoLocation) (CelestialPosition, error)
	SunriseSunset(ctx context.Context, date time.Time, loc GeoLocation) (rise, set time.Time, err error)
}

// Service computes daily panchang facts for the configured location.
type Service interface {
	Compute(ctx context.Context, date time.Time) (PanchangDay, error)
}

type service struct {
	loc    GeoLocation
	eph    EphemerisClient
	logger *slog.Logger
}

// NewService wires up the panchang domain.
func NewService(loc GeoLocation, eph EphemerisClient, logger *slog.Logger) Service {
	return &service{
		loc:    loc,
		eph:    eph,
		logger: logger.With("component", "panchang.service"),
	}
}

// Compute derives the panchang for a calendar date. The Hindu day is
// anchored at local sunrise, so every index is evaluated at that exact
// moment; a tithi that begins or ends elsewhere in the day does not shift
// the result. Ephemeris failures propagate unchanged.
func (s *service) Compute(ctx context.Context, date time.Time) (PanchangDay, error) {
	rise, set, err := s.eph.SunriseSunset(ctx, date, s.loc)
	if err != nil {
		return PanchangDay{}, err
	}

	pos, err := s.eph.Positions(ctx, rise, s.loc)
	if err != nil {
		return PanchangDay{}, err
	}

	idx := IndicesFromPositions(pos)
	day := PanchangDay{
		Date:          date,
		Location:      s.loc,
		Sunrise:       rise,
		Sunset:        set,
		SunriseClock:  util.FormatClock(rise, s.loc.Zone()),
		Vaara:         VaaraNames[int(date.Weekday())],
		Tithi:         idx.Tithi,
		TithiName:     TithiNames[idx.Tithi-1],
		Paksha:        idx.Paksha,
		Nakshatra:     idx.Nakshatra,
		NakshatraName: NakshatraNames[idx.Nakshatra-1],
		Yoga:          idx.Yoga,
		YogaName:      YogaNames[idx.Yoga-1],
		Karana:        idx.Karana,
		KaranaName:    KaranaNames[idx.Karana-1],
	}

	s.logger.Debug("panchang computed",
		"date", date.Format("2006-01-02"),
		"tithi", day.TithiName,
		"paksha", day.Paksha,
		"nakshatra", day.NakshatraName,
	)
	return day, nil
}
