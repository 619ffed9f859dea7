package ephemeris

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	apperrors "github.com/yanqian/vedic-weekly/pkg/errors"
)

// PositionSource is the raw upstream contract satisfied by the swissapi
// client and by test doubles.
type PositionSource interface {
	Positions(ctx context.Context, at time.Time, lat, lon float64) (sun, moon float64, err error)
}

// Adapter implements the panchang ephemeris port. Positions come from the
// remote provider; sunrise and sunset are computed locally. A wrong
// position would make every derived index silently wrong, so invalid
// provider data is always an error, never a default.
type Adapter struct {
	source PositionSource
	logger *slog.Logger
}

// NewAdapter wires up the adapter.
func NewAdapter(source PositionSource, logger *slog.Logger) *Adapter {
	return &Adapter{
		source: source,
		logger: logger.With("component", "ephemeris.adapter"),
	}
}

// Positions returns normalized Sun/Moon ecliptic longitudes at an instant.
func (a *Adapter) Positions(ctx context.Context, at time.Time, loc panchang.GeoLocation) (panchang.CelestialPosition, error) {
	sun, moon, err := a.source.Positions(ctx, at, loc.Latitude, loc.Longitude)
	if err != nil {
		return panchang.CelestialPosition{}, apperrors.Wrap(apperrors.CodeEphemerisUnavailable, "ephemeris provider failed", err)
	}
	if !isFiniteDegrees(sun) || !isFiniteDegrees(moon) {
		a.logger.Error("ephemeris returned out-of-range longitudes", "sun", sun, "moon", moon)
		return panchang.CelestialPosition{}, apperrors.Wrap(apperrors.CodeEphemerisUnavailable, "ephemeris provider returned invalid longitudes", nil)
	}
	return panchang.CelestialPosition{
		SunLongitude:  panchang.NormalizeDegrees(sun),
		MoonLongitude: panchang.NormalizeDegrees(moon),
	}, nil
}

// SunriseSunset returns the local sunrise and sunset for a civil date.
// Latitudes with no sunrise on the date (polar day or night) have no valid
// Hindu-calendar mapping and fail with an invalid date error.
func (a *Adapter) SunriseSunset(_ context.Context, date time.Time, loc panchang.GeoLocation) (time.Time, time.Time, error) {
	zone := loc.Zone()
	local := date.In(zone)
	rise, set := sunrise.SunriseSunset(loc.Latitude, loc.Longitude, local.Year(), local.Month(), local.Day())
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, apperrors.Wrap(apperrors.CodeInvalidDate, "sun does not rise at this latitude on this date", nil)
	}
	return rise.In(zone), set.In(zone), nil
}

func isFiniteDegrees(deg float64) bool {
	// Providers may serve raw longitudes beyond one revolution, but
	// anything wildly out of band signals corrupt data.
	return !math.IsNaN(deg) && !math.IsInf(deg, 0) && math.Abs(deg) < 3600
}

var _ panchang.EphemerisClient = (*Adapter)(nil)
