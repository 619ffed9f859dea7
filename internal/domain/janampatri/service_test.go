package janampatri

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	"github.com/yanqian/vedic-weekly/internal/domain/verses"
	apperrors "github.com/yanqian/vedic-weekly/pkg/errors"
)

var birthPlace = panchang.GeoLocation{
	Name:           "Hyderabad",
	Latitude:       17.38,
	Longitude:      78.49,
	UTCOffsetHours: 5.5,
}

func newRecommender(t *testing.T) verses.Recommender {
	t.Helper()
	corpus := []verses.VerseRecord{
		{ID: "aditi", Source: "Rig Veda 1.89", Meaning: "Aditi is the sky, Aditi is the air.", Tags: []string{"aditi", "abundance", "home"}},
		{ID: "generic", Source: "Bhagavad Gita 2.47", Meaning: "Act without attachment.", Tags: []string{"karma", "dharma"}},
	}
	rec, err := verses.NewRecommender(corpus, verses.NewTokenScorer(), "generic", discardLogger())
	require.NoError(t, err)
	return rec
}

func TestComputeFromEphemeris(t *testing.T) {
	// Moon at 95 degrees: nakshatra 8 (Pushya), rashi 4 (Karka).
	eph := &countingEphemeris{pos: panchang.CelestialPosition{SunLongitude: 280, MoonLongitude: 95}}
	svc := NewService(Config{
		BirthDate:  "1990-01-12",
		BirthTime:  "10:30",
		BirthPlace: birthPlace,
	}, eph, newRecommender(t), nil, discardLogger())

	patri, err := svc.Compute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 8, patri.Nakshatra)
	require.Equal(t, "Pushya", patri.NakshatraName)
	require.Equal(t, 4, patri.Rashi)
	require.Equal(t, "Karka", patri.RashiName)
	require.False(t, patri.Overridden)
	require.Equal(t, 1, eph.positionCalls)

	// The birth moment is the exact local instant, not sunrise.
	want := time.Date(1990, 1, 12, 10, 30, 0, 0, birthPlace.Zone())
	require.True(t, eph.lastAt.Equal(want))
	require.NotEmpty(t, patri.Verses)
	require.NotEmpty(t, patri.Lifestyle)
}

func TestComputeOverrideSkipsEphemeris(t *testing.T) {
	eph := &countingEphemeris{}
	sink := &memorySink{}
	svc := NewService(Config{
		BirthDate:  "1990-01-12",
		BirthTime:  "10:30",
		BirthPlace: birthPlace,
		Override:   Override{Nakshatra: "Punarvasu", Rashi: "Mithuna"},
	}, eph, newRecommender(t), sink, discardLogger())

	patri, err := svc.Compute(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Punarvasu", patri.NakshatraName)
	require.Equal(t, 7, patri.Nakshatra)
	require.Equal(t, "Mithuna", patri.RashiName)
	require.True(t, patri.Overridden)
	require.Zero(t, eph.positionCalls, "override must never invoke the ephemeris")

	// Punarvasu carries curated lifestyle guidance.
	require.Len(t, patri.Lifestyle, 3)
	require.Len(t, sink.records, 1)
	require.True(t, sink.records[0].Overridden)
}

func TestComputePartialOverrideRejected(t *testing.T) {
	svc := NewService(Config{
		BirthDate:  "1990-01-12",
		BirthTime:  "10:30",
		BirthPlace: birthPlace,
		Override:   Override{Nakshatra: "Punarvasu"},
	}, &countingEphemeris{}, newRecommender(t), nil, discardLogger())

	_, err := svc.Compute(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestComputeUnknownOverrideNameRejected(t *testing.T) {
	svc := NewService(Config{
		BirthDate:  "1990-01-12",
		BirthTime:  "10:30",
		BirthPlace: birthPlace,
		Override:   Override{Nakshatra: "Nope", Rashi: "Karka"},
	}, &countingEphemeris{}, newRecommender(t), nil, discardLogger())

	_, err := svc.Compute(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestComputeBadBirthDateRejected(t *testing.T) {
	svc := NewService(Config{
		BirthDate:  "12/01/1990",
		BirthTime:  "10:30",
		BirthPlace: birthPlace,
	}, &countingEphemeris{}, newRecommender(t), nil, discardLogger())

	_, err := svc.Compute(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidDate))
}

type countingEphemeris struct {
	pos           panchang.CelestialPosition
	positionCalls int
	lastAt        time.Time
}

func (c *countingEphemeris) Positions(_ context.Context, at time.Time, _ panchang.GeoLocation) (panchang.CelestialPosition, error) {
	c.positionCalls++
	c.lastAt = at
	return c.pos, nil
}

func (c *countingEphemeris) SunriseSunset(_ context.Context, _ time.Time, _ panchang.GeoLocation) (time.Time, time.Time, error) {
	return time.Time{}, time.Time{}, nil
}

type memorySink struct {
	records []RunRecord
}

func (m *memorySink) LogBirthChartRun(_ context.Context, rec RunRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
