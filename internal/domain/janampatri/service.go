package janampatri

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	"github.com/yanqian/vedic-weekly/internal/domain/verses"
	apperrors "github.com/yanqian/vedic-weekly/pkg/errors"
	"github.com/yanqian/vedic-weekly/pkg/metrics"
)

// Config carries the configured birth details. An Override, when fully
// specified, bypasses the ephemeris entirely: holders of traditionally
// assigned charts do not want computed values disagreeing with family
// records.
type Config struct {
	BirthDate  string // YYYY-MM-DD, local
	BirthTime  string // HH:MM, local
	BirthPlace panchang.GeoLocation
	Override   Override
	VerseTopK  int
}

// Override is a pre-known nakshatra/rashi pair, by traditional name.
type Override struct {
	Nakshatra string
	Rashi     string
}

// IsSet reports whether both fields of the override are present.
func (o Override) IsSet() bool {
	return o.Nakshatra != "" && o.Rashi != ""
}

func (o Override) isPartial() bool {
	return (o.Nakshatra != "") != (o.Rashi != "")
}

// JanamPatri is the derived birth chart. Read-only after creation.
type JanamPatri struct {
	BirthDate  string               `json:"birthDate"`
	BirthTime  string               `json:"birthTime"`
	BirthPlace panchang.GeoLocation `json:"birthPlace"`

	Nakshatra     int    `json:"nakshatra"`
	NakshatraName string `json:"nakshatraName"`
	Rashi         int    `json:"rashi"`
	RashiName     string `json:"rashiName"`
	Overridden    bool   `json:"overridden,omitempty"`

	Theme     string                        `json:"theme"`
	Lifestyle []string                      `json:"lifestyle"`
	Verses    []verses.RecommendationResult `json:"verses"`
}

// RunRecord is the self-describing record emitted to the result sink for
// every birth chart computation.
type RunRecord struct {
	RunID       string              `json:"runId"`
	GeneratedAt time.Time           `json:"generatedAt"`
	BirthDate   string              `json:"birthDate"`
	Nakshatra   string              `json:"nakshatra"`
	Rashi       string              `json:"rashi"`
	Overridden  bool                `json:"overridden"`
	VerseIDs    []string            `json:"verseIds"`
	Search      metrics.SearchUsage `json:"search,omitzero"`
}

// RunSink receives birth chart run records.
type RunSink interface {
	LogBirthChartRun(ctx context.Context, rec RunRecord) error
}

// Service computes the configured individual's birth chart.
type Service interface {
	Compute(ctx context.Context) (JanamPatri, error)
}

type service struct {
	cfg         Config
	eph         panchang.EphemerisClient
	recommender verses.Recommender
	sink        RunSink
	logger      *slog.Logger
	now         func() time.Time
}

// NewService wires up the birth chart domain.
func NewService(cfg Config, eph panchang.EphemerisClient, recommender verses.Recommender, sink RunSink, logger *slog.Logger) Service {
	if cfg.VerseTopK < 1 {
		cfg.VerseTopK = 5
	}
	return &service{
		cfg:         cfg,
		eph:         eph,
		recommender: recommender,
		sink:        sink,
		logger:      logger.With("component", "janampatri.service"),
		now:         time.Now,
	}
}

func (s *service) Compute(ctx context.Context) (JanamPatri, error) {
	if s.cfg.Override.isPartial() {
		return JanamPatri{}, apperrors.Wrap(apperrors.CodeInvalidInput, "override requires both nakshatra and rashi", nil)
	}

	var (
		nakshatra, rashi int
		overridden       bool
	)
	if s.cfg.Override.IsSet() {
		nakshatra = panchang.NakshatraIndexByName(s.cfg.Override.Nakshatra)
		rashi = panchang.RashiIndexByName(s.cfg.Override.Rashi)
		if nakshatra == 0 || rashi == 0 {
			return JanamPatri{}, apperrors.Wrap(apperrors.CodeInvalidInput, "unknown nakshatra or rashi in override", nil)
		}
		overridden = true
	} else {
		moment, err := s.birthMoment()
		if err != nil {
			return JanamPatri{}, err
		}
		pos, err := s.eph.Positions(ctx, moment, s.cfg.BirthPlace)
		if err != nil {
			return JanamPatri{}, err
		}
		idx := panchang.IndicesFromPositions(pos)
		nakshatra, rashi = idx.Nakshatra, idx.Rashi
	}

	nakshatraName := panchang.NakshatraNames[nakshatra-1]
	theme := themeFor(nakshatraName)

	rec, err := s.recommender.Recommend(ctx, []string{theme}, s.cfg.VerseTopK)
	if err != nil {
		return JanamPatri{}, err
	}

	patri := JanamPatri{
		BirthDate:     s.cfg.BirthDate,
		BirthTime:     s.cfg.BirthTime,
		BirthPlace:    s.cfg.BirthPlace,
		Nakshatra:     nakshatra,
		NakshatraName: nakshatraName,
		Rashi:         rashi,
		RashiName:     panchang.RashiNames[rashi-1],
		Overridden:    overridden,
		Theme:         theme,
		Lifestyle:     lifestyleFor(nakshatraName),
		Verses:        rec.Results,
	}

	s.emitRun(ctx, patri, rec)
	return patri, nil
}

// birthMoment converts the configured local birth date/time into an instant.
func (s *service) birthMoment() (time.Time, error) {
	zone := s.cfg.BirthPlace.Zone()
	moment, err := time.ParseInLocation("2006-01-02 15:04", s.cfg.BirthDate+" "+s.cfg.BirthTime, zone)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidDate, "birth date/time must be YYYY-MM-DD and HH:MM", err)
	}
	return moment, nil
}

func (s *service) emitRun(ctx context.Context, patri JanamPatri, rec verses.Recommendation) {
	if s.sink == nil {
		return
	}
	verseIDs := make([]string, 0, len(rec.Results))
	for _, r := range rec.Results {
		verseIDs = append(verseIDs, r.Verse.ID)
	}
	record := RunRecord{
		RunID:       uuid.NewString(),
		GeneratedAt: s.now().UTC(),
		BirthDate:   patri.BirthDate,
		Nakshatra:   patri.NakshatraName,
		Rashi:       patri.RashiName,
		Overridden:  patri.Overridden,
		VerseIDs:    verseIDs,
		Search:      rec.Usage,
	}
	if err := s.sink.LogBirthChartRun(ctx, record); err != nil {
		s.logger.Warn("birth chart run not logged", "error", err)
	}
}
