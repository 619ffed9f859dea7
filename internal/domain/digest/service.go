package digest

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yanqian/vedic-weekly/internal/domain/observance"
	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	"github.com/yanqian/vedic-weekly/internal/domain/verses"
)

const weekDays = 7

// Service assembles the weekly digest.
type Service interface {
	Assemble(ctx context.Context, weekStart time.Time) (WeeklyDigest, error)
}

type service struct {
	panchangSvc panchang.Service
	recommender verses.Recommender
	sink        RunSink
	cache       Cache
	logger      *slog.Logger
	now         func() time.Time
}

// NewService wires up the digest assembler. Sink and cache are optional.
func NewService(panchangSvc panchang.Service, recommender verses.Recommender, sink RunSink, cache Cache, logger *slog.Logger) Service {
	return &service{
		panchangSvc: panchangSvc,
		recommender: recommender,
		sink:        sink,
		cache:       cache,
		logger:      logger.With("component", "digest.service"),
		now:         time.Now,
	}
}

// Assemble computes the seven panchang days, classifies observances, pairs
// one verse per day plus a verse of the week, and emits a run record. The
// assembly is atomic: any day failing fails the whole call, since a digest
// with a missing day is worse than no digest.
func (s *service) Assemble(ctx context.Context, weekStart time.Time) (WeeklyDigest, error) {
	cacheKey := weekStart.Format("2006-01-02")
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, cacheKey); err != nil {
			s.logger.Warn("digest cache read failed", "error", err)
		} else if ok {
			s.logger.Debug("digest served from cache", "weekStart", cacheKey)
			return cached, nil
		}
	}

	days := make([]panchang.PanchangDay, weekDays)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < weekDays; i++ {
		g.Go(func() error {
			day, err := s.panchangSvc.Compute(gctx, weekStart.AddDate(0, 0, i))
			if err != nil {
				return err
			}
			days[i] = day
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return WeeklyDigest{}, err
	}
	// Slots are filled by index, but the digest contract is calendar order,
	// so enforce it rather than assume it.
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })

	sets := observance.Classify(days)

	entries := make([]DayEntry, 0, weekDays)
	for i, day := range days {
		rec, err := s.recommender.Recommend(ctx, dayQueryTags(day, sets[i]), 1)
		if err != nil {
			return WeeklyDigest{}, err
		}
		entry := DayEntry{
			Panchang:    day,
			Observances: sets[i],
			Verse:       rec.Results[0],
		}
		entries = append(entries, entry)
	}

	weekRec, err := s.recommender.Recommend(ctx, weekQueryTags(sets), 1)
	if err != nil {
		return WeeklyDigest{}, err
	}

	digest := WeeklyDigest{
		WeekStart:   weekStart,
		WeekEnd:     weekStart.AddDate(0, 0, weekDays-1),
		Days:        entries,
		VerseOfWeek: weekRec.Results[0],
		Lifestyle:   lifestyleForWeek(days, sets),
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, cacheKey, digest); err != nil {
			s.logger.Warn("digest cache write failed", "error", err)
		}
	}
	s.emitRun(ctx, digest, weekRec)
	return digest, nil
}

func (s *service) emitRun(ctx context.Context, d WeeklyDigest, weekRec verses.Recommendation) {
	if s.sink == nil {
		return
	}
	all := d.Observances()
	names := make([]string, 0, len(all))
	for _, o := range all {
		names = append(names, o.Name)
	}
	dailyIDs := make(map[string]string, len(d.Days))
	for _, day := range d.Days {
		dailyIDs[day.Panchang.Date.Format("2006-01-02")] = day.Verse.Verse.ID
	}
	record := RunRecord{
		RunID:           uuid.NewString(),
		GeneratedAt:     s.now().UTC(),
		WeekStart:       d.WeekStart.Format("2006-01-02"),
		WeekEnd:         d.WeekEnd.Format("2006-01-02"),
		ObservanceCount: len(all),
		ObservanceNames: names,
		DailyVerseIDs:   dailyIDs,
		VerseOfWeekID:   d.VerseOfWeek.Verse.ID,
		Search:          weekRec.Usage,
	}
	if err := s.sink.LogDigestRun(ctx, record); err != nil {
		s.logger.Warn("digest run not logged", "error", err)
	}
}
