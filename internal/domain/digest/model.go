package digest

import (
	"context"
	"time"

	"github.com/yanqian/vedic-weekly/internal/domain/observance"
	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	"github.com/yanqian/vedic-weekly/internal/domain/verses"
	"github.com/yanqian/vedic-weekly/pkg/metrics"
)

// DayEntry is one day of the assembled week: panchang facts, detected
// observances and the verse recommended for the day.
type DayEntry struct {
	Panchang    panchang.PanchangDay        `json:"panchang"`
	Observances observance.Set              `json:"observances"`
	Verse       verses.RecommendationResult `json:"verse"`
}

// WeeklyDigest is the complete assembled week. Serialized field names are
// stable; downstream exporters and webhooks rely on them.
type WeeklyDigest struct {
	WeekStart   time.Time                   `json:"weekStart"`
	WeekEnd     time.Time                   `json:"weekEnd"`
	Days        []DayEntry                  `json:"days"`
	VerseOfWeek verses.RecommendationResult `json:"verseOfWeek"`
	Lifestyle   []string                    `json:"lifestyleRecommendations"`
}

// Observances flattens the week's detected observances in day order.
func (d WeeklyDigest) Observances() []observance.Observance {
	var all []observance.Observance
	for _, day := range d.Days {
		all = append(all, day.Observances...)
	}
	return all
}

// RunRecord is the self-describing record emitted to the result sink for
// every assembled week. Each record is independently replayable.
type RunRecord struct {
	RunID           string              `json:"runId"`
	GeneratedAt     time.Time           `json:"generatedAt"`
	WeekStart       string              `json:"weekStart"`
	WeekEnd         string              `json:"weekEnd"`
	ObservanceCount int                 `json:"observanceCount"`
	ObservanceNames []string            `json:"observanceNames"`
	DailyVerseIDs   map[string]string   `json:"dailyVerseIds"`
	VerseOfWeekID   string              `json:"verseOfWeekId"`
	Search          metrics.SearchUsage `json:"search,omitzero"`
}

// RunSink receives digest run records.
type RunSink interface {
	LogDigestRun(ctx context.Context, rec RunRecord) error
}

// Cache stores assembled digests keyed by week start date.
type Cache interface {
	Get(ctx context.Context, weekStart string) (WeeklyDigest, bool, error)
	Put(ctx context.Context, weekStart string, d WeeklyDigest) error
}
