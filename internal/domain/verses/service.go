package verses

import (
	"context"
	"log/slog"
	"sort"
	"time"

	apperrors "github.com/yanqian/vedic-weekly/pkg/errors"
	"github.com/yanqian/vedic-weekly/pkg/metrics"
)

// Recommender scores the corpus against query tags and returns the best
// matches. Results are deterministic: identical corpus and tags produce
// identical ordered output across invocations and process restarts.
type Recommender interface {
	Recommend(ctx context.Context, tags []string, topK int) (Recommendation, error)
}

type recommender struct {
	corpus       []VerseRecord
	scorer       Scorer
	defaultVerse VerseRecord
	logger       *slog.Logger
	now          func() time.Time
}

// NewRecommender wires up the verse domain. The corpus must not be empty:
// the zero-match fallback needs at least one record to hand out. When
// defaultVerseID is empty the first corpus entry becomes the fallback.
func NewRecommender(corpus []VerseRecord, scorer Scorer, defaultVerseID string, logger *slog.Logger) (Recommender, error) {
	if len(corpus) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeCorpusEmpty, "verse corpus is empty", nil)
	}

	fallback := corpus[0]
	if defaultVerseID != "" {
		found := false
		for _, rec := range corpus {
			if rec.ID == defaultVerseID {
				fallback = rec
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "default verse id not present in corpus", nil)
		}
	}

	return &recommender{
		corpus:       corpus,
		scorer:       scorer,
		defaultVerse: fallback,
		logger:       logger.With("component", "verses.recommender"),
		now:          time.Now,
	}, nil
}

func (r *recommender) Recommend(ctx context.Context, tags []string, topK int) (Recommendation, error) {
	if topK < 1 {
		return Recommendation{}, apperrors.Wrap(apperrors.CodeInvalidInput, "topK must be at least 1", nil)
	}
	if err := ctx.Err(); err != nil {
		return Recommendation{}, apperrors.Wrap(apperrors.CodeMatchError, "recommendation canceled", err)
	}

	query := NewQuery(tags)
	start := r.now()

	type scored struct {
		record VerseRecord
		score  float64
	}
	candidates := make([]scored, 0, len(r.corpus))
	for _, rec := range r.corpus {
		if s := r.scorer.Score(query, rec); s > 0 {
			candidates = append(candidates, scored{record: rec, score: s})
		}
	}
	// Stable sort keeps corpus insertion order as the tie-break, which is
	// what makes logged runs replayable.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	usage := metrics.SearchUsage{
		Query:      query.Joined(),
		Candidates: len(candidates),
		LatencyMs:  float64(r.now().Sub(start).Microseconds()) / 1000,
	}

	if len(candidates) == 0 {
		usage.Fallback = true
		r.logger.Debug("no verse matched, using default", "query", usage.Query)
		return Recommendation{
			Results: []RecommendationResult{{
				Verse:     r.defaultVerse,
				Score:     0,
				QueryTags: query.Tags,
				Fallback:  true,
			}},
			Usage: usage,
		}, nil
	}

	if topK > len(candidates) {
		topK = len(candidates)
	}
	results := make([]RecommendationResult, 0, topK)
	for _, c := range candidates[:topK] {
		results = append(results, RecommendationResult{
			Verse:     c.record,
			Score:     c.score,
			QueryTags: query.Tags,
		})
	}
	return Recommendation{Results: results, Usage: usage}, nil
}
