package verses

import "github.com/yanqian/vedic-weekly/pkg/metrics"

// VerseRecord is one entry of the fixed corpus. The corpus is an ordered,
// read-only sequence supplied at process start; the domain never mutates it.
type VerseRecord struct {
	ID              string   `json:"id"`
	Devanagari      string   `json:"devanagari"`
	Transliteration string   `json:"transliteration"`
	Meaning         string   `json:"meaning"`
	Deity           string   `json:"deity,omitempty"`
	Source          string   `json:"source"`
	Tags            []string `json:"tags"`

	// Embedding is populated by corpus sources that store precomputed
	// vectors; the token backend ignores it.
	Embedding []float32 `json:"-"`
}

// Query is a normalized set of search tokens. Build one with NewQuery so
// every backend sees identical normalization.
type Query struct {
	Tags []string `json:"tags"`
}

// Joined renders the query as one space-separated string.
func (q Query) Joined() string {
	out := ""
	for i, tag := range q.Tags {
		if i > 0 {
			out += " "
		}
		out += tag
	}
	return out
}

// RecommendationResult pairs a matched verse with its score and the query
// that produced it. Created fresh per call, never persisted by the domain.
type RecommendationResult struct {
	Verse     VerseRecord `json:"verse"`
	Score     float64     `json:"score"`
	QueryTags []string    `json:"queryTags"`
	Fallback  bool        `json:"fallback,omitempty"`
}

// Recommendation is the full response of one lookup.
type Recommendation struct {
	Results []RecommendationResult `json:"results"`
	Usage   metrics.SearchUsage    `json:"usage"`
}
