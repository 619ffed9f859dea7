package match

import (
	"math"
	"strings"

	"github.com/yanqian/vedic-weekly/internal/domain/verses"
)

// VectorScorer scores a verse by cosine similarity between the embedded
// query and the verse's embedding. Records loaded with a stored embedding
// (Postgres corpus) use it directly; the rest are embedded on the fly from
// their matchable text.
type VectorScorer struct {
	embedder Embedder
}

// NewVectorScorer constructs the dense similarity backend.
func NewVectorScorer(embedder Embedder) *VectorScorer {
	return &VectorScorer{embedder: embedder}
}

func (s *VectorScorer) Score(query verses.Query, record verses.VerseRecord) float64 {
	if len(query.Tags) == 0 {
		return 0
	}
	queryVec := s.embedder.Embed(query.Joined())

	recordVec := record.Embedding
	if len(recordVec) != len(queryVec) {
		recordVec = s.embedder.Embed(recordText(record))
	}
	return cosine(queryVec, recordVec)
}

func recordText(record verses.VerseRecord) string {
	parts := append([]string{record.Meaning, record.Deity}, record.Tags...)
	return strings.Join(parts, " ")
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

var _ verses.Scorer = (*VectorScorer)(nil)
