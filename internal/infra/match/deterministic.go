package match

import "hash/fnv"

const defaultDimension = 32

// Embedder turns text into a fixed-dimension vector. Implementations must
// be pure: the recommender's reproducibility guarantee extends to whatever
// backend computes the scores.
type Embedder interface {
	Embed(text string) []float32
}

// DeterministicEmbedder hashes text into a pseudo-random vector, giving the
// vector backend stable behavior with no model inference and no network.
type DeterministicEmbedder struct {
	dim int
}

// NewDeterministicEmbedder constructs the embedder.
func NewDeterministicEmbedder(dim int) *DeterministicEmbedder {
	if dim <= 0 {
		dim = defaultDimension
	}
	return &DeterministicEmbedder{dim: dim}
}

// Embed converts text into a vector seeded by its FNV hash.
func (e *DeterministicEmbedder) Embed(text string) []float32 {
	vector := make([]float32, e.dim)
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(text))
	seed := hash.Sum64()
	for i := 0; i < e.dim; i++ {
		seed = seed*1099511628211 + 1469598103934665603
		vector[i] = float32(seed%997) / 997.0
	}
	return vector
}

var _ Embedder = (*DeterministicEmbedder)(nil)
