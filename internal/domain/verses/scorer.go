package verses

import (
	"strings"
	"unicode"
)

// Scorer is the matching capability behind the recommender. Implementations
// must be deterministic; ordering and tie-breaking stay in the recommender
// so any backend producing monotone scores yields reproducible results.
type Scorer interface {
	Score(query Query, record VerseRecord) float64
}

const substringWeight = 0.5

// TokenScorer counts case-insensitive tag overlap. When a record shares no
// tag with the query, a substring hit of a query token inside the meaning or
// deity text earns a smaller consolation weight, so substring-only matches
// always rank below any tag match.
type TokenScorer struct{}

// NewTokenScorer constructs the keyword backend.
func NewTokenScorer() TokenScorer {
	return TokenScorer{}
}

func (TokenScorer) Score(query Query, record VerseRecord) float64 {
	tags := make(map[string]struct{}, len(record.Tags))
	for _, tag := range record.Tags {
		tags[NormalizeToken(tag)] = struct{}{}
	}

	overlap := 0.0
	for _, token := range query.Tags {
		if _, ok := tags[token]; ok {
			overlap++
		}
	}
	if overlap > 0 {
		return overlap
	}

	haystack := strings.ToLower(record.Meaning + " " + record.Deity)
	for _, token := range query.Tags {
		if token != "" && strings.Contains(haystack, token) {
			return substringWeight
		}
	}
	return 0
}

// NewQuery normalizes raw tags into lowercase word tokens, dropping
// duplicates while preserving first-seen order.
func NewQuery(rawTags []string) Query {
	var tokens []string
	seen := make(map[string]struct{})
	for _, raw := range rawTags {
		for _, word := range splitWords(raw) {
			token := NormalizeToken(word)
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return Query{Tags: tokens}
}

// NormalizeToken lowercases and trims a single token.
func NormalizeToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitWords(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
