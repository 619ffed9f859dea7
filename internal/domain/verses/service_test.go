package verses

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/vedic-weekly/pkg/errors"
)

func testCorpus() []VerseRecord {
	return []VerseRecord{
		{ID: "bg-2-47", Source: "Bhagavad Gita 2.47", Meaning: "You have a right to action alone, never to its fruits.", Deity: "Krishna", Tags: []string{"karma", "duty", "detachment"}},
		{ID: "bg-9-22", Source: "Bhagavad Gita 9.22", Meaning: "To those devoted I carry what they lack and preserve what they have.", Deity: "Vishnu", Tags: []string{"vishnu", "devotion", "ekadashi"}},
		{ID: "vs-pitru", Source: "Taittiriya Upanishad 1.11", Meaning: "Honor the ancestors; let the mother and father be as gods.", Deity: "Pitrus", Tags: []string{"pitru", "ancestors", "amavasya"}},
		{ID: "ganapati", Source: "Ganapati Atharvashirsha", Meaning: "Salutations to the remover of obstacles.", Deity: "Ganesha", Tags: []string{"ganesha", "obstacles", "chaturthi"}},
	}
}

func newTestRecommender(t *testing.T, defaultID string) Recommender {
	t.Helper()
	rec, err := NewRecommender(testCorpus(), NewTokenScorer(), defaultID, discardLogger())
	require.NoError(t, err)
	return rec
}

func TestRecommendRanksByTagOverlap(t *testing.T) {
	rec := newTestRecommender(t, "")

	got, err := rec.Recommend(context.Background(), []string{"Ekadashi", "Vishnu", "devotion"}, 2)
	require.NoError(t, err)
	require.Len(t, got.Results, 2)
	require.Equal(t, "bg-9-22", got.Results[0].Verse.ID)
	require.Equal(t, 3.0, got.Results[0].Score)
}

func TestRecommendDeterministicAcrossInvocations(t *testing.T) {
	tags := []string{"amavasya", "pitru", "tarpanam"}

	first, err := newTestRecommender(t, "").Recommend(context.Background(), tags, 3)
	require.NoError(t, err)
	// A fresh recommender over the same corpus stands in for a process
	// restart.
	second, err := newTestRecommender(t, "").Recommend(context.Background(), tags, 3)
	require.NoError(t, err)

	require.Equal(t, first.Results, second.Results)
}

func TestRecommendTieBreaksByInsertionOrder(t *testing.T) {
	rec := newTestRecommender(t, "")

	// "devotion" appears as a tag on bg-9-22 only; "karma" on bg-2-47 only.
	// Querying both yields a score tie resolved by corpus order.
	got, err := rec.Recommend(context.Background(), []string{"karma", "devotion"}, 2)
	require.NoError(t, err)
	require.Len(t, got.Results, 2)
	require.Equal(t, "bg-2-47", got.Results[0].Verse.ID)
	require.Equal(t, "bg-9-22", got.Results[1].Verse.ID)
}

func TestRecommendFallsBackToDefaultVerse(t *testing.T) {
	rec := newTestRecommender(t, "bg-2-47")

	got, err := rec.Recommend(context.Background(), []string{"zzz", "qqq"}, 1)
	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	require.True(t, got.Results[0].Fallback)
	require.Equal(t, "bg-2-47", got.Results[0].Verse.ID)
	require.True(t, got.Usage.Fallback)
}

func TestRecommendEmptyCorpusRejected(t *testing.T) {
	_, err := NewRecommender(nil, NewTokenScorer(), "", discardLogger())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeCorpusEmpty))
}

func TestRecommendUnknownDefaultRejected(t *testing.T) {
	_, err := NewRecommender(testCorpus(), NewTokenScorer(), "missing", discardLogger())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestRecommendTopKBounds(t *testing.T) {
	rec := newTestRecommender(t, "")

	_, err := rec.Recommend(context.Background(), []string{"karma"}, 0)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	got, err := rec.Recommend(context.Background(), []string{"karma"}, 10)
	require.NoError(t, err)
	require.Len(t, got.Results, 1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
