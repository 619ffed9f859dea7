package digestcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/vedic-weekly/internal/domain/digest"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := NewMemoryCache(0)
	stored := digest.WeeklyDigest{
		WeekStart: time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC),
		WeekEnd:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	_, found, err := cache.Get(context.Background(), "2025-01-26")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, cache.Put(context.Background(), "2025-01-26", stored))

	got, found, err := cache.Get(context.Background(), "2025-01-26")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, stored, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	current := time.Date(2025, 1, 26, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	require.NoError(t, cache.Put(context.Background(), "2025-01-26", digest.WeeklyDigest{WeekStart: time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC)}))

	_, found, err := cache.Get(context.Background(), "2025-01-26")
	require.NoError(t, err)
	require.True(t, found)

	current = current.Add(2 * time.Minute)

	_, found, err = cache.Get(context.Background(), "2025-01-26")
	require.NoError(t, err)
	require.False(t, found)
}
