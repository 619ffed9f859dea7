package digestcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/vedic-weekly/internal/domain/digest"
)

// ValkeyCache stores assembled digests in a Valkey-compatible database so
// repeated requests for the same week skip recomputation across restarts.
type ValkeyCache struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyCache constructs the cache.
func NewValkeyCache(client valkey.Client, prefix string, ttl time.Duration) *ValkeyCache {
	if prefix == "" {
		prefix = "digest"
	}
	return &ValkeyCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *ValkeyCache) Get(ctx context.Context, weekStart string) (digest.WeeklyDigest, bool, error) {
	cmd := c.client.B().Get().Key(c.weekKey(weekStart)).Build()
	payload, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return digest.WeeklyDigest{}, false, nil
		}
		return digest.WeeklyDigest{}, false, err
	}
	var cached digest.WeeklyDigest
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return digest.WeeklyDigest{}, false, err
	}
	return cached, true, nil
}

func (c *ValkeyCache) Put(ctx context.Context, weekStart string, d digest.WeeklyDigest) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	builder := c.client.B().Set().Key(c.weekKey(weekStart)).Value(string(payload))
	var cmd valkey.Completed
	if c.ttl > 0 {
		ttl := c.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) weekKey(weekStart string) string {
	return fmt.Sprintf("%s:week:%s", c.prefix, weekStart)
}

var _ digest.Cache = (*ValkeyCache)(nil)
