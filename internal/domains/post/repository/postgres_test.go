package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scribverse-backend/internal/shared"
)

// recordingCache captures invalidation calls without a Redis backend.
type recordingCache struct {
	patterns []string
	deleted  []string
}

func (c *recordingCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *recordingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (c *recordingCache) Delete(ctx context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func (c *recordingCache) DeletePattern(ctx context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func (c *recordingCache) Ping(ctx context.Context) error { return nil }

func TestInvalidateListingsDropsAllListingKeys(t *testing.T) {
	cache := &recordingCache{}
	repo := &postgresRepository{cache: cache}

	repo.invalidateListings(context.Background())

	// One pattern sweep covers both listing keys; the trending-topics key
	// lives outside the prefix and is untouched.
	assert.Equal(t, []string{shared.CacheKeyListingsPattern}, cache.patterns)
	assert.Empty(t, cache.deleted)
}
