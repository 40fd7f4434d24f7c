package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribverse-backend/internal/domains/aiassist"
	"scribverse-backend/internal/shared"
)

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (g *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.reply, g.err
}

// memoryCache is a minimal in-process cache.Cache for tests.
type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (c *memoryCache) Ping(ctx context.Context) error { return nil }

func TestGetTopicsParsesJSONReply(t *testing.T) {
	gen := &fakeGenerator{reply: `["Go generics", "Edge computing", "WASM"]`}
	svc := NewAIService(gen, newMemoryCache())

	res, err := svc.GetTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go generics", "Edge computing", "WASM"}, res.Topics)
}

func TestGetTopicsStripsMarkdownFence(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n[\"One\", \"Two\"]\n```"}
	svc := NewAIService(gen, newMemoryCache())

	res, err := svc.GetTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, res.Topics)
}

func TestGetTopicsFallsBackToLineSplitting(t *testing.T) {
	gen := &fakeGenerator{reply: "1. First topic\n2. Second topic\n- Third topic"}
	svc := NewAIService(gen, newMemoryCache())

	res, err := svc.GetTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"First topic", "Second topic", "Third topic"}, res.Topics)
}

func TestGetTopicsServedFromCache(t *testing.T) {
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), shared.CacheKeyTrendingTopics, []string{"Cached"}, time.Hour))

	gen := &fakeGenerator{reply: `["Fresh"]`}
	svc := NewAIService(gen, cache)

	res, err := svc.GetTopics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Cached"}, res.Topics)
	assert.Zero(t, gen.calls)
}

func TestGetTopicsPropagatesGeneratorError(t *testing.T) {
	wantErr := errors.New("upstream down")
	svc := NewAIService(&fakeGenerator{err: wantErr}, newMemoryCache())

	_, err := svc.GetTopics(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestGenerateContentRequiresTitle(t *testing.T) {
	svc := NewAIService(&fakeGenerator{reply: "body"}, newMemoryCache())

	for _, title := range []string{"", "   "} {
		_, err := svc.GenerateContent(context.Background(), title)
		assert.ErrorIs(t, err, aiassist.ErrMissingTitle)
	}
}

func TestGenerateContentTrimsReply(t *testing.T) {
	svc := NewAIService(&fakeGenerator{reply: "\n\n# My Post\n\nBody text.\n"}, newMemoryCache())

	res, err := svc.GenerateContent(context.Background(), "My Post")
	require.NoError(t, err)
	assert.Equal(t, "My Post", res.Title)
	assert.Equal(t, "# My Post\n\nBody text.", res.Content)
}

func TestRefreshTopicsReplacesCache(t *testing.T) {
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), shared.CacheKeyTrendingTopics, []string{"Stale"}, time.Hour))

	svc := NewAIService(&fakeGenerator{reply: `["Fresh"]`}, cache)
	require.NoError(t, svc.RefreshTopics(context.Background()))

	var topics []string
	found, err := cache.Get(context.Background(), shared.CacheKeyTrendingTopics, &topics)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"Fresh"}, topics)
}
