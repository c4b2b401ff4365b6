package knowledge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wepopagani/Brain/internal/cache"
)

func newTestCache(t *testing.T) *ResponseCache {
	t.Helper()
	client := cache.NewMemoryClient(100)
	t.Cleanup(func() { client.Close() })

	return NewResponseCache(client, nil, ResponseCacheConfig{
		TTL:     time.Minute,
		Enabled: true,
	})
}

func TestResponseCache_GetSet(t *testing.T) {
	rc := newTestCache(t)
	ctx := context.Background()

	_, ok := rc.Get(ctx, "fintech")
	assert.False(t, ok)

	graph := NewExtractor().Extract("", "fintech")
	require.NoError(t, rc.Set(ctx, "fintech", graph, "raw text"))

	cached, ok := rc.Get(ctx, "fintech")
	require.True(t, ok)
	assert.Equal(t, graph, cached.Graph)
	assert.Equal(t, "raw text", cached.RawResponse)
	assert.False(t, cached.CachedAt.IsZero())
}

func TestResponseCache_KeyNormalization(t *testing.T) {
	rc := newTestCache(t)

	assert.Equal(t, rc.CacheKey("  Fintech "), rc.CacheKey("fintech"))
	assert.NotEqual(t, rc.CacheKey("fintech"), rc.CacheKey("cleantech"))
}

func TestResponseCache_Disabled(t *testing.T) {
	client := cache.NewMemoryClient(100)
	t.Cleanup(func() { client.Close() })

	rc := NewResponseCache(client, nil, ResponseCacheConfig{Enabled: false})
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "fintech", &Graph{}, "raw"))
	_, ok := rc.Get(ctx, "fintech")
	assert.False(t, ok)
}
