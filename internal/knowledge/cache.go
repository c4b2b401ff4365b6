package knowledge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wepopagani/Brain/internal/cache"
	"github.com/wepopagani/Brain/internal/observability"
)

// ResponseCache caches extracted graphs per query so repeated searches
// skip the model round-trip.
type ResponseCache struct {
	client cache.Client
	logger *observability.Logger
	config ResponseCacheConfig
}

// ResponseCacheConfig configures the response cache.
type ResponseCacheConfig struct {
	TTL       time.Duration
	KeyPrefix string
	Enabled   bool
}

// DefaultResponseCacheConfig returns default cache configuration.
func DefaultResponseCacheConfig() ResponseCacheConfig {
	return ResponseCacheConfig{
		TTL:       5 * time.Minute,
		KeyPrefix: "knowledge:graph:",
		Enabled:   true,
	}
}

// NewResponseCache creates a response cache over the given client.
func NewResponseCache(client cache.Client, logger *observability.Logger, config ResponseCacheConfig) *ResponseCache {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "knowledge:graph:"
	}
	if config.TTL == 0 {
		config.TTL = 5 * time.Minute
	}
	if logger == nil {
		logger = observability.DefaultLogger()
	}

	return &ResponseCache{
		client: client,
		logger: logger.WithComponent("knowledge-cache"),
		config: config,
	}
}

// CachedResult is one cached search outcome: the graph plus the raw
// response it was extracted from.
type CachedResult struct {
	Graph       *Graph    `json:"graph"`
	RawResponse string    `json:"raw_response"`
	CachedAt    time.Time `json:"cached_at"`
}

// CacheKey derives a deterministic key from the normalized query.
func (c *ResponseCache) CacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return c.config.KeyPrefix + hex.EncodeToString(sum[:16])
}

// Get returns the cached result for a query, if any.
func (c *ResponseCache) Get(ctx context.Context, query string) (*CachedResult, bool) {
	if !c.config.Enabled || c.client == nil {
		return nil, false
	}

	key := c.CacheKey(query)
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			c.logger.Debug().Err(err).Str("key", key).Msg("cache get error")
		}
		return nil, false
	}

	var cached CachedResult
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal cached graph")
		return nil, false
	}

	c.logger.Debug().Str("key", key).Msg("cache hit")
	return &cached, true
}

// Set caches a search outcome.
func (c *ResponseCache) Set(ctx context.Context, query string, graph *Graph, rawResponse string) error {
	if !c.config.Enabled || c.client == nil {
		return nil
	}

	cached := CachedResult{
		Graph:       graph,
		RawResponse: rawResponse,
		CachedAt:    time.Now(),
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshal cached graph: %w", err)
	}

	key := c.CacheKey(query)
	if err := c.client.Set(ctx, key, data, c.config.TTL); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to cache graph")
		return err
	}

	return nil
}
