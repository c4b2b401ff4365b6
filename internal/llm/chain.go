package llm

import (
	"context"
	"fmt"

	"github.com/wepopagani/Brain/internal/observability"
)

// Chain tries each provider in order and returns the first answer. The
// documented fallback is primary then local; there is no retry beyond
// that switch.
type Chain struct {
	providers []Provider
	logger    *observability.Logger
}

// NewChain creates a provider chain. Nil providers are skipped, so the
// primary can be left out when no API key is configured.
func NewChain(logger *observability.Logger, providers ...Provider) *Chain {
	if logger == nil {
		logger = observability.DefaultLogger()
	}

	chain := &Chain{logger: logger.WithComponent("llm")}
	for _, p := range providers {
		if p != nil {
			chain.providers = append(chain.providers, p)
		}
	}
	return chain
}

// Query asks each provider in turn. When every provider fails the
// result wraps ErrAllProvidersFailed.
func (c *Chain) Query(ctx context.Context, prompt string) (string, error) {
	if len(c.providers) == 0 {
		return "", fmt.Errorf("%w: no providers configured", ErrAllProvidersFailed)
	}

	var lastErr error
	for _, p := range c.providers {
		response, err := p.Query(ctx, prompt)
		if err == nil {
			return response, nil
		}

		lastErr = err
		c.logger.Warn().Err(err).Str("provider", p.Name()).Msg("provider failed, trying next")
	}

	return "", fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// Name identifies the chain in logs.
func (c *Chain) Name() string {
	return "chain"
}

// Providers returns the names of the configured providers, in order.
func (c *Chain) Providers() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Ensure the chain is itself usable as a provider.
var _ Provider = (*Chain)(nil)
