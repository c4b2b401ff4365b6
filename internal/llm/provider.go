// Package llm provides model providers for the sector analysis path:
// an OpenAI-compatible primary and a local Ollama fallback.
package llm

import (
	"context"
	"errors"
)

// ErrAllProvidersFailed indicates that every configured provider failed
// to answer. There is no further fallback; callers surface this as a
// hard failure.
var ErrAllProvidersFailed = errors.New("no model provider responded")

// Provider answers a natural-language prompt with a natural-language
// response. The core depends on nothing beyond one string in, one
// string out.
type Provider interface {
	Query(ctx context.Context, prompt string) (string, error)
	Name() string
}
