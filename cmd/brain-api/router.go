// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wepopagani/Brain/cmd/brain-api/handlers"
	"github.com/wepopagani/Brain/cmd/brain-api/middleware"
	"github.com/wepopagani/Brain/internal/cache"
	"github.com/wepopagani/Brain/internal/config"
	"github.com/wepopagani/Brain/internal/knowledge"
	"github.com/wepopagani/Brain/internal/llm"
	"github.com/wepopagani/Brain/internal/observability"
	"github.com/wepopagani/Brain/internal/startup"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	provider := newProviderChain(logger, cfg)
	extractor := knowledge.NewExtractor()
	responseCache := knowledge.NewResponseCache(newCacheClient(logger, cfg), logger, knowledge.ResponseCacheConfig{
		TTL:     cfg.Cache.TTL,
		Enabled: true,
	})
	store := startup.NewStore(cfg.Data.CSVPath, logger)

	searchHandler := handlers.NewSearchHandler(logger, provider, extractor, responseCache)
	startupHandler := handlers.NewStartupHandler(logger, store)
	analyticsHandler := handlers.NewAnalyticsHandler(logger, store, startupHandler)
	dataHandler := handlers.NewDataHandler(logger, store)

	r.Route("/api", func(r chi.Router) {
		r.Post("/search", searchHandler.Analyze)
		r.Get("/health", searchHandler.Health)

		r.Get("/startups", startupHandler.List)
		r.Get("/startups/sector/{sector}", startupHandler.BySector)
		r.Get("/sectors/list", startupHandler.SectorList)
		r.Post("/search/startups", startupHandler.Search)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/sectors", analyticsHandler.Sectors)
			r.Get("/funding", analyticsHandler.Funding)
		})

		r.Route("/data", func(r chi.Router) {
			r.Get("/status", dataHandler.Status)
			r.Get("/columns", dataHandler.Columns)
		})
	})

	return r
}

// newProviderChain wires the primary provider when an API key is
// configured and always keeps the local fallback.
func newProviderChain(logger *observability.Logger, cfg *config.Config) llm.Provider {
	var providers []llm.Provider

	if cfg.LLM.OpenAI.APIKey != "" {
		primary, err := llm.NewOpenAI(llm.OpenAIConfig{
			APIKey:    cfg.LLM.OpenAI.APIKey,
			BaseURL:   cfg.LLM.OpenAI.BaseURL,
			Model:     cfg.LLM.OpenAI.Model,
			MaxTokens: cfg.LLM.OpenAI.MaxTokens,
			Timeout:   cfg.LLM.OpenAI.Timeout,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("primary provider unavailable")
		} else {
			providers = append(providers, primary)
		}
	} else {
		logger.Info().Msg("no API key configured, using local model only")
	}

	providers = append(providers, llm.NewOllama(llm.OllamaConfig{
		BaseURL: cfg.LLM.Ollama.BaseURL,
		Model:   cfg.LLM.Ollama.Model,
		Timeout: cfg.LLM.Ollama.Timeout,
	}))

	return llm.NewChain(logger, providers...)
}

// newCacheClient selects the cache backend, falling back to memory when
// Redis is unreachable.
func newCacheClient(logger *observability.Logger, cfg *config.Config) cache.Client {
	if cfg.Cache.Driver == "redis" {
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
		})
		if err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Cache.Redis.Addr).Msg("redis unavailable, using memory cache")
		} else {
			return client
		}
	}
	return cache.NewMemoryClient(cfg.Cache.MaxEntries)
}
