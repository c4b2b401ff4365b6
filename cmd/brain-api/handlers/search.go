package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wepopagani/Brain/internal/knowledge"
	"github.com/wepopagani/Brain/internal/llm"
	"github.com/wepopagani/Brain/internal/observability"
)

// SearchHandler handles sector analysis queries: prompt construction,
// the provider chain, and knowledge-graph extraction.
type SearchHandler struct {
	logger    *observability.Logger
	provider  llm.Provider
	extractor *knowledge.Extractor
	cache     *knowledge.ResponseCache
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(logger *observability.Logger, provider llm.Provider, extractor *knowledge.Extractor, cache *knowledge.ResponseCache) *SearchHandler {
	return &SearchHandler{
		logger:    logger.WithComponent("search"),
		provider:  provider,
		extractor: extractor,
		cache:     cache,
	}
}

// SearchRequestDTO is the request body for analysis queries.
type SearchRequestDTO struct {
	Query string `json:"query"`
}

// SearchResponseDTO is the analysis response envelope.
type SearchResponseDTO struct {
	Status         string           `json:"status"`
	Query          string           `json:"query"`
	KnowledgeGraph *knowledge.Graph `json:"knowledge_graph"`
	RawResponse    string           `json:"raw_response"`
}

// Analyze handles POST /api/search.
func (h *SearchHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req SearchRequestDTO
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required", "")
		return
	}

	traceID := uuid.NewString()
	ctx := observability.ContextWithTraceID(r.Context(), traceID)
	logger := h.logger.WithContext(ctx)

	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx, req.Query); ok {
			logger.Debug().Str("query", req.Query).Msg("serving cached graph")
			writeJSON(w, http.StatusOK, SearchResponseDTO{
				Status:         "success",
				Query:          req.Query,
				KnowledgeGraph: cached.Graph,
				RawResponse:    cached.RawResponse,
			})
			return
		}
	}

	response, err := h.provider.Query(ctx, llm.SectorPrompt(req.Query))
	if err != nil {
		logger.Error().Err(err).Str("query", req.Query).Msg("model query failed")
		status := http.StatusInternalServerError
		if errors.Is(err, llm.ErrAllProvidersFailed) {
			writeError(w, status, "failed to query AI", err.Error())
		} else {
			writeError(w, status, "analysis failed", err.Error())
		}
		return
	}

	graph := h.extractor.Extract(response, req.Query)

	logger.Info().
		Str("query", req.Query).
		Int("nodes", len(graph.Nodes)).
		Int("insights", len(graph.Insights)).
		Msg("knowledge graph extracted")

	if h.cache != nil {
		_ = h.cache.Set(ctx, req.Query, graph, response)
	}

	writeJSON(w, http.StatusOK, SearchResponseDTO{
		Status:         "success",
		Query:          req.Query,
		KnowledgeGraph: graph,
		RawResponse:    response,
	})
}

// Health handles GET /api/health by probing the provider chain.
func (h *SearchHandler) Health(w http.ResponseWriter, r *http.Request) {
	testResponse, err := h.provider.Query(r.Context(), llm.HealthPrompt)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "unhealthy",
			"model":  "disconnected",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":        "healthy",
		"model":         "connected",
		"test_response": testResponse,
	})
}
