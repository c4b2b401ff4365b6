package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wepopagani/Brain/internal/observability"
	"github.com/wepopagani/Brain/internal/startup"
)

const defaultListLimit = 50

// StartupHandler serves the normalized startup table: listings,
// per-sector views, and the sector index.
type StartupHandler struct {
	logger *observability.Logger
	store  *startup.Store
}

// NewStartupHandler creates a startup-data handler.
func NewStartupHandler(logger *observability.Logger, store *startup.Store) *StartupHandler {
	return &StartupHandler{
		logger: logger.WithComponent("startups"),
		store:  store,
	}
}

// List handles GET /api/startups.
func (h *StartupHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoaded(w, r) {
		return
	}

	records := h.store.Records()
	limit := queryLimit(r, defaultListLimit)

	page := records
	if len(page) > limit {
		page = page[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"count":    len(page),
		"total":    len(records),
		"startups": page,
	})
}

// BySector handles GET /api/startups/sector/{sector}.
func (h *StartupHandler) BySector(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoaded(w, r) {
		return
	}

	sector := chi.URLParam(r, "sector")
	limit := queryLimit(r, defaultListLimit)

	matched := startup.BySector(h.store.Records(), sector)
	if len(matched) == 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "no_matches",
			"sector":   sector,
			"message":  "Nessuna startup trovata per questo settore",
			"startups": []startup.Record{},
		})
		return
	}

	page := matched
	if len(page) > limit {
		page = page[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "success",
		"sector":          sector,
		"count":           len(page),
		"total_in_sector": len(matched),
		"startups":        page,
	})
}

// SectorList handles GET /api/sectors/list.
func (h *StartupHandler) SectorList(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoaded(w, r) {
		return
	}

	sectors := startup.SectorCounts(h.store.Records())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "success",
		"total_sectors": len(sectors),
		"sectors":       sectors,
	})
}

// Search handles POST /api/search/startups.
func (h *StartupHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !h.ensureLoaded(w, r) {
		return
	}

	var req SearchRequestDTO
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	matched := startup.Search(h.store.Records(), req.Query, defaultListLimit)
	h.logger.Debug().Str("query", req.Query).Int("matches", len(matched)).Msg("startup search")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"query":    req.Query,
		"count":    len(matched),
		"startups": matched,
	})
}

// ensureLoaded lazily loads the table and writes the no-data envelope
// when the CSV is missing. Returns false when the request is already
// answered.
func (h *StartupHandler) ensureLoaded(w http.ResponseWriter, r *http.Request) bool {
	err := h.store.LoadIfNeeded(r.Context())
	if err == nil {
		return true
	}

	if errors.Is(err, startup.ErrNoData) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "no_data",
			"message":  "Dati startup non disponibili",
			"startups": []startup.Record{},
		})
		return false
	}

	h.logger.Error().Err(err).Str("csv_path", h.store.CSVPath()).Msg("table load failed")
	writeError(w, http.StatusInternalServerError, "failed to load startup data", err.Error())
	return false
}

// queryLimit parses ?limit= with a default; non-positive and malformed
// values fall back.
func queryLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
