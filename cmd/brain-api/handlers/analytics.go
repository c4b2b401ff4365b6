package handlers

import (
	"net/http"

	"github.com/wepopagani/Brain/internal/observability"
	"github.com/wepopagani/Brain/internal/startup"
)

// AnalyticsHandler serves the aggregated views over the startup table.
type AnalyticsHandler struct {
	logger   *observability.Logger
	store    *startup.Store
	startups *StartupHandler
}

// NewAnalyticsHandler creates an analytics handler. The startup handler
// supplies the shared lazy-load and no-data behavior.
func NewAnalyticsHandler(logger *observability.Logger, store *startup.Store, startups *StartupHandler) *AnalyticsHandler {
	return &AnalyticsHandler{
		logger:   logger.WithComponent("analytics"),
		store:    store,
		startups: startups,
	}
}

// Sectors handles GET /api/analytics/sectors.
func (h *AnalyticsHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	if !h.startups.ensureLoaded(w, r) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"analytics": startup.SectorAnalytics(h.store.Records()),
	})
}

// Funding handles GET /api/analytics/funding.
func (h *AnalyticsHandler) Funding(w http.ResponseWriter, r *http.Request) {
	if !h.startups.ensureLoaded(w, r) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"analytics": startup.FundingAnalytics(h.store.Records()),
	})
}
