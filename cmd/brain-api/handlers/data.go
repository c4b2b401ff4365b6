package handlers

import (
	"errors"
	"net/http"

	"github.com/wepopagani/Brain/internal/observability"
	"github.com/wepopagani/Brain/internal/startup"
)

const sampleHeadersPerCategory = 5

// DataHandler reports load status and the column categorization of the
// current table.
type DataHandler struct {
	logger *observability.Logger
	store  *startup.Store
}

// NewDataHandler creates a data-status handler.
func NewDataHandler(logger *observability.Logger, store *startup.Store) *DataHandler {
	return &DataHandler{
		logger: logger.WithComponent("data"),
		store:  store,
	}
}

// Status handles GET /api/data/status.
func (h *DataHandler) Status(w http.ResponseWriter, r *http.Request) {
	err := h.store.LoadIfNeeded(r.Context())
	if err != nil && !errors.Is(err, startup.ErrNoData) {
		writeError(w, http.StatusInternalServerError, "failed to load startup data", err.Error())
		return
	}

	snap := h.store.Current()
	status := map[string]interface{}{
		"csv_loaded": snap != nil,
		"csv_path":   h.store.CSVPath(),
	}
	if snap != nil {
		status["row_count"] = len(snap.Records)
		status["columns"] = snap.Raw.Headers
	}
	writeJSON(w, http.StatusOK, status)
}

// Columns handles GET /api/data/columns.
func (h *DataHandler) Columns(w http.ResponseWriter, r *http.Request) {
	err := h.store.LoadIfNeeded(r.Context())
	if err != nil {
		if errors.Is(err, startup.ErrNoData) {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"status":  "no_data",
				"message": "Dati startup non disponibili",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load startup data", err.Error())
		return
	}

	snap := h.store.Current()
	class := snap.Classification

	categories := make(map[string]int)
	for cat, size := range class.CategorySizes() {
		categories[string(cat)] = size
	}
	samples := make(map[string][]string)
	for cat, headers := range class.SampleHeaders(sampleHeadersPerCategory) {
		samples[string(cat)] = headers
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"total_columns":     len(snap.Raw.Headers),
			"total_rows":        len(snap.Raw.Rows),
			"column_categories": categories,
			"sample_columns":    samples,
		},
		"message": "Analisi colonne completata",
	})
}
