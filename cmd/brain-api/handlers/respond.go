// Package handlers provides HTTP handlers for the Brain API.
package handlers

import (
	"encoding/json"
	"net/http"
)

// decodeJSON decodes a request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeJSON encodes a payload with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, message, detail string) {
	resp := map[string]string{
		"status": "error",
		"error":  message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	writeJSON(w, status, resp)
}
