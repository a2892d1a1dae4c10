package membersapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v with the given status. Encoding failures are
// unrecoverable at this point; the status line has already been sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetailError sends the standard single-message error body.
func writeDetailError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeNotFound sends the canonical 404 body.
func writeNotFound(w http.ResponseWriter) {
	writeDetailError(w, http.StatusNotFound, "Not found.")
}

// writeFieldErrors sends a 400 with per-field validation messages.
func writeFieldErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, fields)
}
