package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// writeError emits the structured error body `{error, where}` used by
// both API endpoints. where names the failing endpoint.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, where string) {
	body := map[string]string{"error": msg}
	if where != "" {
		body["where"] = where
	}
	writeJSON(w, r, status, body)
}
