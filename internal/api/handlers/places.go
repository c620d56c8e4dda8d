package handlers

import (
	"birth-chart-service/internal/api/dto"
	"birth-chart-service/internal/domain"
	"birth-chart-service/internal/ports"
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"
)

// PlaceHandler exposes free-text place resolution.
type PlaceHandler struct {
	Geocoder ports.Geocoder
}

// Resolve handles GET /api/resolve_place?q=<query>. The minimum query
// length is enforced before any network call; upstream failures map to
// 502 with the structured error body.
func (h *PlaceHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", "resolve_place")
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(q) < 2 {
		writeError(w, r, http.StatusBadRequest, "q must be at least 2 characters", "resolve_place")
		return
	}

	candidates, err := h.Geocoder.Search(r.Context(), q)
	if err != nil {
		log.Printf("resolve place failed: %v", err)

		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUpstreamGeocode) {
			status = http.StatusBadGateway
		}
		writeError(w, r, status, err.Error(), "resolve_place")
		return
	}

	res := make([]dto.PlaceCandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, dto.PlaceCandidateResponse{
			DisplayName: c.DisplayName,
			Lat:         c.Lat,
			Lon:         c.Lon,
			TZ:          c.TZ,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
