package handlers

import (
	"birth-chart-service/internal/api/dto"
	"birth-chart-service/internal/domain"
	"birth-chart-service/internal/ports"
	"birth-chart-service/internal/services"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type ChartHandler struct {
	Ephemeris ports.Ephemeris
}

// Compute handles POST /api/chart. It validates the typed request,
// normalizes the house-system letter, and runs the chart pipeline.
// Missing local_datetime or tz fails with 400 before any engine call;
// every other failure maps to 500 with the structured error body.
func (h *ChartHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", "chart")
		return
	}

	var req dto.ChartRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body", "chart")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object", "chart")
		return
	}

	if strings.TrimSpace(req.LocalDateTime) == "" {
		writeError(w, r, http.StatusBadRequest, "local_datetime is required", "chart")
		return
	}
	if strings.TrimSpace(req.TZ) == "" {
		writeError(w, r, http.StatusBadRequest, "tz is required", "chart")
		return
	}
	if req.Lat < -90 || req.Lat > 90 {
		writeError(w, r, http.StatusBadRequest, "lat must be between -90 and 90", "chart")
		return
	}
	if req.Lon < -180 || req.Lon > 180 {
		writeError(w, r, http.StatusBadRequest, "lon must be between -180 and 180", "chart")
		return
	}

	svcReq := services.ComputeChartRequest{
		LocalDateTime: strings.TrimSpace(req.LocalDateTime),
		TZ:            strings.TrimSpace(req.TZ),
		Lat:           req.Lat,
		Lon:           req.Lon,
		HouseSystem:   normalizeHouseSystem(req.HouseSystem),
	}

	chart, err := services.ComputeChart(r.Context(), svcReq, h.Ephemeris)
	if err != nil {
		log.Printf("compute chart failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, err.Error(), "chart")
		return
	}

	writeJSON(w, r, http.StatusOK, toChartResponse(chart))
}

// normalizeHouseSystem resolves the request field to a single upper-case
// ASCII letter, defaulting to 'P' (Placidus) when absent or malformed.
func normalizeHouseSystem(s string) byte {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 'P'
	}

	c := s[0]
	if c < 'A' || c > 'Z' {
		return 'P'
	}
	return c
}

func toChartResponse(chart *domain.Chart) dto.ChartResponse {
	planets := make(map[string]dto.ZodiacPositionResponse, len(chart.Planets))
	for body, pos := range chart.Planets {
		planets[string(body)] = toPositionResponse(pos)
	}

	cusps := make(map[string]dto.ZodiacPositionResponse, len(chart.HouseCusps))
	for house, pos := range chart.HouseCusps {
		cusps[house] = toPositionResponse(pos)
	}

	var angles dto.ChartAnglesResponse
	if chart.Angles.Asc != nil {
		asc := toPositionResponse(*chart.Angles.Asc)
		angles.Asc = &asc
	}
	if chart.Angles.MC != nil {
		mc := toPositionResponse(*chart.Angles.MC)
		angles.MC = &mc
	}

	return dto.ChartResponse{
		Input: dto.ChartInputResponse{
			LocalDateTime: chart.Input.LocalDateTime,
			TZ:            chart.Input.TZ,
			UTCDateTime:   chart.Input.UTCDateTime.Format(time.RFC3339),
			Lat:           chart.Input.Lat,
			Lon:           chart.Input.Lon,
			HouseSystem:   chart.Input.HouseSystem,
			JulianDayUT:   chart.Input.JulianDayUT,
			EphePath:      chart.Input.EphePath,
		},
		Angles:     angles,
		Planets:    planets,
		HouseCusps: cusps,
	}
}

func toPositionResponse(pos domain.ZodiacPosition) dto.ZodiacPositionResponse {
	return dto.ZodiacPositionResponse{
		Longitude:    pos.Longitude,
		Sign:         pos.Sign,
		DegreeInSign: pos.DegreeInSign,
	}
}
