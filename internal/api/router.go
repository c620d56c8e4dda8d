package api

import (
	"birth-chart-service/internal/api/handlers"
	"birth-chart-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(geocoder ports.Geocoder, ephemeris ports.Ephemeris) http.Handler {
	mux := http.NewServeMux()

	placeHandler := &handlers.PlaceHandler{Geocoder: geocoder}
	chartHandler := &handlers.ChartHandler{Ephemeris: ephemeris}

	mux.HandleFunc("/", handlers.Home)
	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/resolve_place", placeHandler.Resolve)
	mux.HandleFunc("/api/chart", chartHandler.Compute)

	return requestIDMiddleware(loggingMiddleware(mux))
}
