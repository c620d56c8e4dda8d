package ports

import (
	"birth-chart-service/internal/domain"
	"context"
)

// Port: a boundary for resolving free-text place names to candidates.
type Geocoder interface {
	// Return geocoding candidates for the query, best match first.
	// A query with no matches yields an empty slice, not an error.
	Search(ctx context.Context, query string) ([]domain.PlaceCandidate, error)
}
