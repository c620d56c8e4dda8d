package ports

import (
	"birth-chart-service/internal/domain"
	"context"
)

// Port: a persistent cache of place-search results keyed by the raw
// query string. Implementations must treat a miss as (nil, false, nil).
type PlaceCache interface {
	Get(ctx context.Context, query string) ([]domain.PlaceCandidate, bool, error)
	Put(ctx context.Context, query string, candidates []domain.PlaceCandidate) error
}
