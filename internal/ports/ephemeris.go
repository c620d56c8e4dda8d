package ports

import (
	"birth-chart-service/internal/domain"
	"context"
)

// Contract for the external ephemeris engine as the chart service
// consumes it: per-body ecliptic longitudes and the house computation.
type Ephemeris interface {
	// Return the ecliptic longitude in degrees for every tracked body
	// at the given Julian Day (UT).
	Positions(ctx context.Context, jdUT float64) (map[domain.Body]float64, error)

	// Compute house cusps and chart angles for the given instant and
	// location. hsys is a single-letter house system code (e.g. 'P').
	Houses(ctx context.Context, jdUT float64, lat float64, lon float64, hsys byte) (domain.Houses, error)

	// DataPath reports the configured ephemeris data directory.
	DataPath() string
}
