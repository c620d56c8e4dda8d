package domain

import "errors"

// Error kinds surfaced by the chart pipeline. Handlers translate these
// into HTTP statuses in one place; everything else wraps them with %w.
var (
	ErrEphemerisConfig = errors.New("ephemeris data not configured")
	ErrBadDateTime     = errors.New("invalid local datetime")
	ErrUnknownTimezone = errors.New("unknown timezone")
	ErrUpstreamGeocode = errors.New("geocoding upstream failure")
	ErrEngineShape     = errors.New("unexpected ephemeris result shape")
)
