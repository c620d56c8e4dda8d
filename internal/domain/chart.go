package domain

import "time"

// Normalized house computation output. Cusps holds the ecliptic
// longitude of the cusp of houses 1 through 12. Asc and MC are nil when
// the engine build did not return angles.
type Houses struct {
	Cusps [12]float64
	Asc   *float64
	MC    *float64
}

// ChartInput echoes the normalized inputs a chart was computed from.
type ChartInput struct {
	LocalDateTime string
	TZ            string
	UTCDateTime   time.Time
	Lat           float64
	Lon           float64
	HouseSystem   string
	JulianDayUT   float64
	EphePath      string
}

// ChartAngles holds the two chart angles when the engine returned them.
type ChartAngles struct {
	Asc *ZodiacPosition
	MC  *ZodiacPosition
}

// A fully computed birth chart. Built once per request, returned,
// discarded; nothing here is persisted.
type Chart struct {
	Input      ChartInput
	Angles     ChartAngles
	Planets    map[Body]ZodiacPosition
	HouseCusps map[string]ZodiacPosition
}
