package domain

// A single geocoding match for a free-text place query.
// TZ is an IANA timezone name; providers that omit it fall back to "UTC".
// Candidates are produced fresh per query and carry no identity beyond
// their fields.
type PlaceCandidate struct {
	DisplayName string
	Lat         float64
	Lon         float64
	TZ          string
}
