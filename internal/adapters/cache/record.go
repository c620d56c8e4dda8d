package cache

import (
	"birth-chart-service/internal/domain"
	"encoding/json"
	"fmt"
)

// Stored form of one candidate. Domain types stay free of JSON tags;
// the cache owns its own persistence shape.
type candidateRecord struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	TZ          string  `json:"tz"`
}

func encodeCandidates(candidates []domain.PlaceCandidate) ([]byte, error) {
	records := make([]candidateRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, candidateRecord{
			DisplayName: c.DisplayName,
			Lat:         c.Lat,
			Lon:         c.Lon,
			TZ:          c.TZ,
		})
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode place candidates: %w", err)
	}
	return payload, nil
}

func decodeCandidates(payload []byte) ([]domain.PlaceCandidate, error) {
	var records []candidateRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode place candidates: %w", err)
	}

	out := make([]domain.PlaceCandidate, 0, len(records))
	for _, r := range records {
		out = append(out, domain.PlaceCandidate{
			DisplayName: r.DisplayName,
			Lat:         r.Lat,
			Lon:         r.Lon,
			TZ:          r.TZ,
		})
	}
	return out, nil
}
