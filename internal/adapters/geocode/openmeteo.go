package geocode

import (
	"birth-chart-service/internal/domain"
	"birth-chart-service/internal/platform/obs"
	"birth-chart-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// OpenMeteoClient implements the Geocoder port using the Open-Meteo
// geocoding API (free, no key).
//
// It coordinates:
//   - Query building against /v1/search
//   - Response mapping into PlaceCandidates
//   - Optional persistent caching of search results
//
// Each lookup is a single attempt with a fixed timeout; failures are
// reported to the caller, never retried.
type OpenMeteoClient struct {
	session *http.Client
	baseURL string
	cache   ports.PlaceCache
}

// NewOpenMeteoClient returns a client with the production endpoint and
// a 20-second request timeout. cache may be nil to disable caching.
func NewOpenMeteoClient(cache ports.PlaceCache) *OpenMeteoClient {
	return &OpenMeteoClient{
		session: &http.Client{Timeout: 20 * time.Second},
		baseURL: "https://geocoding-api.open-meteo.com",
		cache:   cache,
	}
}

type searchResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// Search resolves a free-text place name into ordered candidates.
// Zero matches yield an empty slice, not an error.
func (c *OpenMeteoClient) Search(ctx context.Context, query string) (_ []domain.PlaceCandidate, err error) {
	defer obs.Time(ctx, "openmeteo.Search")(&err)

	if c.cache != nil {
		cached, ok, err := c.cache.Get(ctx, query)
		if err != nil {
			log.Printf("place cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/search", nil)
	if err != nil {
		return nil, fmt.Errorf("geocode search: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("name", query)
	q.Set("count", "8")
	q.Set("language", "en")
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamGeocode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrUpstreamGeocode, resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamGeocode, err)
	}

	out := make([]domain.PlaceCandidate, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		tz := r.Timezone
		if tz == "" {
			tz = "UTC"
		}

		out = append(out, domain.PlaceCandidate{
			DisplayName: displayName(r.Name, r.Admin1, r.Country),
			Lat:         r.Latitude,
			Lon:         r.Longitude,
			TZ:          tz,
		})
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, query, out); err != nil {
			log.Printf("place cache write failed: %v", err)
		}
	}

	return out, nil
}

// displayName builds "{name}, {admin-region} {country}" with empty
// segments and duplicate whitespace collapsed and any trailing comma
// stripped.
func displayName(name, admin1, country string) string {
	s := fmt.Sprintf("%s, %s %s", name, admin1, country)
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSuffix(strings.TrimSpace(s), ",")
}
