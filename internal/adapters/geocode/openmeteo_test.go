package geocode

import (
	"birth-chart-service/internal/domain"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *OpenMeteoClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewOpenMeteoClient(nil)
	c.baseURL = srv.URL
	return c
}

func TestSearchMapsCandidates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Xi'an" {
			t.Errorf("name param = %q, want %q", got, "Xi'an")
		}
		if got := r.URL.Query().Get("count"); got != "8" {
			t.Errorf("count param = %q, want 8", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"name":"Xi'an","admin1":"Shaanxi","country":"China","latitude":34.25833,"longitude":108.92861,"timezone":"Asia/Shanghai"},
			{"name":"Nowhere","latitude":1.5,"longitude":-2.5}
		]}`))
	})

	out, err := c.Search(context.Background(), "Xi'an")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}

	if out[0].DisplayName != "Xi'an, Shaanxi China" {
		t.Errorf("display name = %q, want %q", out[0].DisplayName, "Xi'an, Shaanxi China")
	}
	if out[0].TZ != "Asia/Shanghai" {
		t.Errorf("tz = %q, want Asia/Shanghai", out[0].TZ)
	}

	// Missing admin1/country collapse away; missing timezone falls back to UTC.
	if out[1].DisplayName != "Nowhere" {
		t.Errorf("display name = %q, want %q", out[1].DisplayName, "Nowhere")
	}
	if out[1].TZ != "UTC" {
		t.Errorf("tz = %q, want UTC", out[1].TZ)
	}
}

func TestSearchNoMatches(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	})

	out, err := c.Search(context.Background(), "zzzzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil {
		t.Fatal("result must be an empty slice, not nil")
	}
	if len(out) != 0 {
		t.Fatalf("got %d candidates, want 0", len(out))
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.Search(context.Background(), "Paris")
	if !errors.Is(err, domain.ErrUpstreamGeocode) {
		t.Fatalf("err = %v, want ErrUpstreamGeocode", err)
	}
}

func TestSearchUsesCache(t *testing.T) {
	calls := 0
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"results":[{"name":"Paris","admin1":"Ile-de-France","country":"France","latitude":48.85,"longitude":2.35,"timezone":"Europe/Paris"}]}`))
	})
	c.cache = &memoryCache{entries: map[string][]domain.PlaceCandidate{}}

	for i := 0; i < 3; i++ {
		out, err := c.Search(context.Background(), "Paris")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("got %d candidates, want 1", len(out))
		}
	}

	if calls != 1 {
		t.Fatalf("upstream calls = %d, want 1", calls)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name, admin1, country, want string
	}{
		{"Paris", "Ile-de-France", "France", "Paris, Ile-de-France France"},
		{"Paris", "", "France", "Paris, France"},
		{"Paris", "", "", "Paris"},
		{"Paris", "Ile-de-France", "", "Paris, Ile-de-France"},
	}

	for _, c := range cases {
		if got := displayName(c.name, c.admin1, c.country); got != c.want {
			t.Errorf("displayName(%q,%q,%q) = %q, want %q", c.name, c.admin1, c.country, got, c.want)
		}
	}
}

type memoryCache struct {
	entries map[string][]domain.PlaceCandidate
}

func (m *memoryCache) Get(_ context.Context, query string) ([]domain.PlaceCandidate, bool, error) {
	out, ok := m.entries[query]
	return out, ok, nil
}

func (m *memoryCache) Put(_ context.Context, query string, candidates []domain.PlaceCandidate) error {
	m.entries[query] = candidates
	return nil
}
