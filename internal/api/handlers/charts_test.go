package handlers

import (
	"birth-chart-service/internal/adapters/ephemeris"
	"birth-chart-service/internal/api/dto"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func chartHandler(t *testing.T, engine *ephemeris.MockEngine) *ChartHandler {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sepl_18.se1"), []byte("stub"), 0o644); err != nil {
		t.Fatalf("write stub file: %v", err)
	}

	provider := ephemeris.NewProvider(engine, ephemeris.Config{DataPath: dir})
	return &ChartHandler{Ephemeris: provider}
}

func postChart(t *testing.T, h *ChartHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Compute(rec, req)
	return rec
}

func TestComputeChartHappyPath(t *testing.T) {
	engine := &ephemeris.MockEngine{}
	h := chartHandler(t, engine)

	rec := postChart(t, h, `{"local_datetime":"2000-01-01 00:00","tz":"UTC","lat":0,"lon":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.ChartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	wantPlanets := []string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}
	if len(res.Planets) != len(wantPlanets) {
		t.Fatalf("planets = %d entries, want %d", len(res.Planets), len(wantPlanets))
	}
	for _, name := range wantPlanets {
		pos, ok := res.Planets[name]
		if !ok {
			t.Errorf("missing planet %q", name)
			continue
		}
		if pos.Longitude < 0 || pos.Longitude >= 360 {
			t.Errorf("planet %q: longitude %v out of [0,360)", name, pos.Longitude)
		}
	}

	if len(res.HouseCusps) != 12 {
		t.Fatalf("house cusps = %d entries, want 12", len(res.HouseCusps))
	}
	for i := 1; i <= 12; i++ {
		if _, ok := res.HouseCusps[strconv.Itoa(i)]; !ok {
			t.Errorf("missing house cusp %d", i)
		}
	}

	if res.Input.HouseSystem != "P" {
		t.Errorf("house system = %q, want P", res.Input.HouseSystem)
	}
	if res.Input.UTCDateTime != "2000-01-01T00:00:00Z" {
		t.Errorf("utc_datetime = %q, want 2000-01-01T00:00:00Z", res.Input.UTCDateTime)
	}
	if res.Input.JulianDayUT != 2451544.5 {
		t.Errorf("jd_ut = %v, want 2451544.5", res.Input.JulianDayUT)
	}
	if res.Angles.Asc == nil || res.Angles.MC == nil {
		t.Error("expected both angles present")
	}
}

func TestComputeChartMissingTZ(t *testing.T) {
	engine := &ephemeris.MockEngine{}
	h := chartHandler(t, engine)

	rec := postChart(t, h, `{"local_datetime":"2000-01-01 00:00","lat":0,"lon":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if engine.CalcCalls != 0 || engine.HousesCalls != 0 {
		t.Fatalf("engine was invoked (calc=%d houses=%d), want no calls", engine.CalcCalls, engine.HousesCalls)
	}
}

func TestComputeChartMissingDateTime(t *testing.T) {
	rec := postChart(t, chartHandler(t, &ephemeris.MockEngine{}), `{"tz":"UTC"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestComputeChartBadCoordinates(t *testing.T) {
	rec := postChart(t, chartHandler(t, &ephemeris.MockEngine{}), `{"local_datetime":"2000-01-01 00:00","tz":"UTC","lat":123.4,"lon":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestComputeChartBadTimezone(t *testing.T) {
	rec := postChart(t, chartHandler(t, &ephemeris.MockEngine{}), `{"local_datetime":"2000-01-01 00:00","tz":"Nope/Nope","lat":0,"lon":0}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["where"] != "chart" {
		t.Fatalf("where = %q, want chart", body["where"])
	}
}

func TestNormalizeHouseSystem(t *testing.T) {
	cases := []struct {
		in   string
		want byte
	}{
		{"", 'P'},
		{"P", 'P'},
		{"k", 'K'},
		{"whole", 'W'},
		{"7", 'P'},
		{"  e ", 'E'},
	}

	for _, c := range cases {
		if got := normalizeHouseSystem(c.in); got != c.want {
			t.Errorf("normalizeHouseSystem(%q) = %c, want %c", c.in, got, c.want)
		}
	}
}
