package services

import (
	"birth-chart-service/internal/adapters/ephemeris"
	"birth-chart-service/internal/domain"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testProvider(t *testing.T, engine *ephemeris.MockEngine) *ephemeris.Provider {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "semo_18.se1"), []byte("stub"), 0o644); err != nil {
		t.Fatalf("write stub file: %v", err)
	}

	return ephemeris.NewProvider(engine, ephemeris.Config{DataPath: dir})
}

func TestComputeChartAssemblesResult(t *testing.T) {
	provider := testProvider(t, &ephemeris.MockEngine{})

	req := ComputeChartRequest{
		LocalDateTime: "1990-06-15 14:30",
		TZ:            "America/New_York",
		Lat:           40.71427,
		Lon:           -74.00597,
		HouseSystem:   'P',
	}

	chart, err := ComputeChart(context.Background(), req, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if chart.Input.UTCDateTime.Hour() != 18 || chart.Input.UTCDateTime.Minute() != 30 {
		t.Errorf("utc = %v, want 18:30", chart.Input.UTCDateTime)
	}
	if chart.Input.HouseSystem != "P" {
		t.Errorf("house system = %q, want P", chart.Input.HouseSystem)
	}
	if chart.Input.EphePath != provider.DataPath() {
		t.Errorf("ephe path = %q, want %q", chart.Input.EphePath, provider.DataPath())
	}

	if len(chart.Planets) != 10 {
		t.Errorf("planets = %d, want 10", len(chart.Planets))
	}
	for body, pos := range chart.Planets {
		if pos.Sign == "" {
			t.Errorf("body %s: empty sign", body)
		}
	}

	for _, house := range []string{"1", "12"} {
		if _, ok := chart.HouseCusps[house]; !ok {
			t.Errorf("missing house cusp %s", house)
		}
	}
	if _, ok := chart.HouseCusps["0"]; ok {
		t.Error("house cusps must be keyed 1..12, found key 0")
	}
	if _, ok := chart.HouseCusps["13"]; ok {
		t.Error("house cusps must be keyed 1..12, found key 13")
	}

	if chart.Angles.Asc == nil || chart.Angles.MC == nil {
		t.Error("expected angles from the default mock engine")
	}
}

func TestComputeChartBadTimezone(t *testing.T) {
	provider := testProvider(t, &ephemeris.MockEngine{})

	_, err := ComputeChart(context.Background(), ComputeChartRequest{
		LocalDateTime: "1990-06-15 14:30",
		TZ:            "Not/AZone",
		HouseSystem:   'P',
	}, provider)

	if !errors.Is(err, domain.ErrUnknownTimezone) {
		t.Fatalf("err = %v, want ErrUnknownTimezone", err)
	}
}

func TestComputeChartEngineFailure(t *testing.T) {
	engine := &ephemeris.MockEngine{
		CalcFunc: func(_ float64, _ int, _ int) ([]float64, error) {
			return nil, errors.New("file damage")
		},
	}
	provider := testProvider(t, engine)

	_, err := ComputeChart(context.Background(), ComputeChartRequest{
		LocalDateTime: "2000-01-01 00:00",
		TZ:            "UTC",
		HouseSystem:   'P',
	}, provider)

	if err == nil {
		t.Fatal("expected error from failing engine")
	}
}
