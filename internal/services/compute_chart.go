package services

import (
	"birth-chart-service/internal/domain"
	"birth-chart-service/internal/ports"
	"context"
	"fmt"
	"strconv"
)

type ComputeChartRequest struct {
	LocalDateTime string
	TZ            string
	Lat           float64
	Lon           float64
	HouseSystem   byte
}

// ComputeChart runs the full chart pipeline: normalize the local time,
// convert to Julian Day, query the ephemeris for body positions and
// houses, and shape everything into a Chart. Either the whole chart is
// returned or an error; there are no partial results.
func ComputeChart(
	ctx context.Context,
	req ComputeChartRequest,
	eph ports.Ephemeris,
) (*domain.Chart, error) {
	utc, err := NormalizeLocalTime(req.LocalDateTime, req.TZ)
	if err != nil {
		return nil, fmt.Errorf("compute chart: %w", err)
	}

	jdUT := JulianDayUT(utc)

	longitudes, err := eph.Positions(ctx, jdUT)
	if err != nil {
		return nil, fmt.Errorf("compute chart: body positions: %w", err)
	}

	houses, err := eph.Houses(ctx, jdUT, req.Lat, req.Lon, req.HouseSystem)
	if err != nil {
		return nil, fmt.Errorf("compute chart: houses: %w", err)
	}

	planets := make(map[domain.Body]domain.ZodiacPosition, len(longitudes))
	for body, lon := range longitudes {
		planets[body] = domain.PositionFromLongitude(lon)
	}

	cusps := make(map[string]domain.ZodiacPosition, 12)
	for i, c := range houses.Cusps {
		cusps[strconv.Itoa(i+1)] = domain.PositionFromLongitude(c)
	}

	var angles domain.ChartAngles
	if houses.Asc != nil {
		pos := domain.PositionFromLongitude(*houses.Asc)
		angles.Asc = &pos
	}
	if houses.MC != nil {
		pos := domain.PositionFromLongitude(*houses.MC)
		angles.MC = &pos
	}

	return &domain.Chart{
		Input: domain.ChartInput{
			LocalDateTime: req.LocalDateTime,
			TZ:            req.TZ,
			UTCDateTime:   utc,
			Lat:           req.Lat,
			Lon:           req.Lon,
			HouseSystem:   string(req.HouseSystem),
			JulianDayUT:   jdUT,
			EphePath:      eph.DataPath(),
		},
		Angles:     angles,
		Planets:    planets,
		HouseCusps: cusps,
	}, nil
}
