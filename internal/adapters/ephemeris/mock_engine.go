package ephemeris

// MockEngine is a deterministic in-memory Engine for tests. Zero-value
// fields fall back to simple synthetic results.
type MockEngine struct {
	CalcFunc   func(jdUT float64, body int, flags int) ([]float64, error)
	HousesFunc func(jdUT float64, lat float64, lon float64, hsys byte) ([]float64, []float64, error)

	CalcCalls   int
	HousesCalls int
}

func (m *MockEngine) Calc(jdUT float64, body int, flags int) ([]float64, error) {
	m.CalcCalls++
	if m.CalcFunc != nil {
		return m.CalcFunc(jdUT, body, flags)
	}
	// Spread synthetic bodies evenly around the ecliptic.
	lon := float64(body*33%360) + 0.5
	return []float64{lon, 0, 1, 0, 0, 0}, nil
}

func (m *MockEngine) Houses(jdUT float64, lat float64, lon float64, hsys byte) ([]float64, []float64, error) {
	m.HousesCalls++
	if m.HousesFunc != nil {
		return m.HousesFunc(jdUT, lat, lon, hsys)
	}

	// 1-based cusp array, equal 30° houses from 15° Aries.
	cusps := make([]float64, 13)
	for i := 1; i <= 12; i++ {
		cusps[i] = float64((i-1)*30) + 15
	}
	return cusps, []float64{15, 285, 0, 0, 0, 0, 0, 0, 0, 0}, nil
}
