// Package swisseph binds the Swiss Ephemeris C library to the raw
// engine contract used by the ephemeris provider.
package swisseph

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/mshafiee/swephgo"
)

// Engine wraps the cgo Swiss Ephemeris binding. The underlying C
// library keeps global state (the ephemeris search path and open file
// handles), so all calls are serialized through one mutex.
type Engine struct {
	mu sync.Mutex
}

// New points the engine at the directory holding the .se1 data files
// and returns a ready engine.
func New(ephePath string) *Engine {
	swephgo.SetEphePath([]byte(ephePath))
	return &Engine{}
}

// Calc computes the position tuple for one body at the given Julian
// Day (UT). The tuple is longitude, latitude, distance and their
// speeds; callers typically keep only the longitude.
func (e *Engine) Calc(jdUT float64, body int, flags int) ([]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	xx := make([]float64, 6)
	serr := make([]byte, 256)

	if ret := swephgo.CalcUt(jdUT, body, flags, xx, serr); ret < 0 {
		return nil, fmt.Errorf("swisseph calc body=%d: %s", body, cstring(serr))
	}

	return xx, nil
}

// Houses computes house cusps and angles. The returned cusp array is
// the library's native 1-based 13-entry layout; ascmc carries the
// ascendant and midheaven in its first two entries.
func (e *Engine) Houses(jdUT float64, lat float64, lon float64, hsys byte) ([]float64, []float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cusps := make([]float64, 13)
	ascmc := make([]float64, 10)

	if ret := swephgo.Houses(jdUT, lat, lon, int(hsys), cusps, ascmc); ret < 0 {
		return nil, nil, fmt.Errorf("swisseph houses hsys=%c: computation failed", hsys)
	}

	return cusps, ascmc, nil
}

// Close releases the library's open ephemeris file handles.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	swephgo.Close()
}

// cstring converts a NUL-terminated C error buffer to a Go string.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
