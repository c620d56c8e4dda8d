package ephemeris

import (
	"birth-chart-service/internal/domain"
	"birth-chart-service/internal/platform/obs"
	"context"
	"fmt"
	"os"
	"strings"
)

// Swiss Ephemeris body identifiers and calculation flags.
// Values follow the engine's C API.
const (
	seSun      = 0
	seMoon     = 1
	seMercury  = 2
	seVenus    = 3
	seMars     = 4
	seJupiter  = 5
	seSaturn   = 6
	seUranus   = 7
	seNeptune  = 8
	sePluto    = 9
	seTrueNode = 11

	seflgSwieph = 2   // read positions from .se1 data files
	seflgSpeed  = 256 // also compute daily motion
)

var bodyIDs = map[domain.Body]int{
	domain.Sun:      seSun,
	domain.Moon:     seMoon,
	domain.Mercury:  seMercury,
	domain.Venus:    seVenus,
	domain.Mars:     seMars,
	domain.Jupiter:  seJupiter,
	domain.Saturn:   seSaturn,
	domain.Uranus:   seUranus,
	domain.Neptune:  seNeptune,
	domain.Pluto:    sePluto,
	domain.TrueNode: seTrueNode,
}

// Engine is the raw ephemeris surface the provider consumes. Calc
// returns the engine's position tuple (longitude first); Houses returns
// cusp and angle arrays whose shape varies by engine build.
type Engine interface {
	Calc(jdUT float64, body int, flags int) ([]float64, error)
	Houses(jdUT float64, lat float64, lon float64, hsys byte) (cusps []float64, ascmc []float64, err error)
}

type Config struct {
	// Directory holding the .se1 ephemeris data files.
	DataPath string
	// IncludeTrueNode adds the lunar true node to the tracked set.
	IncludeTrueNode bool
}

// Provider implements the Ephemeris port on top of a raw engine.
//
// It owns:
//   - The tracked body set and engine calculation flags
//   - The eager ephemeris-data precondition check
//   - Normalization of the engine's house result shapes
//
// The provider holds no mutable state and is safe for concurrent use
// as long as the underlying engine is.
type Provider struct {
	engine Engine
	path   string
	bodies []domain.Body
	flags  int
}

func NewProvider(engine Engine, cfg Config) *Provider {
	bodies := domain.ClassicalBodies()
	if cfg.IncludeTrueNode {
		bodies = append(bodies, domain.TrueNode)
	}

	return &Provider{
		engine: engine,
		path:   cfg.DataPath,
		bodies: bodies,
		flags:  seflgSwieph | seflgSpeed,
	}
}

func (p *Provider) DataPath() string { return p.path }

// Bodies reports the tracked body set in calculation order.
func (p *Provider) Bodies() []domain.Body {
	out := make([]domain.Body, len(p.bodies))
	copy(out, p.bodies)
	return out
}

// ensureData verifies the data directory exists and holds at least one
// .se1 file. Checked before every engine call sequence so a missing
// provisioning step fails with a clear error instead of an engine fault.
func (p *Provider) ensureData() error {
	entries, err := os.ReadDir(p.path)
	if err != nil {
		return fmt.Errorf("%w: folder not found: %s", domain.ErrEphemerisConfig, p.path)
	}

	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".se1") {
			return nil
		}
	}

	return fmt.Errorf("%w: no .se1 files in %s (run ephetool first)", domain.ErrEphemerisConfig, p.path)
}

// Positions queries the engine once per tracked body and keeps only the
// ecliptic longitude of each result.
func (p *Provider) Positions(ctx context.Context, jdUT float64) (_ map[domain.Body]float64, err error) {
	defer obs.Time(ctx, "ephemeris.Positions")(&err)

	if err := p.ensureData(); err != nil {
		return nil, err
	}

	out := make(map[domain.Body]float64, len(p.bodies))
	for _, body := range p.bodies {
		xx, err := p.engine.Calc(jdUT, bodyIDs[body], p.flags)
		if err != nil {
			return nil, fmt.Errorf("calc %s: %w", body, err)
		}
		if len(xx) == 0 {
			return nil, fmt.Errorf("%w: empty position tuple for %s", domain.ErrEngineShape, body)
		}
		out[body] = xx[0]
	}

	return out, nil
}

// Houses runs the engine house computation and normalizes its result.
//
// Engine builds differ in two ways the adapter must absorb: the cusp
// array may be 1-based (13 entries, index 0 unused) or 0-based
// (12 entries), and angles may be missing entirely. Both cusp shapes
// must produce identical house numbering.
func (p *Provider) Houses(
	ctx context.Context,
	jdUT float64,
	lat float64,
	lon float64,
	hsys byte,
) (_ domain.Houses, err error) {
	defer obs.Time(ctx, "ephemeris.Houses")(&err)

	if err := p.ensureData(); err != nil {
		return domain.Houses{}, err
	}

	cusps, ascmc, err := p.engine.Houses(jdUT, lat, lon, hsys)
	if err != nil {
		return domain.Houses{}, fmt.Errorf("houses hsys=%c: %w", hsys, err)
	}

	var houses domain.Houses
	switch len(cusps) {
	case 13:
		copy(houses.Cusps[:], cusps[1:13])
	case 12:
		copy(houses.Cusps[:], cusps[0:12])
	default:
		return domain.Houses{}, fmt.Errorf("%w: %d cusp entries", domain.ErrEngineShape, len(cusps))
	}

	if len(ascmc) >= 2 {
		asc, mc := ascmc[0], ascmc[1]
		houses.Asc = &asc
		houses.MC = &mc
	}

	return houses, nil
}
