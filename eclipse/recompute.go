package eclipse

// Tier names the deepest table a parameter change invalidates. Every tier
// implies rebuilding all tiers below it.
type Tier int8

// Recomputation tiers, from cheapest to most expensive.
const (
	TierNone       Tier = iota // nothing changed
	TierCurve                  // re-arrange plot points (mode, phase, masses)
	TierPhotometry             // rebuild fluxes (temperatures)
	TierOverlap                // rebuild projections (separation, viewing geometry, radii)
	TierPositions              // rebuild everything (eccentricity, engine settings)
)

func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierCurve:
		return "curve"
	case TierPhotometry:
		return "photometry"
	case TierOverlap:
		return "overlap"
	}
	return "positions"
}

// Solution caches every intermediate table of a light curve computation.
// Tables are immutable once built and may be shared between solutions.
type Solution struct {
	Params     Params // sanitized
	Config     Config
	Positions  *PositionTable
	Overlaps   *OverlapTable
	Photometry *Photometry
	Curve      LightCurve
}

// Classify returns the tier a change from prev to next requires. Both
// parameter sets are expected to be sanitized.
func Classify(prev, next Params) Tier {
	switch {
	case prev.Eccentricity != next.Eccentricity:
		return TierPositions
	case prev.Separation != next.Separation,
		prev.Inclination != next.Inclination,
		prev.Longitude != next.Longitude,
		prev.Radius1 != next.Radius1,
		prev.Radius2 != next.Radius2:
		return TierOverlap
	case prev.Temperature1 != next.Temperature1,
		prev.Temperature2 != next.Temperature2:
		return TierPhotometry
	case prev != next:
		return TierCurve
	}
	return TierNone
}

// ComputeLightCurve computes a light curve from scratch with default
// settings.
func ComputeLightCurve(p Params) LightCurve {
	s, _ := RecomputeWith(DefaultConfig(), nil, p)
	return s.Curve
}

// Recompute derives the solution for next from prev, rebuilding only the
// tables the parameter change invalidates. prev may be nil. The settings
// of prev are kept.
func Recompute(prev *Solution, next Params) (*Solution, Tier) {
	cfg := DefaultConfig()
	if prev != nil {
		cfg = prev.Config
	}
	return RecomputeWith(cfg, prev, next)
}

// RecomputeWith is Recompute with explicit engine settings. A change of
// settings invalidates every table.
func RecomputeWith(cfg Config, prev *Solution, next Params) (*Solution, Tier) {
	cfg = cfg.normalized()
	next = next.Sanitized()
	tier := TierPositions
	if prev != nil && prev.Config == cfg {
		tier = Classify(prev.Params, next)
	}
	if tier == TierNone {
		return prev, tier
	}
	s := &Solution{Params: next, Config: cfg}
	if tier >= TierPositions {
		s.Positions = BuildPositionTable(next.Eccentricity, cfg.Samples)
	} else {
		s.Positions = prev.Positions
	}
	if tier >= TierOverlap {
		s.Overlaps = BuildOverlapTable(s.Positions, next, cfg)
	} else {
		s.Overlaps = prev.Overlaps
	}
	if tier >= TierPhotometry {
		s.Photometry = BuildPhotometry(s.Overlaps, next, cfg)
	} else {
		s.Photometry = prev.Photometry
	}
	s.Curve = BuildLightCurve(s.Overlaps, s.Photometry, next)
	return s, tier
}

// Engine keeps the latest solution and recomputes incrementally on every
// update. An Engine is not safe for concurrent use.
type Engine struct {
	config Config
	last   *Solution
}

// NewEngine creates an engine with the given settings.
func NewEngine(cfg Config) *Engine {
	return &Engine{config: cfg.normalized()}
}

// Update recomputes the light curve for p.
func (e *Engine) Update(p Params) (LightCurve, Tier) {
	s, tier := RecomputeWith(e.config, e.last, p)
	e.last = s
	tracer().Debugf("update: recomputed from tier %s", tier)
	return s.Curve, tier
}

// Solution returns the latest solution, or nil before the first update.
func (e *Engine) Solution() *Solution {
	return e.last
}
