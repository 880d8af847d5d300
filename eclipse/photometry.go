package eclipse

import (
	"math"

	"github.com/npillmayer/starlab/stellar"
)

// Range is a closed interval of plot values.
type Range struct {
	Min, Max float64
}

// Span is Max − Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Photometry holds the visual flux of the system for every sample of an
// overlap table.
//
// The surface brightnesses carry opposite signs, J1 > 0 and J2 < 0, so that
// together with Overlap.Signed the flux lost to an eclipse is always
// J_back⋅Signed, where J_back belongs to the star behind.
type Photometry struct {
	J1, J2     float64 // signed surface brightness, W/m² per solar radius²
	FullFlux   float64 // flux of the un-eclipsed system
	MinFlux    float64
	NoEclipse  bool // no sample shows any overlap
	Flux       []float64
	Magnitudes []float64
	// BrightMagnitude and FaintMagnitude bound the magnitude curve, with
	// the span widened to at least the configured minimum.
	BrightMagnitude, FaintMagnitude float64
}

// BuildPhotometry converts the overlaps of ot into fluxes and magnitudes.
func BuildPhotometry(ot *OverlapTable, p Params, cfg Config) *Photometry {
	area := stellar.SolarRadius * stellar.SolarRadius
	ph := &Photometry{
		J1:         stellar.SurfaceBrightness(p.Temperature1) * area,
		J2:         -stellar.SurfaceBrightness(p.Temperature2) * area,
		Flux:       make([]float64, ot.N()),
		Magnitudes: make([]float64, ot.N()),
	}
	r1, r2 := p.Radius1, p.Radius2
	ph.FullFlux = math.Pi * (r1*r1*ph.J1 - r2*r2*ph.J2)
	ph.MinFlux = ph.FullFlux
	for i, s := range ot.Samples {
		f := ph.flux(s.Overlap)
		ph.Flux[i] = f
		ph.Magnitudes[i] = stellar.VisualMagnitude(f)
		if f < ph.MinFlux {
			ph.MinFlux = f
		}
	}
	ph.NoEclipse = ph.MinFlux == ph.FullFlux
	ph.BrightMagnitude, ph.FaintMagnitude = widen(
		stellar.VisualMagnitude(ph.FullFlux),
		stellar.VisualMagnitude(ph.MinFlux),
		cfg.MinMagnitudeSpan)
	tracer().Debugf("photometry: full flux %.4g, min flux %.4g, eclipse=%v",
		ph.FullFlux, ph.MinFlux, !ph.NoEclipse)
	return ph
}

func (ph *Photometry) flux(o Overlap) float64 {
	if o.Front == Body2 {
		return ph.FullFlux + ph.J1*o.Signed()
	}
	return ph.FullFlux + ph.J2*o.Signed()
}

// widen symmetrically extends [lo,hi] to a span of at least minSpan.
func widen(lo, hi, minSpan float64) (float64, float64) {
	if hi-lo >= minSpan {
		return lo, hi
	}
	mid := (lo + hi) / 2
	return mid - minSpan/2, mid + minSpan/2
}

// Normalized returns the flux of sample i relative to the un-eclipsed system.
func (ph *Photometry) Normalized(i int) float64 {
	return ph.Flux[i] / ph.FullFlux
}

// FluxRange is the range of normalized flux.
func (ph *Photometry) FluxRange() Range {
	return Range{Min: ph.MinFlux / ph.FullFlux, Max: 1}
}

// MagnitudeRange is the range of the magnitude plot, at least as wide as
// the configured minimum span.
func (ph *Photometry) MagnitudeRange() Range {
	return Range{Min: ph.BrightMagnitude, Max: ph.FaintMagnitude}
}

// Depth is the fractional flux loss at sample i.
func (ph *Photometry) Depth(i int) float64 {
	return 1 - ph.Normalized(i)
}
