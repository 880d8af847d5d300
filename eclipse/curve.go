package eclipse

import (
	"sort"

	"github.com/npillmayer/starlab"
	"github.com/npillmayer/starlab/stellar"
)

// Point is a point of a light curve: a curve phase in [0,1] and a value,
// either normalized flux or magnitude.
type Point struct {
	Phase, Value float64
}

// LightCurve is a phase-locked light curve, ready for plotting. Curve phase
// 0.5 is the closest projected approach of the two stars, i.e. the center
// of the deeper eclipse for edge-on views. The last point repeats the first
// one at phase +1, closing the curve.
type LightCurve struct {
	Mode         Mode
	Points       []Point
	NoEclipse    bool
	ClosestIndex float64 // fractional sample index mapped to phase 0.5
	Samples      int
	Range        Range   // vertical plot range in Mode
	Marker       Point   // current orbital phase, on the curve
	Baseline     float64 // value of the un-eclipsed system in Mode

	FluxRange      Range // normalized flux
	MagnitudeRange Range // widened to the minimum magnitude span
}

// CurvePhase maps an orbital phase (0 at periapsis) to a curve phase.
func (lc LightCurve) CurvePhase(orbital float64) float64 {
	return curvePhase(orbital*float64(lc.Samples), lc.ClosestIndex, lc.Samples)
}

// OrbitalPhase maps a curve phase back to an orbital phase.
func (lc LightCurve) OrbitalPhase(phase float64) float64 {
	return starlab.Fract(phase - 0.5 + lc.ClosestIndex/float64(lc.Samples))
}

func curvePhase(idx, closest float64, n int) float64 {
	return starlab.Fract((idx-closest)/float64(n) + 0.5)
}

// ValueAt interpolates the curve linearly at a curve phase.
func (lc LightCurve) ValueAt(phase float64) float64 {
	pts := lc.Points
	if len(pts) == 0 {
		return 0
	}
	phase = starlab.Fract(phase)
	if phase < pts[0].Phase {
		phase++
	}
	k := sort.Search(len(pts), func(i int) bool { return pts[i].Phase >= phase })
	if k == 0 {
		return pts[0].Value
	}
	if k >= len(pts) {
		return pts[len(pts)-1].Value
	}
	a, b := pts[k-1], pts[k]
	if b.Phase == a.Phase {
		return b.Value
	}
	t := (phase - a.Phase) / (b.Phase - a.Phase)
	return a.Value + t*(b.Value-a.Value)
}

// BuildLightCurve arranges photometry samples as plot points in the
// requested mode.
func BuildLightCurve(ot *OverlapTable, ph *Photometry, p Params) LightCurve {
	n := ot.N()
	lc := LightCurve{
		Mode:         p.Mode,
		NoEclipse:    ph.NoEclipse,
		ClosestIndex: ot.ClosestIndex,
		Samples:      n,
		Points:       make([]Point, n, n+1),
	}
	for i := 0; i < n; i++ {
		v := ph.Normalized(i)
		if p.Mode == ModeMagnitude {
			v = ph.Magnitudes[i]
		}
		lc.Points[i] = Point{
			Phase: curvePhase(float64(i), ot.ClosestIndex, n),
			Value: v,
		}
	}
	sort.SliceStable(lc.Points, func(i, j int) bool {
		return lc.Points[i].Phase < lc.Points[j].Phase
	})
	first := lc.Points[0]
	lc.Points = append(lc.Points, Point{Phase: first.Phase + 1, Value: first.Value})
	lc.FluxRange = ph.FluxRange()
	lc.MagnitudeRange = ph.MagnitudeRange()
	lc.Range, lc.Baseline = lc.FluxRange, 1
	if p.Mode == ModeMagnitude {
		lc.Range, lc.Baseline = lc.MagnitudeRange, stellar.VisualMagnitude(ph.FullFlux)
	}
	ph0 := lc.CurvePhase(p.Phase)
	lc.Marker = Point{Phase: ph0, Value: lc.ValueAt(ph0)}
	return lc
}
