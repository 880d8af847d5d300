package eclipse

import (
	"github.com/npillmayer/starlab"
	"github.com/npillmayer/starlab/kepler"
)

// PositionTable samples the relative orbit of body 2 around body 1 at N
// equally spaced mean anomalies. Positions are given in the orbital plane,
// in units of the semi-major axis, with periapsis on the positive x-axis.
// Entry 0 is periapsis, entry N/2 is apoapsis.
type PositionTable struct {
	Eccentricity float64
	Positions    []starlab.Pair
}

// BuildPositionTable samples an orbit of eccentricity e at n points.
// n is rounded up to an even number. Only the first half of the orbit is
// solved for; the second half mirrors it across the apsidal line.
func BuildPositionTable(e float64, n int) *PositionTable {
	e = kepler.SanitizeEccentricity(e)
	if n < 4 {
		n = DefaultSamples
	}
	if n%2 != 0 {
		n++
	}
	pt := &PositionTable{
		Eccentricity: e,
		Positions:    make([]starlab.Pair, n),
	}
	half := n / 2
	pt.Positions[0] = starlab.P(1-e, 0)
	pt.Positions[half] = starlab.P(-(1 + e), 0)
	for i := 1; i < half; i++ {
		p := kepler.Position(pt.MeanAnomaly(float64(i)), e)
		pt.Positions[i] = p
		pt.Positions[n-i] = p.Mirrored()
	}
	tracer().Debugf("position table for e=%.4f with %d samples", e, n)
	return pt
}

// N is the number of samples.
func (pt *PositionTable) N() int {
	return len(pt.Positions)
}

// At returns sample i, with i taken modulo N.
func (pt *PositionTable) At(i int) starlab.Pair {
	n := pt.N()
	return pt.Positions[((i%n)+n)%n]
}

// MeanAnomaly converts a (possibly fractional) sample index to a mean
// anomaly in radians.
func (pt *PositionTable) MeanAnomaly(idx float64) float64 {
	return idx * starlab.TwoPi / float64(pt.N())
}

// PositionAt solves for a fractional sample index, which need not be part of
// the table.
func (pt *PositionTable) PositionAt(idx float64) starlab.Pair {
	return kepler.Position(pt.MeanAnomaly(idx), pt.Eccentricity)
}
