package eclipse

import (
	"math"

	"github.com/npillmayer/starlab"
)

// Eclipse describes the eclipse of one star during an orbit. Phases are
// orbital phases, 0 at periapsis.
type Eclipse struct {
	Eclipsed   Body
	Occurs     bool
	Start, End float64 // first and last contact
	Duration   float64 // fraction of the period
	MaxPhase   float64 // mid-eclipse: phase of the closest projected approach
	Depth      float64 // fractional flux loss at the sample nearest MaxPhase
	Total      bool    // the eclipsing disk covers the other one completely
}

// Events lists the eclipses of both stars.
type Events struct {
	OfBody1, OfBody2 Eclipse
}

// contactIterations bounds the bisection for contact points.
const contactIterations = 50

// Events derives eclipse timings from the tables of s. Contacts are located
// by bisection between the last sample without and the first sample with
// overlap. Mid-eclipse is where the projected distance of the stars is
// smallest, which stays well defined for the flat bottom of total and
// annular eclipses.
func (s *Solution) Events() Events {
	return Events{
		OfBody1: s.eclipseOf(Body1),
		OfBody2: s.eclipseOf(Body2),
	}
}

func (s *Solution) eclipseOf(b Body) Eclipse {
	ecl := Eclipse{Eclipsed: b}
	samples := s.Overlaps.Samples
	n := len(samples)
	hides := func(i int) bool {
		o := samples[((i%n)+n)%n].Overlap
		return o.Area > 0 && o.Eclipsed() == b
	}
	g := newGeometry(s.Params, s.Config)
	deepest, count := -1, 0
	for i := 0; i < n; i++ {
		if !hides(i) {
			continue
		}
		count++
		if deepest < 0 || g.closer(samples[i].Distance, samples[deepest].Distance) {
			deepest = i
		}
	}
	if deepest < 0 {
		return ecl
	}
	ecl.Occurs = true
	mid := g.closestBetween(s.Positions, float64(deepest-1), float64(deepest+1), contactIterations)
	ecl.MaxPhase = starlab.Fract(mid / float64(n))
	ecl.Depth = s.Photometry.Depth(deepest)
	r1, r2 := s.Params.Radius1, s.Params.Radius2
	hidden := r1
	if b == Body2 {
		hidden = r2
	}
	ecl.Total = samples[deepest].Overlap.Area >= math.Pi*hidden*hidden*(1-1e-9)
	if count == n {
		// permanently overlapping, e.g. contact systems seen face-on
		ecl.Duration = 1
		return ecl
	}
	first, last := deepest, deepest
	for hides(first - 1) {
		first--
	}
	for hides(last + 1) {
		last++
	}
	contact := r1 + r2
	inside := func(idx float64) bool {
		smp := g.sampleAt(s.Positions, idx)
		return smp.Distance < contact && smp.Overlap.Eclipsed() == b
	}
	start := bisect(float64(first-1), float64(first), inside)
	end := bisect(float64(last+1), float64(last), inside)
	ecl.Start = starlab.Fract(start / float64(n))
	ecl.End = starlab.Fract(end / float64(n))
	ecl.Duration = (end - start) / float64(n)
	tracer().Debugf("eclipse of %s: %.4f – %.4f, depth %.4f", b, ecl.Start, ecl.End, ecl.Depth)
	return ecl
}

// bisect narrows down the boundary between out (predicate false) and in
// (predicate true).
func bisect(out, in float64, inside func(float64) bool) float64 {
	for i := 0; i < contactIterations; i++ {
		mid := (out + in) / 2
		if inside(mid) {
			in = mid
		} else {
			out = mid
		}
	}
	return (out + in) / 2
}
