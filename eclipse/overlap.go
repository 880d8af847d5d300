package eclipse

import (
	"math"

	"github.com/npillmayer/starlab"
	"github.com/npillmayer/starlab/polygon"
)

// Overlap is the eclipse state of a single sample: which star is in front,
// and how much stellar disk area (solar radii²) it hides. An Area of 0
// means no eclipse, regardless of Front.
type Overlap struct {
	Front Body
	Area  float64
}

// Eclipsed is the star behind Front.
func (o Overlap) Eclipsed() Body {
	return o.Front.Other()
}

// Signed encodes the front body in the sign of the area: negative if body 2
// is in front (body 1 eclipsed), positive if body 1 is in front.
func (o Overlap) Signed() float64 {
	if o.Front == Body2 {
		return -o.Area
	}
	return o.Area
}

// Sample is one entry of an OverlapTable.
type Sample struct {
	Sky      starlab.Vec // position of body 2 relative to body 1, solar radii
	Distance float64     // projected distance of the stellar centers
	Overlap  Overlap
}

// OverlapTable holds the projected geometry for every entry of a position
// table.
type OverlapTable struct {
	Samples      []Sample
	ClosestIndex float64 // fractional sample index of the closest projected approach
}

// N is the number of samples.
func (ot *OverlapTable) N() int {
	return len(ot.Samples)
}

// geometry projects orbital positions onto the sky and computes overlaps.
type geometry struct {
	separation float64
	r1, r2     float64
	rot        starlab.Rot
	method     OverlapMethod
	vertices   int
}

func newGeometry(p Params, cfg Config) geometry {
	return geometry{
		separation: p.Separation,
		r1:         p.Radius1,
		r2:         p.Radius2,
		rot:        p.ViewingGeometry.rotation(),
		method:     cfg.Overlap,
		vertices:   cfg.DiskVertices,
	}
}

// project takes a unit-orbit position to sky coordinates in solar radii.
func (g geometry) project(pos starlab.Pair) starlab.Vec {
	return g.rot.Transform(pos.Vec()).Scaled(g.separation)
}

func (g geometry) sample(pos starlab.Pair) Sample {
	sky := g.project(pos)
	d := sky.PlanarDistance()
	front := Body1
	if sky.Z() > 0 {
		front = Body2
	}
	return Sample{
		Sky:      sky,
		Distance: d,
		Overlap:  Overlap{Front: front, Area: g.overlapArea(d)},
	}
}

func (g geometry) overlapArea(d float64) float64 {
	if g.method == OverlapPolygonal {
		return PolygonalOverlap(d, g.r1, g.r2, g.vertices)
	}
	return LensArea(d, g.r1, g.r2)
}

// LensArea is the area common to two disks of radii r1 and r2 whose centers
// are d apart. A distance of 0 is replaced by a tiny positive value; the
// result is then the area of the smaller disk.
func LensArea(d, r1, r2 float64) float64 {
	if d >= r1+r2 {
		return 0
	}
	if d <= 0 {
		d = starlab.Tiny
	}
	ca := starlab.Clamp((d*d+r2*r2-r1*r1)/(2*d*r2), -1, 1)
	cb := starlab.Clamp((d*d+r1*r1-r2*r2)/(2*d*r1), -1, 1)
	alpha := math.Acos(ca)
	beta := math.Acos(cb)
	return r2*r2*(alpha-ca*math.Sin(alpha)) + r1*r1*(beta-cb*math.Sin(beta))
}

// PolygonalOverlap computes the same quantity as LensArea by clipping two
// polygonized disks with n vertices each. Separated and nested disks are
// handled without clipping.
func PolygonalOverlap(d, r1, r2 float64, n int) float64 {
	if d >= r1+r2 {
		return 0
	}
	if d <= math.Abs(r1-r2) {
		r := math.Min(r1, r2)
		return math.Pi * r * r
	}
	a := polygon.Disk(starlab.Origin, r1, n)
	b := polygon.RotatedDisk(starlab.P(d, 0), r2, n, math.Pi/float64(max(n, polygon.MinDiskVertices)))
	return polygon.IntersectionArea(a, b)
}

// BuildOverlapTable projects every entry of pt and locates the closest
// approach of the two stars, refined to a fraction 1/refinement of a sample
// step.
func BuildOverlapTable(pt *PositionTable, p Params, cfg Config) *OverlapTable {
	g := newGeometry(p, cfg)
	n := pt.N()
	ot := &OverlapTable{Samples: make([]Sample, n)}
	closest := 0
	for i, pos := range pt.Positions {
		ot.Samples[i] = g.sample(pos)
		if g.closer(ot.Samples[i].Distance, ot.Samples[closest].Distance) {
			closest = i
		}
	}
	ot.ClosestIndex = g.refineClosest(pt, closest, ot.Samples[closest].Distance, cfg.Refinement)
	tracer().Debugf("overlap table: closest approach at index %.3f", ot.ClosestIndex)
	return ot
}

// distanceTolerance is the relative precision, in units of the separation,
// at which two projected distances count as equal. The two conjunctions of
// a circular orbit are equally close and must not be told apart by rounding.
const distanceTolerance = 1e-9

// closer reports whether distance d is significantly smaller than best.
func (g geometry) closer(d, best float64) bool {
	return d < best-distanceTolerance*g.separation
}

// closestBetween locates the smallest projected distance between fractional
// indices lo and hi by golden section search. The distance must be
// unimodal within the interval.
func (g geometry) closestBetween(pt *PositionTable, lo, hi float64, iterations int) float64 {
	dist := func(idx float64) float64 {
		return g.project(pt.PositionAt(idx)).PlanarDistance()
	}
	const invPhi = 0.6180339887498949
	a, b := lo, hi
	c, d := b-invPhi*(b-a), a+invPhi*(b-a)
	fc, fd := dist(c), dist(d)
	for i := 0; i < iterations; i++ {
		if fc <= fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = dist(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = dist(d)
		}
	}
	return (a + b) / 2
}

// refineClosest samples the cells on both sides of index k and returns the
// fractional index with the smallest projected distance. Ties within
// distanceTolerance keep the earlier candidate.
func (g geometry) refineClosest(pt *PositionTable, k int, dk float64, refinement int) float64 {
	best, bestD := float64(k), dk
	for j := -(refinement - 1); j < refinement; j++ {
		if j == 0 {
			continue
		}
		idx := float64(k) + float64(j)/float64(refinement)
		d := g.project(pt.PositionAt(idx)).PlanarDistance()
		if g.closer(d, bestD) {
			best, bestD = idx, d
		}
	}
	n := float64(pt.N())
	return starlab.Fract(best/n) * n
}

// sampleAt projects an orbit position at fractional index idx.
func (g geometry) sampleAt(pt *PositionTable, idx float64) Sample {
	return g.sample(pt.PositionAt(idx))
}
