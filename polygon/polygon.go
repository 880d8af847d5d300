/*
Package polygon implements simple closed polygons in the plane, together with
clipping operations and area computation.

Polygons are built with a builder pattern similar to paths:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Clipping is delegated to github.com/akavel/polyclip-go (Martinez-Rueda
algorithm). Circular disks are approximated by regular polygons with the
same area as the disk, which makes the polygonal overlap of two disks a
numerical cross-check for closed-form lens areas.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starlab"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of knots. A polygon is closed by calling Cycle();
// open polygons have no area.
type Polygon struct {
	knots []starlab.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p starlab.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// N is the number of knots.
func (pg *Polygon) N() int {
	if pg == nil {
		return 0
	}
	return len(pg.knots)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) starlab.Pair {
	return pg.knots[i]
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg != nil && pg.cycle
}

// Box creates a closed rectangle from two opposite corners.
func Box(p1, p2 starlab.Pair) *Polygon {
	return NullPolygon().
		Knot(p1).
		Knot(starlab.P(p2.X(), p1.Y())).
		Knot(p2).
		Knot(starlab.P(p1.X(), p2.Y())).
		Cycle()
}

// MinDiskVertices is the smallest number of vertices Disk will use.
const MinDiskVertices = 8

// Disk approximates a circular disk by a regular polygon with n vertices.
// The polygon's circumradius is chosen such that its area equals π⋅r².
func Disk(center starlab.Pair, r float64, n int) *Polygon {
	return RotatedDisk(center, r, n, 0)
}

// RotatedDisk is Disk with the first vertex at angle phase instead of 0.
// Clipping two disks with vertices offset by half a step avoids collinear
// edges for (nearly) concentric disks.
func RotatedDisk(center starlab.Pair, r float64, n int, phase float64) *Polygon {
	if n < MinDiskVertices {
		n = MinDiskVertices
	}
	step := starlab.TwoPi / float64(n)
	R := r * math.Sqrt(step/math.Sin(step))
	pg := NullPolygon()
	for i := 0; i < n; i++ {
		pg.Knot(center + starlab.Polar(R, phase+float64(i)*step))
	}
	return pg.Cycle()
}

// Area returns the (unsigned) area of a closed polygon by the shoelace
// formula. Open polygons have area 0.
func (pg *Polygon) Area() float64 {
	if !pg.IsCycle() || pg.N() < 3 {
		return 0
	}
	return math.Abs(shoelace(pg.knots))
}

func shoelace(pts []starlab.Pair) float64 {
	var a float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += pts[i].X()*pts[j].Y() - pts[j].X()*pts[i].Y()
	}
	return a / 2
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, k := range pg.knots {
		c = append(c, polyclip.Point{X: k.X(), Y: k.Y()})
	}
	return c
}

func fromContour(c polyclip.Contour) *Polygon {
	pg := NullPolygon()
	for _, pt := range c {
		pg.Knot(starlab.P(pt.X, pt.Y))
	}
	return pg.Cycle()
}

// Intersection clips two closed polygons against each other. The result may
// consist of zero, one or more polygons.
func Intersection(a, b *Polygon) []*Polygon {
	return clip(polyclip.INTERSECTION, a, b)
}

func clip(op polyclip.Op, a, b *Polygon) []*Polygon {
	if !a.IsCycle() || !b.IsCycle() {
		L().Errorf("cannot clip open polygons")
		return nil
	}
	subject := polyclip.Polygon{a.contour()}
	clipping := polyclip.Polygon{b.contour()}
	result := subject.Construct(op, clipping)
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		if len(c) < 3 {
			continue
		}
		pgs = append(pgs, fromContour(c))
	}
	return pgs
}

// IntersectionArea is the area covered by both a and b. It assumes the
// intersection to be free of holes, which holds for convex operands.
func IntersectionArea(a, b *Polygon) float64 {
	var area float64
	for _, pg := range Intersection(a, b) {
		area += pg.Area()
	}
	return area
}

// AsString returns a polygon as a (debugging) string, in a MetaPost-like
// notation.
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i, k := range pg.knots {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", k.X(), k.Y())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
