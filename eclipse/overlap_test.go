package eclipse

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/starlab"
	"github.com/stretchr/testify/assert"
)

func TestLensArea(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Zero(t, LensArea(2, 1, 1))
	assert.Zero(t, LensArea(5, 1, 2))
	// two unit disks at distance 1
	assert.InDelta(t, 2*math.Pi/3-math.Sqrt(3)/2, LensArea(1, 1, 1), 1e-12)
	// concentric and nested disks hide the smaller one
	assert.InDelta(t, math.Pi, LensArea(0, 1, 1), 1e-6)
	assert.InDelta(t, math.Pi*0.25, LensArea(0, 2, 0.5), 1e-9)
	assert.InDelta(t, math.Pi*0.25, LensArea(1, 2, 0.5), 1e-9)
	// symmetric in the radii
	assert.InDelta(t, LensArea(1.2, 0.7, 1.1), LensArea(1.2, 1.1, 0.7), 1e-12)
}

func TestPolygonalOverlapAgreesWithLens(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, d := range []float64{0.2, 0.6, 1.0, 1.4, 1.7} {
		lens := LensArea(d, 1, 0.8)
		poly := PolygonalOverlap(d, 1, 0.8, 512)
		assert.InDelta(t, lens, poly, 2e-3, "d=%g", d)
	}
	assert.Zero(t, PolygonalOverlap(3, 1, 1, 64))
	assert.Equal(t, math.Pi*0.25, PolygonalOverlap(0.1, 1, 0.5, 64))
}

func TestOverlapSign(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := Overlap{Front: Body2, Area: 0.3}
	assert.Equal(t, -0.3, o.Signed())
	assert.Equal(t, Body1, o.Eclipsed())
	o = Overlap{Front: Body1, Area: 0.3}
	assert.Equal(t, 0.3, o.Signed())
	assert.Equal(t, Body2, o.Eclipsed())
}

func TestOverlapTableTwins(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twins()
	cfg := DefaultConfig()
	ot := BuildOverlapTable(BuildPositionTable(0, cfg.Samples), p, cfg)
	assert.Equal(t, 75.0, ot.ClosestIndex)
	// body 2 passes in front at quarter phase, behind at three quarters
	assert.Equal(t, Body2, ot.Samples[75].Overlap.Front)
	assert.Equal(t, Body1, ot.Samples[225].Overlap.Front)
	assert.InDelta(t, math.Pi*0.25, ot.Samples[75].Overlap.Area, 1e-9)
	assert.InDelta(t, math.Pi*0.25, ot.Samples[225].Overlap.Area, 1e-9)
	assert.Zero(t, ot.Samples[0].Overlap.Area)
	assert.InDelta(t, 4.0, ot.Samples[0].Distance, 1e-12)
	eclipsed := 0
	for _, s := range ot.Samples {
		if s.Overlap.Area > 0 {
			eclipsed++
		}
	}
	assert.Equal(t, 50, eclipsed)
}

func TestClosestApproachRefinement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twins()
	p.Longitude = 1 // shifts conjunction between grid points
	cfg := DefaultConfig()
	ot := BuildOverlapTable(BuildPositionTable(0, cfg.Samples), p, cfg)
	// conjunction at ν = 89°, i.e. index 74.1666…
	want := 89.0 / 360 * 300
	assert.InDelta(t, want, ot.ClosestIndex, 1.0/float64(cfg.Refinement))
	assert.NotEqual(t, math.Floor(ot.ClosestIndex), ot.ClosestIndex)
}

func TestClosestApproachStaysOnPrimary(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// the conjunctions of a circular orbit are equally close; the earlier
	// one, with the hotter star eclipsed, must keep the center of the curve
	p := twins()
	p.Temperature2 = 3500
	cfg := DefaultConfig()
	pt := BuildPositionTable(0, cfg.Samples)
	for _, long := range []float64{0, 1, 2, 5, 10} {
		p.Longitude = long
		ot := BuildOverlapTable(pt, p, cfg)
		want := (90 - long) / 360 * float64(cfg.Samples)
		assert.InDelta(t, want, ot.ClosestIndex, 1.0/float64(cfg.Refinement), "ω=%g", long)
		lc := ComputeLightCurve(p)
		assert.Less(t, lc.ValueAt(0.5), lc.ValueAt(0), "ω=%g", long)
	}
}

func TestFaceOnView(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twins()
	p.Inclination = 0
	cfg := DefaultConfig()
	ot := BuildOverlapTable(BuildPositionTable(0, cfg.Samples), p, cfg)
	for i, s := range ot.Samples {
		assert.InDelta(t, 4.0, s.Distance, 1e-9, "i=%d", i)
		assert.Zero(t, s.Overlap.Area)
		assert.True(t, starlab.Is0(s.Sky.Z()))
	}
}
