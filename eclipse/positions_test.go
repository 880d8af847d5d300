package eclipse

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/starlab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twins is an edge-on circular system of two sun-like stars.
func twins() Params {
	return Params{
		OrbitalElements: OrbitalElements{Eccentricity: 0, Separation: 4},
		BodyPair:        BodyPair{Mass1: 1, Mass2: 1, Radius1: 0.5, Radius2: 0.5},
		ViewingGeometry: ViewingGeometry{Inclination: 90, Longitude: 0},
		Temperature1:    5800,
		Temperature2:    5800,
	}
}

func TestPositionTableSymmetry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, e := range []float64{0, 0.3, 0.8} {
		pt := BuildPositionTable(e, 300)
		require.Equal(t, 300, pt.N())
		assert.Equal(t, starlab.P(1-e, 0), pt.At(0), "periapsis, e=%g", e)
		assert.Equal(t, starlab.P(-(1+e), 0), pt.At(150), "apoapsis, e=%g", e)
		for i := 1; i < 150; i++ {
			p, q := pt.At(i), pt.At(300-i)
			assert.Equal(t, p.X(), q.X())
			assert.Equal(t, p.Y(), -q.Y())
		}
	}
}

func TestPositionTableRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pt := BuildPositionTable(0.5, 100)
	for i := 0; i < pt.N(); i++ {
		r := pt.At(i).Abs()
		assert.True(t, r >= 0.5-1e-9 && r <= 1.5+1e-9, "r=%g at %d", r, i)
	}
	// circular orbits are sampled evenly
	pt = BuildPositionTable(0, 8)
	assert.InDelta(t, 1.0, pt.At(2).Y(), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, pt.At(1).X(), 1e-12)
}

func TestPositionTableCoercion(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pt := BuildPositionTable(1.5, 11)
	assert.Equal(t, 12, pt.N())
	assert.Zero(t, pt.Eccentricity)
	assert.Equal(t, DefaultSamples, BuildPositionTable(0, 2).N())
	assert.Equal(t, pt.At(0), pt.At(12))
	assert.Equal(t, pt.At(11), pt.At(-1))
}
