package kepler

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/starlab"
	meeus "github.com/soniakeys/meeus/v3/kepler"
	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
)

// angular distance of two angles, in [0,π]
func angleDiff(a, b float64) float64 {
	d := starlab.WrapAngle(a - b)
	if d > math.Pi {
		d = starlab.TwoPi - d
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, e := range []float64{0, 0.3, 0.7, 0.95} {
		for i := 0; i < 360; i++ {
			M := float64(i) * starlab.TwoPi / 360
			nu := TrueAnomaly(M, e)
			E := 2 * math.Atan(math.Sqrt((1-e)/(1+e))*math.Tan(nu/2))
			M2 := E - e*math.Sin(E)
			if angleDiff(M2, M) >= 0.01 {
				t.Errorf("e=%g, M=%.4f: round trip gives M'=%.4f", e, M, M2)
			}
		}
	}
}

func TestCircularOrbit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for i := 0; i < 100; i++ {
		M := float64(i) * starlab.TwoPi / 100
		sol := Solve(M, 0)
		assert.Equal(t, 1, sol.Iterations)
		assert.True(t, sol.Converged)
		assert.InDelta(t, 0.0, angleDiff(sol.TrueAnomaly, M), 1e-12, "M=%g", M)
	}
}

func TestAgainstReferenceSolver(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, e := range []float64{0.1, 0.25, 0.5} {
		for i := 1; i < 36; i++ {
			M := float64(i) * starlab.TwoPi / 36
			E := meeus.Kepler3(e, unit.Angle(M))
			ref := meeus.True(E, e).Rad()
			nu := TrueAnomaly(M, e)
			assert.Less(t, angleDiff(nu, ref), 0.005, "e=%g, M=%.4f", e, M)
		}
	}
}

func TestIterationCap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// close to periapsis with e → 1 the fixed-point iteration crawls
	slowest := 0
	for i := 1; i < 2000; i++ {
		sol := Solve(float64(i)*0.00001, 0.9999)
		assert.LessOrEqual(t, sol.Iterations, MaxIterations)
		assert.True(t, starlab.IsFinite(sol.TrueAnomaly))
		if sol.Iterations > slowest {
			slowest = sol.Iterations
		}
	}
	assert.Greater(t, slowest, 50)
}

func TestSanitizeEccentricity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, e := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.1, 1, 1.5} {
		assert.Equal(t, 0.0, SanitizeEccentricity(e), "e=%g", e)
	}
	assert.Equal(t, 0.4, SanitizeEccentricity(0.4))
	// invalid eccentricity behaves like a circular orbit
	assert.InDelta(t, 1.0, TrueAnomaly(1, math.NaN()), 1e-12)
}

func TestNormalizePhase(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 0.25, NormalizePhase(1.25), 1e-12)
	assert.InDelta(t, 0.9, NormalizePhase(-0.1), 1e-12)
	assert.Equal(t, 0.0, NormalizePhase(math.NaN()))
}

func TestInverseConversions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := 0.4
	for _, phase := range []float64{0.1, 0.3, 0.5, 0.8} {
		M := phase * starlab.TwoPi
		nu := TrueAnomaly(M, e)
		assert.InDelta(t, phase, PhaseFromTrue(nu, e), 0.002)
	}
	assert.InDelta(t, 0.6, Radius(0, e), 1e-12)
	assert.InDelta(t, 1.4, Radius(math.Pi, e), 1e-12)
	p := Position(0, e)
	assert.InDelta(t, 0.6, p.X(), 1e-12)
	assert.InDelta(t, 0.0, p.Y(), 1e-12)
}
