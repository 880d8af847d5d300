/*
Package kepler solves Kepler's equation for elliptical two-body orbits.

Given an eccentricity e and a mean anomaly M, the eccentric anomaly E is
found by fixed-point iteration of

	E = M + e⋅sin(E)

seeded with E₀ = M + e⋅sin(M). Iteration stops as soon as two consecutive
estimates differ by at most Tolerance, or after MaxIterations steps. Hitting
the iteration cap is not an error: the last estimate is used regardless
(this is a known approximation limit for eccentricities close to 1).
The true anomaly follows as

	ν = 2⋅atan( sqrt((1+e)/(1−e)) ⋅ tan(E/2) )

Invalid eccentricities (NaN, ±Inf, e < 0, e ≥ 1) are coerced to 0, i.e. to
a circular orbit.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package kepler

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starlab"
)

// tracer writes to trace with key 'kepler'
func tracer() tracing.Trace {
	return tracing.Select("kepler")
}

const (
	// Tolerance is the convergence threshold for the eccentric anomaly, in
	// radians. It is coarse on purpose: light curves are sampled at a few
	// hundred points per period, far below this resolution.
	Tolerance = 0.001
	// MaxIterations caps the fixed-point iteration. Convergence is linear
	// with rate e, so only eccentricities very close to 1 ever reach it.
	MaxIterations = 100
)

// Solution is the result of solving Kepler's equation for one mean anomaly.
type Solution struct {
	MeanAnomaly      float64 // M, radians, as given
	Eccentricity     float64 // e after coercion
	EccentricAnomaly float64 // E, radians
	TrueAnomaly      float64 // ν, radians in (−π,π]
	Iterations       int     // number of fixed-point steps taken
	Converged        bool    // false if MaxIterations has been hit
}

// SanitizeEccentricity coerces e into [0,1). Invalid input is not rejected
// but mapped to 0.
func SanitizeEccentricity(e float64) float64 {
	if !starlab.IsFinite(e) || e < 0 || e >= 1 {
		if e != 0 {
			tracer().Infof("eccentricity %g out of range, using 0", e)
		}
		return 0
	}
	return e
}

// NormalizePhase maps an orbital phase (fraction of a period) into [0,1).
func NormalizePhase(phase float64) float64 {
	return starlab.Fract(starlab.ForceFinite(phase, 0))
}

// Solve finds the eccentric and true anomaly for mean anomaly M (radians)
// and eccentricity e.
func Solve(M, e float64) Solution {
	e = SanitizeEccentricity(e)
	sol := Solution{MeanAnomaly: M, Eccentricity: e}
	E1 := M + e*math.Sin(M)
	var E0 float64
	for {
		E0 = E1
		E1 = M + e*math.Sin(E0)
		sol.Iterations++
		if math.Abs(E1-E0) <= Tolerance {
			sol.Converged = true
			break
		}
		if sol.Iterations >= MaxIterations {
			tracer().Debugf("Kepler iteration did not converge for M=%.4g, e=%.4g", M, e)
			break
		}
	}
	sol.EccentricAnomaly = E1
	sol.TrueAnomaly = TrueFromEccentric(E1, e)
	return sol
}

// TrueAnomaly is a shortcut for Solve(M, e).TrueAnomaly.
func TrueAnomaly(M, e float64) float64 {
	return Solve(M, e).TrueAnomaly
}

// TrueFromEccentric converts an eccentric anomaly to the true anomaly.
func TrueFromEccentric(E, e float64) float64 {
	return 2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(E/2))
}

// EccentricFromTrue converts a true anomaly to the eccentric anomaly.
func EccentricFromTrue(nu, e float64) float64 {
	return 2 * math.Atan(math.Sqrt((1-e)/(1+e))*math.Tan(nu/2))
}

// MeanAnomalyFromTrue converts a true anomaly to the mean anomaly,
// reduced to [0,2π).
func MeanAnomalyFromTrue(nu, e float64) float64 {
	e = SanitizeEccentricity(e)
	E := EccentricFromTrue(nu, e)
	return starlab.WrapAngle(E - e*math.Sin(E))
}

// PhaseFromTrue converts a true anomaly to an orbital phase in [0,1),
// measured from periapsis.
func PhaseFromTrue(nu, e float64) float64 {
	return NormalizePhase(MeanAnomalyFromTrue(nu, e) / starlab.TwoPi)
}

// Radius is the distance from the focus for a true anomaly ν, in units of
// the semi-major axis.
func Radius(nu, e float64) float64 {
	return (1 - e*e) / (1 + e*math.Cos(nu))
}

// Position solves for mean anomaly M and returns the position in the orbital
// plane, in units of the semi-major axis, periapsis on the positive x-axis.
func Position(M, e float64) starlab.Pair {
	sol := Solve(M, e)
	return starlab.Polar(Radius(sol.TrueAnomaly, sol.Eccentricity), sol.TrueAnomaly)
}
