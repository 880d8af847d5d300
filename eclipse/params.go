/*
Package eclipse computes synthetic light curves of eclipsing binary stars.

The computation is a cascade of three tables, each derived from the one
before and from a subset of the system parameters:

	PositionTable   ← eccentricity
	OverlapTable    ← PositionTable, separation, inclination, longitude, radii
	Photometry      ← OverlapTable, temperatures

The position table samples the relative orbit at N mean anomalies. The
overlap table projects every sample onto the sky and computes the area of
the stellar disks hidden by the star in front. Photometry converts overlap
areas and effective temperatures into visual flux and magnitudes. A
LightCurve finally arranges the samples as plot points, phase-locked so that
the closest approach of the two stars sits in the middle of the curve.

Recompute re-uses as much of a previous Solution as the parameter change
allows. All inputs are coerced to physically valid values rather than
rejected; the engine always returns a finite, plottable result.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package eclipse

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/starlab"
	"github.com/npillmayer/starlab/kepler"
	"github.com/soniakeys/unit"
)

// tracer writes to trace with key 'eclipse'
func tracer() tracing.Trace {
	return tracing.Select("eclipse")
}

// Body identifies one of the two stars.
type Body int8

// The two stars of a binary system.
const (
	Body1 Body = 1
	Body2 Body = 2
)

// Other returns the companion of b.
func (b Body) Other() Body {
	if b == Body1 {
		return Body2
	}
	return Body1
}

func (b Body) String() string {
	if b == Body1 {
		return "body 1"
	}
	return "body 2"
}

// Mode selects the quantity a light curve is plotted in.
type Mode int8

// Light curve modes.
const (
	ModeFlux      Mode = iota // visual flux, normalized to the un-eclipsed system
	ModeMagnitude             // absolute visual magnitude
)

func (m Mode) String() string {
	if m == ModeMagnitude {
		return "magnitude"
	}
	return "flux"
}

// ParseMode maps "flux" and "magnitude" (or "mag") to a Mode. Anything
// else is flux.
func ParseMode(s string) Mode {
	switch s {
	case "magnitude", "mag":
		return ModeMagnitude
	}
	return ModeFlux
}

// OrbitalElements describes the relative orbit.
type OrbitalElements struct {
	Eccentricity float64 // in [0,1)
	Separation   float64 // semi-major axis of the relative orbit, solar radii
	Phase        float64 // current phase, fraction of a period since periapsis
}

// BodyPair holds the masses (solar masses) and radii (solar radii) of the stars.
type BodyPair struct {
	Mass1, Mass2     float64
	Radius1, Radius2 float64
}

// ViewingGeometry orients the orbit with respect to the line of sight.
// Angles are in degrees.
type ViewingGeometry struct {
	Inclination float64 // 90° is edge-on, 0° face-on
	Longitude   float64 // longitude of periapsis, measured in the orbital plane
}

// Params is the complete parameter set of a light curve computation.
type Params struct {
	OrbitalElements
	BodyPair
	ViewingGeometry
	Temperature1, Temperature2 float64 // effective temperatures, K
	Mode                       Mode
}

// Fallbacks for invalid parameters.
const (
	defaultMass        = 1.0
	defaultRadius      = 1.0
	defaultSeparation  = 10.0
	defaultTemperature = 5800.0
	defaultInclination = 90.0
)

func positive(x, deflt float64) float64 {
	if !starlab.IsFinite(x) || x <= 0 {
		return deflt
	}
	return x
}

// Sanitized returns a copy of p with every parameter coerced into its valid
// range: eccentricity into [0,1) (invalid values become 0), phase into
// [0,1), non-positive or non-finite sizes, masses and temperatures to
// defaults, non-finite angles to an edge-on view.
func (p Params) Sanitized() Params {
	q := p
	q.Eccentricity = kepler.SanitizeEccentricity(p.Eccentricity)
	q.Phase = kepler.NormalizePhase(p.Phase)
	q.Separation = positive(p.Separation, defaultSeparation)
	q.Mass1 = positive(p.Mass1, defaultMass)
	q.Mass2 = positive(p.Mass2, defaultMass)
	q.Radius1 = positive(p.Radius1, defaultRadius)
	q.Radius2 = positive(p.Radius2, defaultRadius)
	q.Temperature1 = positive(p.Temperature1, defaultTemperature)
	q.Temperature2 = positive(p.Temperature2, defaultTemperature)
	q.Inclination = starlab.ForceFinite(p.Inclination, defaultInclination)
	q.Longitude = starlab.ForceFinite(p.Longitude, 0)
	if q.Mode != ModeMagnitude {
		q.Mode = ModeFlux
	}
	return q
}

// MassTotal is Mass1 + Mass2.
func (bp BodyPair) MassTotal() float64 {
	return bp.Mass1 + bp.Mass2
}

// SemiMajorAxes returns the semi-major axes of the orbits of the two stars
// around the barycenter, a₁ = a⋅m₂/M and a₂ = a⋅m₁/M.
func (p Params) SemiMajorAxes() (a1, a2 float64) {
	M := p.MassTotal()
	return p.Separation * p.Mass2 / M, p.Separation * p.Mass1 / M
}

// rotation takes orbital-plane coordinates (periapsis on +x) to sky
// coordinates: x and y in the plane of the sky, z towards the observer.
func (g ViewingGeometry) rotation() starlab.Rot {
	omega := unit.AngleFromDeg(g.Longitude).Rad()
	incl := unit.AngleFromDeg(g.Inclination).Rad()
	return starlab.RotationZ(omega).Combine(starlab.RotationX(incl))
}
