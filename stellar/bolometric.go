/*
Package stellar collects empirical relations between the global properties of
stars: bolometric corrections, luminosity, radius, effective temperature,
mass and the extent of the circumstellar habitable zone.

All quantities are in solar units unless stated otherwise; temperatures are
effective temperatures in Kelvin.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package stellar

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stellar'
func tracer() tracing.Trace {
	return tracing.Select("stellar")
}

// Regime denotes one of the temperature ranges of the bolometric correction
// polynomials.
type Regime int8

// Temperature regimes, separated at log T = 3.7 and log T = 3.9.
const (
	Cool Regime = iota
	Mid
	Hot
)

func (r Regime) String() string {
	switch r {
	case Cool:
		return "cool"
	case Mid:
		return "mid"
	}
	return "hot"
}

// Breakpoints of the regimes, in log10(T).
const (
	CoolMidBreak = 3.7
	MidHotBreak  = 3.9
)

// Coefficients of BC(log T) = c₀ + c₁⋅log T + … + c₅⋅(log T)⁵ per regime
// (Flower 1996, as corrected by Torres 2010).
var bcCoefficients = [3][6]float64{
	Cool: {-0.190537291496456e5, 0.155144866764412e5, -0.421278819301717e4,
		0.381476328422343e3, 0, 0},
	Mid: {-0.370510203809015e5, 0.385672629965804e5, -0.150651486316025e5,
		0.261724637119416e4, -0.170623810323864e3, 0},
	Hot: {-0.118115450538963e6, 0.137145973583929e6, -0.636233812100225e5,
		0.147412923562646e5, -0.170587278406872e4, 0.788731721804990e2},
}

// RegimeOf returns the bolometric correction regime for temperature T.
func RegimeOf(T float64) Regime {
	logT := math.Log10(T)
	switch {
	case logT < CoolMidBreak:
		return Cool
	case logT < MidHotBreak:
		return Mid
	}
	return Hot
}

// BolometricCorrection returns BC = M_bol − M_V for a star of effective
// temperature T. Non-positive temperatures are traced and yield 0.
func BolometricCorrection(T float64) float64 {
	if !(T > 0) || math.IsInf(T, 0) {
		tracer().Errorf("bolometric correction for invalid temperature %g", T)
		return 0
	}
	k := bcCoefficients[RegimeOf(T)]
	logT := math.Log10(T)
	return k[0] + logT*(k[1]+logT*(k[2]+logT*(k[3]+logT*(k[4]+logT*k[5]))))
}

// Photometric constants.
const (
	// FluxConstant is σ / (π⋅(10 pc)²) in SI units; multiplied by T⁴ it gives
	// the flux per steradian of surface at a distance of 10 parsecs.
	FluxConstant = 1.89553328524593e-43
	// MagnitudeZeroPoint is 4.83 + 2.5⋅log10(visual solar flux at 10 pc in W/m²).
	MagnitudeZeroPoint = -18.9669559998301
	// SolarRadius in meters.
	SolarRadius = 6.957e8
)

// SurfaceBrightness is the visual flux per unit of projected stellar disk
// (m²) at 10 parsecs for a star of temperature T: FluxConstant⋅T⁴⋅10^(BC/2.5).
func SurfaceBrightness(T float64) float64 {
	return FluxConstant * math.Pow(T, 4) * math.Pow(10, BolometricCorrection(T)/2.5)
}

// VisualMagnitude converts a visual flux at 10 pc (W/m²) to an absolute
// visual magnitude.
func VisualMagnitude(flux float64) float64 {
	return MagnitudeZeroPoint - (2.5/math.Ln10)*math.Log(flux)
}
