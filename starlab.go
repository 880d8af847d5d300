/*
Package starlab implements the numeric groundwork for a set of educational
astronomy simulations: ε-predicates, defensive coercion of slider input,
2D-points in an orbital plane, 3D-vectors and rotations for viewing
geometries.

The physics lives in the sub-packages: kepler (orbit solving), eclipse
(light curves of eclipsing binaries), stellar (stellar relations),
zoom (display scale selection) and polygon (polygon clipping).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package starlab

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'starlab'
func tracer() tracing.Trace {
	return tracing.Select("starlab")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
const Deg2Rad float64 = math.Pi / 180

// TwoPi is a full turn in radians.
const TwoPi float64 = 2 * math.Pi

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Tiny replaces a zero divisor where a computation must stay finite.
const Tiny float64 = 1e-8

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// ForceFinite returns n if it is a finite number and deflt otherwise.
// Parameters coming from UI sliders are coerced, never rejected.
func ForceFinite(n, deflt float64) float64 {
	if !IsFinite(n) {
		tracer().Debugf("coerced non-finite value %g to %g", n, deflt)
		return deflt
	}
	return n
}

// Clamp forces n into [lo,hi]. NaN is mapped to lo.
func Clamp(n, lo, hi float64) float64 {
	if math.IsNaN(n) || n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Fract returns the fractional part of n in [0,1), for negative n as well.
func Fract(n float64) float64 {
	f := n - math.Floor(n)
	if f >= 1 { // -tiny - floor(-tiny) rounds up to 1
		f = 0
	}
	return f
}

// WrapAngle reduces an angle to [0,2π).
func WrapAngle(a float64) float64 {
	return Fract(a/TwoPi) * TwoPi
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, e.g. a position in an orbital plane.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Polar constructs a pair from a radius and an angle (radians).
func Polar(r, theta float64) Pair {
	return P(r*math.Cos(theta), r*math.Sin(theta))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Abs is the distance of p from the origin.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Mirrored returns p reflected at the x-axis.
func (p Pair) Mirrored() Pair {
	return P(p.X(), -p.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Equal compares two pairs up to ε.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Vec lifts a pair into 3D space, at z = 0.
func (p Pair) Vec() Vec {
	return Vec{p.X(), p.Y(), 0}
}

// === 3D Vectors and Rotations ==============================================

// Vec is a 3D-vector.
type Vec [3]float64

// X, Y and Z are the components of a vector.
func (v Vec) X() float64 { return v[0] }
func (v Vec) Y() float64 { return v[1] }
func (v Vec) Z() float64 { return v[2] }

// Scaled returns a new vector scaled by factor a.
func (v Vec) Scaled(a float64) Vec {
	return Vec{v[0] * a, v[1] * a, v[2] * a}
}

// PlanarDistance is the length of the projection of v onto the xy-plane.
func (v Vec) PlanarDistance() float64 {
	return math.Hypot(v[0], v[1])
}

func (v Vec) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v[0], v[1], v[2])
}

// Rot is a rotation in 3D space, a 3x3 matrix flattened by rows.
type Rot []float64

// Internal constructor. Clients implicitely use this as a starting point for
// rotation combinations.
func newRot() Rot {
	m := make([]float64, 9)
	return m
}

func (m Rot) get(row, col int) float64 {
	return m[row*3+col]
}

func (m Rot) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m Rot) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m Rot) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity rotation. Will transform a vector onto itself.
func Identity() Rot {
	m := newRot()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// RotationZ rotates counter-clockwise around the z-axis, i.e. within the
// xy-plane. Argument is in radians.
func RotationZ(theta float64) Rot {
	m := newRot()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// RotationX rotates counter-clockwise around the x-axis, tilting the
// xy-plane towards z. Argument is in radians.
func RotationX(theta float64) Rot {
	m := newRot()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, 1.0)
	m.set(1, 1, cos)
	m.set(1, 2, -sin)
	m.set(2, 1, sin)
	m.set(2, 2, cos)
	return m
}

// Debug Stringer for a rotation.
func (m Rot) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 rotations to a new one, applying m first and n second.
// Returns a new rotation without changing the argument(s).
func (m Rot) Combine(n Rot) Rot {
	o := newRot()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 3D-vector. The argument is unchanged and a new vector is returned.
func (m Rot) Transform(v Vec) Vec {
	return Vec{
		dotProd(m.row(0), v[:]),
		dotProd(m.row(1), v[:]),
		dotProd(m.row(2), v[:]),
	}
}
