package eclipse

import "math"

// PeriodConstant converts a³/M in solar radii³ per solar mass to a period²
// in days², P = 0.115496⋅√(a³/M).
const PeriodConstant = 0.115496

// System summarizes the physical properties of a binary.
type System struct {
	MassTotal      float64 // solar masses
	SemiMajorAxis1 float64 // solar radii, orbit of body 1 around the barycenter
	SemiMajorAxis2 float64
	Period         float64 // days
	Periapsis      float64 // closest separation, solar radii
	Overcontact    bool    // the stars touch at periapsis
}

// SystemOf derives the physical summary of p.
func SystemOf(p Params) System {
	p = p.Sanitized()
	a1, a2 := p.SemiMajorAxes()
	M := p.MassTotal()
	a := p.Separation
	peri := a * (1 - p.Eccentricity)
	return System{
		MassTotal:      M,
		SemiMajorAxis1: a1,
		SemiMajorAxis2: a2,
		Period:         PeriodConstant * math.Sqrt(a*a*a/M),
		Periapsis:      peri,
		Overcontact:    peri < p.Radius1+p.Radius2,
	}
}
