package eclipse

// OverlapMethod selects how the hidden area of two overlapping disks is
// computed.
type OverlapMethod int8

// Overlap methods.
const (
	OverlapAnalytic  OverlapMethod = iota // closed-form lens area
	OverlapPolygonal                      // clipping of polygonized disks
)

func (m OverlapMethod) String() string {
	if m == OverlapPolygonal {
		return "polygonal"
	}
	return "analytic"
}

// ParseOverlapMethod maps "polygonal" to OverlapPolygonal, anything else to
// OverlapAnalytic.
func ParseOverlapMethod(s string) OverlapMethod {
	if s == "polygonal" {
		return OverlapPolygonal
	}
	return OverlapAnalytic
}

const (
	// DefaultSamples is the number of samples per orbital period. It must be
	// even, as the second half of the position table mirrors the first.
	DefaultSamples = 300
	// DefaultRefinement is the number of sub-steps per sample cell used to
	// locate the closest approach of the two stars.
	DefaultRefinement = 15
	// DefaultMinMagnitudeSpan is the smallest vertical extent of a magnitude
	// plot. Shallower curves are widened symmetrically.
	DefaultMinMagnitudeSpan = 0.1
	// DefaultDiskVertices is the number of polygon vertices per stellar disk
	// for OverlapPolygonal.
	DefaultDiskVertices = 256
)

// Config holds the numerical settings of the engine.
type Config struct {
	Samples          int
	Refinement       int
	MinMagnitudeSpan float64
	Overlap          OverlapMethod
	DiskVertices     int
}

// DefaultConfig returns the standard engine settings.
func DefaultConfig() Config {
	return Config{
		Samples:          DefaultSamples,
		Refinement:       DefaultRefinement,
		MinMagnitudeSpan: DefaultMinMagnitudeSpan,
		Overlap:          OverlapAnalytic,
		DiskVertices:     DefaultDiskVertices,
	}
}

// normalized forces the sample count to be even and at least 4, and all
// other settings to be positive.
func (c Config) normalized() Config {
	if c.Samples < 4 {
		c.Samples = DefaultSamples
	}
	if c.Samples%2 != 0 {
		c.Samples++
	}
	if c.Refinement < 1 {
		c.Refinement = 1
	}
	if !(c.MinMagnitudeSpan >= 0) {
		c.MinMagnitudeSpan = DefaultMinMagnitudeSpan
	}
	if c.DiskVertices < 1 {
		c.DiskVertices = DefaultDiskVertices
	}
	return c
}
