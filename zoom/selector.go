package zoom

import (
	"math"

	"github.com/npillmayer/starlab"
)

// Selector places a distance on a horizontal axis starting at Origin and
// chooses a scale keeping it left of UpperBreakpoint.
type Selector struct {
	Origin          float64 // pixel position of distance 0
	UpperBreakpoint float64 // rightmost pixel position before zooming out
	LowerBreakpoint float64 // leftmost pixel position before zooming in (Track only)
	Step            float64 // decrement of pixels per unit while zooming out
}

// Defaults of the habitable zone diagram: a 960 pixel wide canvas with the
// star at x = 100.
const (
	DefaultOrigin      = 100.0
	DefaultCanvasWidth = 960.0
	DefaultStep        = 1.0
)

// DefaultSelector returns the selector of the habitable zone diagram. The
// upper breakpoint is at 80% of the canvas width.
func DefaultSelector() Selector {
	return Selector{
		Origin:          DefaultOrigin,
		UpperBreakpoint: DefaultCanvasWidth * 0.8,
		LowerBreakpoint: DefaultOrigin + 20,
		Step:            DefaultStep,
	}
}

// Selection is the result of selecting a zoom level.
type Selection struct {
	PixelPosition float64 // pixel position of the target distance
	PixelsPerUnit float64 // the selected scale
	LevelIndex    int     // ladder level used for the scale label, -1 for an empty ladder
	Level         Level
	Origin        float64
}

// Select chooses a scale for distance d with the default selector.
func Select(d float64, ladder Ladder) Selection {
	return DefaultSelector().Select(d, ladder)
}

// Select starts at the finest level of ladder and lowers the scale in steps
// of s.Step until d is placed at or left of the upper breakpoint, or the
// coarsest level is reached. The number of steps is computed, not walked. The reported level is the first one with at
// most the selected pixels per unit.
//
// Distances which are not positive are placed 1 pixel right of the origin.
func (s Selector) Select(d float64, ladder Ladder) Selection {
	if len(ladder) == 0 {
		tracer().Errorf("zoom: cannot select from an empty ladder")
		return Selection{PixelPosition: s.Origin + 1, LevelIndex: -1, Origin: s.Origin}
	}
	step := s.Step
	if !(step > 0) {
		step = DefaultStep
	}
	ppu := ladder.Finest().PixelsPerUnit
	coarsest := ladder.Coarsest().PixelsPerUnit
	pos := s.Origin + offset(d, ppu)
	if pos > s.UpperBreakpoint && ppu > coarsest {
		ppu = s.zoomOut(d, ppu, step, coarsest)
		pos = s.Origin + offset(d, ppu)
	}
	i := ladder.IndexOf(ppu)
	tracer().Debugf("zoom: distance %g at %.1f px/unit, level %s", d, ppu, ladder[i].Label)
	return Selection{
		PixelPosition: pos,
		PixelsPerUnit: ppu,
		LevelIndex:    i,
		Level:         ladder[i],
		Origin:        s.Origin,
	}
}

// zoomOut lowers ppu by the least multiple of step placing d at or left of
// the upper breakpoint, but not below coarsest.
func (s Selector) zoomOut(d, ppu, step, coarsest float64) float64 {
	room := s.UpperBreakpoint - s.Origin
	if !(d > 0) || !starlab.IsFinite(d) || room < 1 {
		// the 1 pixel floor keeps d right of the breakpoint at any scale
		return coarsest
	}
	target := room / d
	k := math.Ceil((ppu - target) / step)
	if ppu-k*step > target {
		k++
	}
	return math.Max(ppu-k*step, coarsest)
}

// Track moves at most one level per call, as an animated diagram does
// between frames: one level coarser if d lies right of the upper
// breakpoint, one level finer if it lies left of the lower breakpoint.
func (s Selector) Track(level int, d float64, ladder Ladder) int {
	if len(ladder) == 0 {
		return -1
	}
	level = int(starlab.Clamp(float64(level), 0, float64(len(ladder)-1)))
	pos := s.Origin + offset(d, ladder[level].PixelsPerUnit)
	switch {
	case pos > s.UpperBreakpoint && level < len(ladder)-1:
		level++
	case pos < s.LowerBreakpoint && level > 0:
		level--
	}
	return level
}

// offset converts a distance to a pixel offset, never less than 1 pixel.
func offset(d, ppu float64) float64 {
	if !(d > 0) || !starlab.IsFinite(d) {
		return 1
	}
	return math.Max(d*ppu, 1)
}

// Pixels converts a distance to a pixel position at the selected scale.
func (sel Selection) Pixels(d float64) float64 {
	return sel.Origin + offset(d, sel.PixelsPerUnit)
}

// Length converts a distance to a pixel length at the selected scale, with
// the same 1 pixel floor as Pixels.
func (sel Selection) Length(d float64) float64 {
	return offset(d, sel.PixelsPerUnit)
}
