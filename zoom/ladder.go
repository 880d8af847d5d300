/*
Package zoom selects display scales for diagrams showing a variable distance,
e.g. a planet's orbit next to its star.

A Ladder is a fixed list of zoom levels, ordered finest to coarsest. A
Selector finds a scale at which a target distance stays on screen, and
reports the ladder level used for labelling the scale bar.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package zoom

import (
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'zoom'
func tracer() tracing.Trace {
	return tracing.Select("zoom")
}

// Conversion factors to astronomical units.
const (
	KilometersPerAU = 149597870.7
	SolarRadiusKm   = 695700.0
	SolarRadiiToAU  = SolarRadiusKm / KilometersPerAU
)

// Level is a single zoom level: the distance a scale bar of base width
// represents, and the resulting pixels per distance unit.
type Level struct {
	Value         float64
	PixelsPerUnit float64
	Label         string
}

// Ladder is a list of zoom levels, ordered from the finest (largest
// PixelsPerUnit) to the coarsest.
type Ladder []Level

// NewLadder creates a ladder of levels for the given scale-bar values (in AU).
// basePixels is the width of the scale bar; a level with value v therefore
// maps one AU to basePixels/v pixels. Non-positive values are dropped.
func NewLadder(basePixels float64, values ...float64) Ladder {
	ladder := make(Ladder, 0, len(values))
	for _, v := range values {
		if !(v > 0) {
			tracer().Infof("zoom ladder: dropping invalid value %g", v)
			continue
		}
		ladder = append(ladder, Level{
			Value:         v,
			PixelsPerUnit: basePixels / v,
			Label:         fmt.Sprintf("%g AU", v),
		})
	}
	sort.SliceStable(ladder, func(i, j int) bool {
		return ladder[i].Value < ladder[j].Value
	})
	return ladder
}

// ScaleBarPixels is the width of the scale bar of the habitable zone diagram.
const ScaleBarPixels = 100

// HabitableZoneLadder is the ladder of the habitable zone diagram, ranging
// from 0.005 AU to 100 AU per scale bar.
func HabitableZoneLadder() Ladder {
	return NewLadder(ScaleBarPixels, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100)
}

// Finest is the level with the most pixels per unit.
func (l Ladder) Finest() Level {
	return l[0]
}

// Coarsest is the level with the fewest pixels per unit.
func (l Ladder) Coarsest() Level {
	return l[len(l)-1]
}

// IndexOf returns the first level whose PixelsPerUnit does not exceed ppu.
// If ppu is finer than every level, IndexOf returns 0; if it is coarser than
// every level, the last index.
func (l Ladder) IndexOf(ppu float64) int {
	for i, level := range l {
		if level.PixelsPerUnit <= ppu {
			return i
		}
	}
	return len(l) - 1
}
