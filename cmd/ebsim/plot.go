package main

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/npillmayer/starlab/eclipse"
	"github.com/npillmayer/starlab/stellar"
	"github.com/npillmayer/starlab/zoom"
)

const plotMargin = 40

// curveY maps a curve value to a pixel row. Bright is up: large flux, small
// magnitude.
func curveY(lc eclipse.LightCurve, v float64, top, height int) int {
	span := lc.Range.Span()
	if span <= 0 {
		return top + height/2
	}
	f := (lc.Range.Max - v) / span
	if lc.Mode == eclipse.ModeMagnitude {
		f = (v - lc.Range.Min) / span
	}
	return top + int(math.Round(f*float64(height)))
}

func curveX(phase float64, left, width int) int {
	return left + int(math.Round(phase*float64(width)))
}

// writeCurveSVG plots a light curve, phase on the horizontal axis.
func writeCurveSVG(w io.Writer, lc eclipse.LightCurve, width, height int) {
	pw, ph := width-2*plotMargin, height-2*plotMargin
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")
	canvas.Rect(plotMargin, plotMargin, pw, ph, "fill:none;stroke:rgb(160,160,160)")
	xs := make([]int, len(lc.Points))
	ys := make([]int, len(lc.Points))
	for i, pt := range lc.Points {
		xs[i] = curveX(pt.Phase, plotMargin, pw)
		ys[i] = curveY(lc, pt.Value, plotMargin, ph)
	}
	canvas.Polyline(xs, ys, "fill:none;stroke:rgb(20,60,200);stroke-width:2")
	if len(lc.Points) > 0 {
		mx := curveX(lc.Marker.Phase, plotMargin, pw)
		my := curveY(lc, lc.Marker.Value, plotMargin, ph)
		canvas.Circle(mx, my, 4, "fill:rgb(220,40,40)")
	}
	label := "normalized flux"
	if lc.Mode == eclipse.ModeMagnitude {
		label = "visual magnitude"
	}
	text := "font-family:sans-serif;font-size:12px;fill:rgb(60,60,60)"
	canvas.Text(plotMargin, plotMargin-10, label, text)
	canvas.Text(plotMargin+pw, height-plotMargin/2, "phase", text+";text-anchor:end")
	canvas.Text(plotMargin-4, plotMargin+4, fmt.Sprintf("%.3f", topValue(lc)), text+";text-anchor:end")
	canvas.Text(plotMargin-4, plotMargin+ph, fmt.Sprintf("%.3f", bottomValue(lc)), text+";text-anchor:end")
	canvas.End()
}

func topValue(lc eclipse.LightCurve) float64 {
	if lc.Mode == eclipse.ModeMagnitude {
		return lc.Range.Min
	}
	return lc.Range.Max
}

func bottomValue(lc eclipse.LightCurve) float64 {
	if lc.Mode == eclipse.ModeMagnitude {
		return lc.Range.Max
	}
	return lc.Range.Min
}

// writeZoomSVG draws the habitable zone diagram: a star at the origin, its
// habitable zone and the selected planet position, with a scale bar. The
// star is colored by its temperature.
func writeZoomSVG(w io.Writer, sel zoom.Selection, starRadius, luminosity float64) {
	const width, height, cy = 960, 300, 150
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(0,0,0)")
	inner, outer := stellar.HabitableZone(luminosity)
	x0 := int(sel.Origin)
	xi, xo := int(sel.Pixels(inner)), int(sel.Pixels(outer))
	canvas.Rect(xi, 0, max(xo-xi, 1), height, "fill:rgb(30,120,40);fill-opacity:0.5")
	r := int(math.Round(sel.Length(starRadius * zoom.SolarRadiiToAU)))
	c := stellar.ColorFromTemp(stellar.TempFromLuminosityAndRadius(luminosity, starRadius))
	canvas.Circle(x0, cy, r, fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B))
	canvas.Circle(int(sel.PixelPosition), cy, 5, "fill:rgb(80,160,255)")
	text := "font-family:sans-serif;font-size:14px;fill:rgb(255,255,255)"
	canvas.Text(800, 40, sel.Level.Label, text)
	canvas.Rect(800, 50, zoom.ScaleBarPixels, 10, "fill:rgb(255,255,255)")
	canvas.End()
}
