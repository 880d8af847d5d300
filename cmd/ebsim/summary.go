package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/starlab/eclipse"
	"github.com/npillmayer/starlab/presets"
	"github.com/npillmayer/starlab/zoom"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9D4EDD"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Width(22)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

func row(label, format string, args ...any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...))
}

// systemSummary renders parameters and derived properties of a system.
func systemSummary(name string, p eclipse.Params, sys eclipse.System) string {
	lines := []string{
		titleStyle.Render(name),
		row("separation", "%.3f R☉ (e = %.3f)", p.Separation, p.Eccentricity),
		row("inclination", "%.2f°, ω = %.2f°", p.Inclination, p.Longitude),
		row("star 1", "%.2f M☉, %.2f R☉, %.0f K", p.Mass1, p.Radius1, p.Temperature1),
		row("star 2", "%.2f M☉, %.2f R☉, %.0f K", p.Mass2, p.Radius2, p.Temperature2),
		row("period", "%.4f d", sys.Period),
		row("barycentric axes", "%.3f R☉ / %.3f R☉", sys.SemiMajorAxis1, sys.SemiMajorAxis2),
	}
	if sys.Overcontact {
		lines = append(lines, noteStyle.Render("the stars touch at periapsis"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// curveSummary renders the key figures of a light curve.
func curveSummary(lc eclipse.LightCurve) string {
	if lc.NoEclipse {
		return noteStyle.Render("no eclipse for this configuration")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		row("mode", "%s", lc.Mode),
		row("baseline", "%.4f", lc.Baseline),
		row("flux range", "%.4f … %.4f", lc.FluxRange.Min, lc.FluxRange.Max),
		row("magnitude range", "%.4f … %.4f", lc.MagnitudeRange.Min, lc.MagnitudeRange.Max),
		row("closest approach", "sample %.3f", lc.ClosestIndex),
	)
}

// eventSummary renders eclipse timings.
func eventSummary(ev eclipse.Events) string {
	lines := []string{headerStyle.Render("eclipses")}
	for _, ecl := range []eclipse.Eclipse{ev.OfBody1, ev.OfBody2} {
		if !ecl.Occurs {
			lines = append(lines, row(ecl.Eclipsed.String(), "not eclipsed"))
			continue
		}
		kind := "partial"
		if ecl.Total {
			kind = "total"
		}
		lines = append(lines, row(ecl.Eclipsed.String(),
			"%s, phase %.4f – %.4f, duration %.4f, depth %.4f at %.4f",
			kind, ecl.Start, ecl.End, ecl.Duration, ecl.Depth, ecl.MaxPhase))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// zoomSummary renders a zoom selection.
func zoomSummary(d float64, sel zoom.Selection) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		row("distance", "%g AU", d),
		row("pixel position", "%.1f", sel.PixelPosition),
		row("pixels per AU", "%.1f", sel.PixelsPerUnit),
		row("scale bar", "%s (level %d)", sel.Level.Label, sel.LevelIndex),
	)
}

// presetTable lists the preset catalogue.
func presetTable(all []presets.Preset) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%3s  %-10s %6s %6s %6s %6s", "#", "name", "a", "e", "i", "ω")))
	b.WriteString("\n")
	for i, p := range all {
		fmt.Fprintf(&b, "%3d  %-10s %6.2f %6.2f %6.2f %6.1f\n",
			i+1, p.Name, p.Separation, p.Eccentricity, p.Inclination, p.Longitude)
	}
	return b.String()
}
