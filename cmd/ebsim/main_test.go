package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/starlab/eclipse"
	"github.com/npillmayer/starlab/zoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPresets(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"presets"}, &out))
	assert.Contains(t, out.String(), "KP Aql")
	assert.Contains(t, out.String(), "EF Dra")
}

func TestRunUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(nil, &out), errUsage)
	assert.ErrorIs(t, run([]string{"orbit"}, &out), errUsage)
}

func TestRunCurve(t *testing.T) {
	svgPath := filepath.Join(t.TempDir(), "curve.svg")
	var out bytes.Buffer
	err := run([]string{"curve", "-preset", "KP Aql", "-table", "-svg", svgPath}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "KP Aql")
	lines := strings.Count(out.String(), "\n")
	assert.Greater(t, lines, eclipse.DefaultSamples)

	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<polyline")
	assert.Contains(t, string(data), "normalized flux")
}

func TestRunEvents(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"events", "-preset", "1", "-incl", "30"}, &out))
	assert.Contains(t, out.String(), "Example 1 (modified)")
	assert.Contains(t, out.String(), "not eclipsed")
	out.Reset()
	require.NoError(t, run([]string{"events", "-preset", "1"}, &out))
	assert.Contains(t, out.String(), "total")
}

func TestRunUnknownPreset(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"curve", "-preset", "Vega"}, &out))
}

func TestRunZoom(t *testing.T) {
	svgPath := filepath.Join(t.TempDir(), "zoom.svg")
	var out bytes.Buffer
	require.NoError(t, run([]string{"zoom", "-distance", "1", "-svg", svgPath}, &out))
	assert.Contains(t, out.String(), "0.5 AU")
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<circle")
}

func TestSystemFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	sf := registerSystemFlags(fs)
	require.NoError(t, fs.Parse([]string{"-preset", "KP Aql", "-e", "0.2", "-t2", "5000"}))
	name, p, err := sf.params(fs)
	require.NoError(t, err)
	assert.Equal(t, "KP Aql (modified)", name)
	assert.Equal(t, 0.2, p.Eccentricity)
	assert.Equal(t, 5000.0, p.Temperature2)
	assert.Equal(t, 13.61, p.Separation)
}

func TestCurvePixelMapping(t *testing.T) {
	lc := eclipse.LightCurve{Mode: eclipse.ModeFlux, Range: eclipse.Range{Min: 0.5, Max: 1}}
	assert.Equal(t, 10, curveY(lc, 1, 10, 100))
	assert.Equal(t, 110, curveY(lc, 0.5, 10, 100))
	lc = eclipse.LightCurve{Mode: eclipse.ModeMagnitude, Range: eclipse.Range{Min: 4, Max: 5}}
	assert.Equal(t, 10, curveY(lc, 4, 10, 100))
	assert.Equal(t, 60, curveY(lc, 4.5, 10, 100))
	lc = eclipse.LightCurve{Range: eclipse.Range{Min: 1, Max: 1}}
	assert.Equal(t, 60, curveY(lc, 1, 10, 100))
	assert.Equal(t, 50, curveX(0.5, 0, 100))
}

func TestZoomSVGCoarseScale(t *testing.T) {
	var buf bytes.Buffer
	sel := zoom.Select(100, zoom.HabitableZoneLadder())
	writeZoomSVG(&buf, sel, 1, 1)
	// 100 + 100⋅ppu ≤ 768 selects 6 px/AU, labelled by the 2 px/AU level
	assert.Equal(t, 6.0, sel.PixelsPerUnit)
	assert.Contains(t, buf.String(), "50 AU")
	// a sun of 1 R☉ and 1 L☉ is drawn at 5808 K
	assert.Contains(t, buf.String(), "fill:rgb(255,242,231)")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, writeFile(path, func(w io.Writer) {
		io.WriteString(w, "<svg/>")
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
	err = writeFile(filepath.Join(t.TempDir(), "missing", "out.svg"), func(io.Writer) {})
	assert.Error(t, err)
}
