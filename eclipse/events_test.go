package eclipse

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwinEvents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _ := Recompute(nil, twins())
	ev := s.Events()
	// contact at |cos ν| = (r1+r2)/a = 1/4
	half := math.Asin(0.25) / (2 * math.Pi)
	for _, ecl := range []Eclipse{ev.OfBody1, ev.OfBody2} {
		require.True(t, ecl.Occurs, "%s", ecl.Eclipsed)
		assert.True(t, ecl.Total)
		assert.InDelta(t, 2*half, ecl.Duration, 1e-6)
		assert.InDelta(t, 0.5, ecl.Depth, 1e-6)
	}
	assert.Equal(t, Body1, ev.OfBody1.Eclipsed)
	assert.InDelta(t, 0.25, ev.OfBody1.MaxPhase, 1e-9)
	assert.InDelta(t, 0.25-half, ev.OfBody1.Start, 1e-6)
	assert.InDelta(t, 0.25+half, ev.OfBody1.End, 1e-6)
	assert.InDelta(t, 0.75, ev.OfBody2.MaxPhase, 1e-9)
}

func TestFlatBottomMidEclipse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twins()
	p.Radius1, p.Radius2 = 2, 0.5
	p.Separation = 6
	s, _ := Recompute(nil, p)
	ev := s.Events()
	// body 2 transits body 1 at quarter phase and is occulted at three quarters
	annular, total := ev.OfBody1, ev.OfBody2
	require.True(t, annular.Occurs)
	require.True(t, total.Occurs)
	assert.True(t, total.Total)
	assert.False(t, annular.Total)
	assert.InDelta(t, 0.25, annular.MaxPhase, 1e-6)
	assert.InDelta(t, 0.75, total.MaxPhase, 1e-6)
	for _, ecl := range []Eclipse{annular, total} {
		assert.InDelta(t, (ecl.Start+ecl.End)/2, ecl.MaxPhase, 1e-6, "%s", ecl.Eclipsed)
	}
}

func TestEventsWithoutEclipse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twins()
	p.Inclination = 30
	s, _ := Recompute(nil, p)
	ev := s.Events()
	assert.False(t, ev.OfBody1.Occurs)
	assert.False(t, ev.OfBody2.Occurs)
}

func TestPartialEclipse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := twins()
	p.Inclination = 85
	p.Temperature2 = 3500
	s, _ := Recompute(nil, p)
	ev := s.Events()
	require.True(t, ev.OfBody1.Occurs)
	require.True(t, ev.OfBody2.Occurs)
	assert.False(t, ev.OfBody1.Total)
	// hiding the hotter star costs more light
	assert.Greater(t, ev.OfBody1.Depth, ev.OfBody2.Depth)
	assert.Less(t, ev.OfBody1.Duration, 2*math.Asin(0.25)/(2*math.Pi))
}

func TestSystemOf(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// the Sun-Earth system: 215 solar radii, one year
	p := twins()
	p.Mass2 = 3e-6
	p.Separation = 215.032
	sys := SystemOf(p)
	assert.InDelta(t, 365.25, sys.Period, 1.5)
	assert.InDelta(t, 215.032*3e-6/(1+3e-6), sys.SemiMajorAxis1, 1e-9)
	assert.False(t, sys.Overcontact)
	//
	p = twins()
	p.Mass2 = 3
	sys = SystemOf(p)
	assert.Equal(t, 4.0, sys.MassTotal)
	assert.InDelta(t, 3.0, sys.SemiMajorAxis1, 1e-12)
	assert.InDelta(t, 1.0, sys.SemiMajorAxis2, 1e-12)
	p.Eccentricity = 0.8
	assert.True(t, SystemOf(p).Overcontact)
}
