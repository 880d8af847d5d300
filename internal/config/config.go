// Package config handles configuration of the ebsim command line tool.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/starlab/eclipse"
	"github.com/npillmayer/starlab/zoom"
)

// Config holds all settings of the tool.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	View    ViewConfig    `yaml:"view"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig holds the numerical settings of the light curve engine.
type EngineConfig struct {
	Samples          int     `yaml:"samples"`
	Refinement       int     `yaml:"refinement"`
	MinMagnitudeSpan float64 `yaml:"min_magnitude_span"`
	Overlap          string  `yaml:"overlap"` // "analytic" or "polygonal"
	DiskVertices     int     `yaml:"disk_vertices"`
}

// ViewConfig holds the settings of the zoom selector.
type ViewConfig struct {
	Origin          float64 `yaml:"origin"`
	UpperBreakpoint float64 `yaml:"upper_breakpoint"`
	LowerBreakpoint float64 `yaml:"lower_breakpoint"`
	Step            float64 `yaml:"step"`
}

// OutputConfig holds plot settings.
type OutputConfig struct {
	Mode   string `yaml:"mode"` // "flux" or "magnitude"
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the engine's standard settings.
func Default() *Config {
	ecfg := eclipse.DefaultConfig()
	sel := zoom.DefaultSelector()
	return &Config{
		Engine: EngineConfig{
			Samples:          ecfg.Samples,
			Refinement:       ecfg.Refinement,
			MinMagnitudeSpan: ecfg.MinMagnitudeSpan,
			Overlap:          ecfg.Overlap.String(),
			DiskVertices:     ecfg.DiskVertices,
		},
		View: ViewConfig{
			Origin:          sel.Origin,
			UpperBreakpoint: sel.UpperBreakpoint,
			LowerBreakpoint: sel.LowerBreakpoint,
			Step:            sel.Step,
		},
		Output: OutputConfig{
			Mode:   eclipse.ModeFlux.String(),
			Width:  800,
			Height: 400,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// EclipseConfig converts the engine section to engine settings.
func (c *Config) EclipseConfig() eclipse.Config {
	return eclipse.Config{
		Samples:          c.Engine.Samples,
		Refinement:       c.Engine.Refinement,
		MinMagnitudeSpan: c.Engine.MinMagnitudeSpan,
		Overlap:          eclipse.ParseOverlapMethod(c.Engine.Overlap),
		DiskVertices:     c.Engine.DiskVertices,
	}
}

// Selector converts the view section to a zoom selector.
func (c *Config) Selector() zoom.Selector {
	return zoom.Selector{
		Origin:          c.View.Origin,
		UpperBreakpoint: c.View.UpperBreakpoint,
		LowerBreakpoint: c.View.LowerBreakpoint,
		Step:            c.View.Step,
	}
}

// Mode is the light curve mode of the output section.
func (c *Config) Mode() eclipse.Mode {
	return eclipse.ParseMode(c.Output.Mode)
}

// ErrInvalid is returned for settings the tool cannot work with.
var ErrInvalid = errors.New("invalid configuration")

// MinStep is the smallest accepted zoom step, in pixels per AU.
const MinStep = 0.01

// Validate checks the view section.
func (c *Config) Validate() error {
	v := c.View
	if !(v.Step >= MinStep) || math.IsInf(v.Step, 1) {
		return fmt.Errorf("%w: view step %g, want at least %g", ErrInvalid, v.Step, MinStep)
	}
	if !(v.UpperBreakpoint > v.Origin) {
		return fmt.Errorf("%w: upper breakpoint %g is not right of origin %g",
			ErrInvalid, v.UpperBreakpoint, v.Origin)
	}
	return nil
}
