/*
Package presets holds a catalogue of well-known eclipsing binary systems,
ready to be fed into the light curve engine.

The catalogue is embedded as YAML and decoded once, on first use.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package presets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/starlab/eclipse"
	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by Lookup for names not in the catalogue.
var ErrUnknownPreset = errors.New("unknown preset")

//go:embed presets.yaml
var catalogue []byte

// Star holds the physical properties of one component.
type Star struct {
	Mass        float64 `yaml:"mass"`
	Radius      float64 `yaml:"radius"`
	Temperature float64 `yaml:"temperature"`
}

// Preset is a named binary system.
type Preset struct {
	Name         string  `yaml:"name"`
	Longitude    float64 `yaml:"longitude"`
	Inclination  float64 `yaml:"inclination"`
	Star1        Star    `yaml:"star1"`
	Star2        Star    `yaml:"star2"`
	Separation   float64 `yaml:"separation"`
	Eccentricity float64 `yaml:"eccentricity"`
}

// Params converts a preset to engine parameters, at phase 0 and in flux mode.
func (p Preset) Params() eclipse.Params {
	return eclipse.Params{
		OrbitalElements: eclipse.OrbitalElements{
			Eccentricity: p.Eccentricity,
			Separation:   p.Separation,
		},
		BodyPair: eclipse.BodyPair{
			Mass1:   p.Star1.Mass,
			Mass2:   p.Star2.Mass,
			Radius1: p.Star1.Radius,
			Radius2: p.Star2.Radius,
		},
		ViewingGeometry: eclipse.ViewingGeometry{
			Inclination: p.Inclination,
			Longitude:   p.Longitude,
		},
		Temperature1: p.Star1.Temperature,
		Temperature2: p.Star2.Temperature,
	}
}

var (
	loadOnce sync.Once
	all      []Preset
	loadErr  error
)

// Parse decodes a preset catalogue.
func Parse(data []byte) ([]Preset, error) {
	var presets []Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("decoding presets: %w", err)
	}
	for i, p := range presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("preset #%d has no name", i+1)
		}
	}
	return presets, nil
}

func load() ([]Preset, error) {
	loadOnce.Do(func() {
		all, loadErr = Parse(catalogue)
	})
	return all, loadErr
}

// All returns a copy of the embedded catalogue, in catalogue order.
func All() []Preset {
	presets, err := load()
	if err != nil {
		panic(err) // embedded data is part of the build
	}
	return append([]Preset(nil), presets...)
}

// Names lists the names of all presets, in catalogue order.
func Names() []string {
	presets := All()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a preset by name, ignoring case and surrounding blanks. A
// 1-based catalogue number is accepted as well.
func Lookup(name string) (Preset, error) {
	key := strings.TrimSpace(name)
	presets := All()
	for _, p := range presets {
		if strings.EqualFold(p.Name, key) {
			return p, nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(key, "%d", &n); err == nil && fmt.Sprint(n) == key {
		if n >= 1 && n <= len(presets) {
			return presets[n-1], nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
