package main

import (
	"flag"

	"github.com/npillmayer/starlab/eclipse"
	"github.com/npillmayer/starlab/presets"
)

// systemFlags holds the command line parameters of a binary system.
type systemFlags struct {
	preset                     *string
	eccentricity, separation   *float64
	phase                      *float64
	inclination, longitude     *float64
	mass1, mass2               *float64
	radius1, radius2           *float64
	temperature1, temperature2 *float64
}

func registerSystemFlags(fs *flag.FlagSet) *systemFlags {
	return &systemFlags{
		preset:       fs.String("preset", "Example 1", "Preset system, by name or number"),
		eccentricity: fs.Float64("e", 0, "Eccentricity"),
		separation:   fs.Float64("sep", 0, "Separation in solar radii"),
		phase:        fs.Float64("phase", 0, "Current orbital phase"),
		inclination:  fs.Float64("incl", 0, "Inclination in degrees (90 = edge-on)"),
		longitude:    fs.Float64("long", 0, "Longitude of periapsis in degrees"),
		mass1:        fs.Float64("m1", 0, "Mass of star 1 in solar masses"),
		mass2:        fs.Float64("m2", 0, "Mass of star 2 in solar masses"),
		radius1:      fs.Float64("r1", 0, "Radius of star 1 in solar radii"),
		radius2:      fs.Float64("r2", 0, "Radius of star 2 in solar radii"),
		temperature1: fs.Float64("t1", 0, "Temperature of star 1 in K"),
		temperature2: fs.Float64("t2", 0, "Temperature of star 2 in K"),
	}
}

// params starts from the preset and applies every system flag given
// explicitly on the command line.
func (sf *systemFlags) params(fs *flag.FlagSet) (string, eclipse.Params, error) {
	preset, err := presets.Lookup(*sf.preset)
	if err != nil {
		return "", eclipse.Params{}, err
	}
	p := preset.Params()
	overrides := map[string]*float64{
		"e":     &p.Eccentricity,
		"sep":   &p.Separation,
		"phase": &p.Phase,
		"incl":  &p.Inclination,
		"long":  &p.Longitude,
		"m1":    &p.Mass1,
		"m2":    &p.Mass2,
		"r1":    &p.Radius1,
		"r2":    &p.Radius2,
		"t1":    &p.Temperature1,
		"t2":    &p.Temperature2,
	}
	name := preset.Name
	fs.Visit(func(f *flag.Flag) {
		if target, ok := overrides[f.Name]; ok {
			*target = f.Value.(flag.Getter).Get().(float64)
			name = preset.Name + " (modified)"
		}
	})
	return name, p, nil
}
