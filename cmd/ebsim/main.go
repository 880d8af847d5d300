/*
Command ebsim computes synthetic light curves of eclipsing binary stars.

Usage:

	ebsim curve   [flags]   light curve as SVG or table, plus a system summary
	ebsim events  [flags]   eclipse timings
	ebsim zoom    [flags]   zoom level of the habitable zone diagram
	ebsim presets           list the preset catalogue

System parameters start from a preset (-preset) and may be overridden one
by one. Run 'ebsim <command> -h' for the flags of a command.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/starlab/eclipse"
	"github.com/npillmayer/starlab/internal/config"
	"github.com/npillmayer/starlab/internal/logger"
	"github.com/npillmayer/starlab/presets"
	"github.com/npillmayer/starlab/stellar"
	"github.com/npillmayer/starlab/zoom"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "ebsim:", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: ebsim curve|events|zoom|presets [flags]")

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "curve":
		return runCurve(args, out)
	case "events":
		return runEvents(args, out)
	case "zoom":
		return runZoom(args, out)
	case "presets":
		fmt.Fprint(out, presetTable(presets.All()))
		return nil
	}
	return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

// setup parses the flags of a sub-command, loads the configuration and
// initializes logging.
func setup(fs *flag.FlagSet, f *config.Flags, args []string) (*config.Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := config.Load(f)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	return cfg, nil
}

func runCurve(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("curve", flag.ContinueOnError)
	f := config.RegisterFlags(fs)
	sf := registerSystemFlags(fs)
	svgPath := fs.String("svg", "", "Write the light curve as SVG to this file")
	table := fs.Bool("table", false, "Print the curve points")
	cfg, err := setup(fs, f, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	name, p, err := sf.params(fs)
	if err != nil {
		return err
	}
	p.Mode = cfg.Mode()
	engine := eclipse.NewEngine(cfg.EclipseConfig())
	lc, tier := engine.Update(p)
	logger.Log.Debug("light curve computed",
		zap.String("system", name),
		zap.Stringer("tier", tier),
		zap.Int("points", len(lc.Points)),
		zap.Bool("eclipse", !lc.NoEclipse))

	s := engine.Solution()
	fmt.Fprintln(out, systemSummary(name, s.Params, eclipse.SystemOf(s.Params)))
	fmt.Fprintln(out, curveSummary(lc))
	if *table {
		for _, pt := range lc.Points {
			fmt.Fprintf(out, "%.5f\t%.6f\n", pt.Phase, pt.Value)
		}
	}
	if *svgPath != "" {
		err := writeFile(*svgPath, func(w io.Writer) {
			writeCurveSVG(w, lc, cfg.Output.Width, cfg.Output.Height)
		})
		if err != nil {
			return fmt.Errorf("writing plot: %w", err)
		}
		logger.Sugar.Infof("light curve written to %s", *svgPath)
	}
	return nil
}

func runEvents(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	f := config.RegisterFlags(fs)
	sf := registerSystemFlags(fs)
	cfg, err := setup(fs, f, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	name, p, err := sf.params(fs)
	if err != nil {
		return err
	}
	s, _ := eclipse.RecomputeWith(cfg.EclipseConfig(), nil, p)
	fmt.Fprintln(out, systemSummary(name, s.Params, eclipse.SystemOf(s.Params)))
	fmt.Fprintln(out, eventSummary(s.Events()))
	return nil
}

func runZoom(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("zoom", flag.ContinueOnError)
	f := config.RegisterFlags(fs)
	distance := fs.Float64("distance", 1, "Planet distance in AU")
	radius := fs.Float64("radius", 1, "Stellar radius in solar radii")
	temp := fs.Float64("temp", 0, "Stellar temperature in K (default: main sequence value for the radius)")
	svgPath := fs.String("svg", "", "Write the diagram as SVG to this file")
	cfg, err := setup(fs, f, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sel := cfg.Selector().Select(*distance, zoom.HabitableZoneLadder())
	fmt.Fprintln(out, zoomSummary(*distance, sel))
	if *svgPath != "" {
		T := *temp
		if !(T > 0) {
			T = stellar.TempFromRadius(*radius)
		}
		lum := stellar.LuminosityFromRadiusAndTemp(*radius, T)
		err := writeFile(*svgPath, func(w io.Writer) {
			writeZoomSVG(w, sel, *radius, lum)
		})
		if err != nil {
			return fmt.Errorf("writing diagram: %w", err)
		}
		logger.Sugar.Infof("diagram written to %s", *svgPath)
	}
	return nil
}

// writeFile creates path and hands it to write. A failing close is reported,
// as it may lose buffered output.
func writeFile(path string, write func(io.Writer)) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	write(file)
	return nil
}
