package config

import "flag"

// Flags holds the configuration overrides given on the command line.
// Each sub-command registers them on its own flag set.
type Flags struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Mode       string
	Overlap    string
	Samples    int
	Width      int
	Height     int
}

// RegisterFlags defines the common configuration flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log", "", "Write log to file (rotated)")
	fs.StringVar(&f.Mode, "mode", "", "Light curve mode: flux or magnitude")
	fs.StringVar(&f.Overlap, "overlap", "", "Overlap method: analytic or polygonal")
	fs.IntVar(&f.Samples, "samples", 0, "Samples per orbit")
	fs.IntVar(&f.Width, "width", 0, "Plot width in pixels")
	fs.IntVar(&f.Height, "height", 0, "Plot height in pixels")
	return f
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Mode != "" {
		cfg.Output.Mode = f.Mode
	}
	if f.Overlap != "" {
		cfg.Engine.Overlap = f.Overlap
	}
	if f.Samples > 0 {
		cfg.Engine.Samples = f.Samples
	}
	if f.Width > 0 {
		cfg.Output.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Output.Height = f.Height
	}
}
