package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/starlab/eclipse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, eclipse.DefaultConfig(), cfg.EclipseConfig())
	assert.Equal(t, 100.0, cfg.View.Origin)
	assert.Equal(t, 768.0, cfg.View.UpperBreakpoint)
	assert.Equal(t, eclipse.ModeFlux, cfg.Mode())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
engine:
  samples: 600
  overlap: polygonal

view:
  upper_breakpoint: 500

output:
  mode: magnitude

logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, configPath))
	assert.Equal(t, 600, cfg.Engine.Samples)
	assert.Equal(t, eclipse.OverlapPolygonal, cfg.EclipseConfig().Overlap)
	assert.Equal(t, 500.0, cfg.Selector().UpperBreakpoint)
	assert.Equal(t, eclipse.ModeMagnitude, cfg.Mode())
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched values keep their defaults
	assert.Equal(t, eclipse.DefaultRefinement, cfg.Engine.Refinement)
	assert.Equal(t, 100.0, cfg.View.Origin)
	assert.Equal(t, 800, cfg.Output.Width)
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "ebsim.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  mode: magnitude\n  width: 1000\n"), 0644))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", configPath, "-mode", "flux", "-debug"}))

	cfg, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, "flux", cfg.Output.Mode)
	assert.Equal(t, 1000, cfg.Output.Width)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	f := &Flags{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}
	_, err := Load(f)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Engine.DiskVertices = 64
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, cfg, loaded)
}

func TestRejectTinyZoomStep(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "ebsim.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("view:\n  step: 0.000001\n"), 0644))
	_, err := Load(&Flags{ConfigPath: configPath})
	assert.ErrorIs(t, err, ErrInvalid)

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	cfg.View.UpperBreakpoint = cfg.View.Origin
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
