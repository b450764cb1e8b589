package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultmap/internal/core"
	"faultmap/internal/terrain"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, s.Width)
	assert.Equal(t, 1500, s.Height)
	assert.Equal(t, 0.6, s.PercentWater)
	assert.Equal(t, 2000, s.Faults)
	assert.Equal(t, int64(0), s.Seed)
	assert.Equal(t, "", s.SeedName)
	assert.Equal(t, 0, s.Workers)
	assert.Equal(t, terrain.DefaultWaterBuckets, s.WaterBuckets)
	assert.Equal(t, terrain.DefaultLandBuckets, s.LandBuckets)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "fractal.png", s.Output)
	assert.Equal(t, 1, s.Scale)
	assert.Equal(t, s, Default())
}

func TestLoad_WithJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faultmap.json")
	cfg := `{
		"width": 640,
		"height": 320,
		"percentWater": 0.45,
		"seedName": "atlas",
		"logLevel": "debug"
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, s.Width)
	assert.Equal(t, 320, s.Height)
	assert.Equal(t, 0.45, s.PercentWater)
	assert.Equal(t, "atlas", s.SeedName)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 2000, s.Faults, "unset keys keep their defaults")
}

func TestLoad_WithYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faultmap.yaml")
	cfg := "faults: 250\nwaterBuckets: 8\nlandBuckets: 24\noutput: out/map.png\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250, s.Faults)
	assert.Equal(t, 8, s.WaterBuckets)
	assert.Equal(t, 24, s.LandBuckets)
	assert.Equal(t, "out/map.png", s.Output)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/faultmap.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("FAULTMAP_FAULTS", "500")
	t.Setenv("FAULTMAP_LOGLEVEL", "warn")

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 500, s.Faults)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestBind_FlagsOverrideLoadedValues(t *testing.T) {
	s := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-w", "128", "-h", "64", "-water", "0.3", "-faults", "10", "-seed", "77", "-o", "x.png"}))

	assert.Equal(t, core.Size{W: 128, H: 64}, s.Size())
	assert.Equal(t, 0.3, s.PercentWater)
	assert.Equal(t, 10, s.Faults)
	assert.Equal(t, int64(77), s.EffectiveSeed())
	assert.Equal(t, "x.png", s.Output)
}

func TestEffectiveSeedPrefersName(t *testing.T) {
	s := Default()
	s.Seed = 5
	assert.Equal(t, int64(5), s.EffectiveSeed())

	s.SeedName = "atlas"
	assert.Equal(t, core.SeedFromName("atlas"), s.EffectiveSeed())
}

func TestValidate(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())

	bad := *s
	bad.PercentWater = 1.5
	assert.ErrorIs(t, bad.Validate(), terrain.ErrInvalidConfig)

	bad = *s
	bad.Faults = -1
	assert.ErrorIs(t, bad.Validate(), terrain.ErrInvalidConfig)

	bad = *s
	bad.Scale = 0
	assert.ErrorIs(t, bad.Validate(), terrain.ErrInvalidConfig)

	bad = *s
	bad.Width = 0
	assert.ErrorIs(t, bad.Validate(), terrain.ErrInvalidConfig)
}

func TestSnapshotListsSeed(t *testing.T) {
	s := Default()
	s.SeedName = "atlas"

	lines := s.Snapshot().Lines()
	assert.Contains(t, lines, "  Seed name: atlas")
	assert.Contains(t, lines, "  Fault count: 2000")
	assert.Contains(t, lines, "[Palette]")
}
