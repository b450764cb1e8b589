package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"faultmap/internal/core"
	"faultmap/internal/terrain"
)

// EnvPrefix namespaces environment overrides, e.g. FAULTMAP_FAULTS=500.
const EnvPrefix = "FAULTMAP"

// Settings holds every tunable of a generation run and its presentation.
type Settings struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	PercentWater float64 `mapstructure:"percentWater"`
	Faults       int     `mapstructure:"faults"`
	Seed         int64   `mapstructure:"seed"`
	SeedName     string  `mapstructure:"seedName"`
	Workers      int     `mapstructure:"workers"`
	WaterBuckets int     `mapstructure:"waterBuckets"`
	LandBuckets  int     `mapstructure:"landBuckets"`
	LogLevel     string  `mapstructure:"logLevel"`
	Output       string  `mapstructure:"output"`
	Scale        int     `mapstructure:"scale"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 3000)
	v.SetDefault("height", 1500)
	v.SetDefault("percentWater", 0.6)
	v.SetDefault("faults", 2000)
	v.SetDefault("seed", 0)
	v.SetDefault("seedName", "")
	v.SetDefault("workers", 0)
	v.SetDefault("waterBuckets", terrain.DefaultWaterBuckets)
	v.SetDefault("landBuckets", terrain.DefaultLandBuckets)
	v.SetDefault("logLevel", "info")
	v.SetDefault("output", "fractal.png")
	v.SetDefault("scale", 1)
}

// Default returns the settings used when no file or environment overrides
// are present.
func Default() *Settings {
	s, err := Load("")
	if err != nil {
		// Defaults alone cannot fail to decode.
		panic(err)
	}
	return s
}

// Load reads settings from path (JSON, YAML or TOML, chosen by extension)
// layered over defaults and FAULTMAP_* environment variables. An empty path
// skips the file.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &s, nil
}

// Bind attaches the settings to the provided FlagSet so flags override the
// loaded values.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.IntVar(&s.Width, "w", s.Width, "map width in cells")
	fs.IntVar(&s.Height, "h", s.Height, "map height in cells")
	fs.Float64Var(&s.PercentWater, "water", s.PercentWater, "fraction of cells below the water line")
	fs.IntVar(&s.Faults, "faults", s.Faults, "number of faults to accumulate")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "seed for fault sampling")
	fs.StringVar(&s.SeedName, "seed-name", s.SeedName, "seed name; overrides -seed when set")
	fs.IntVar(&s.Workers, "workers", s.Workers, "height engine workers (0 = NumCPU)")
	fs.IntVar(&s.WaterBuckets, "water-buckets", s.WaterBuckets, "palette shades below the water line")
	fs.IntVar(&s.LandBuckets, "land-buckets", s.LandBuckets, "palette shades above the water line")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&s.Output, "o", s.Output, "output PNG path")
	fs.IntVar(&s.Scale, "scale", s.Scale, "pixel scale multiplier for the viewer")
}

// Size returns the configured map dimensions.
func (s *Settings) Size() core.Size { return core.Size{W: s.Width, H: s.Height} }

// EffectiveSeed resolves the seed, preferring the seed name when set.
func (s *Settings) EffectiveSeed() int64 {
	if s.SeedName != "" {
		return core.SeedFromName(s.SeedName)
	}
	return s.Seed
}

// Options converts the settings into pipeline options.
func (s *Settings) Options() terrain.Options {
	return terrain.Options{
		Workers:      s.Workers,
		WaterBuckets: s.WaterBuckets,
		LandBuckets:  s.LandBuckets,
	}
}

// Validate rejects settings the pipeline cannot run with.
func (s *Settings) Validate() error {
	if s.Faults < 0 {
		return fmt.Errorf("%w: fault count %d is negative", terrain.ErrInvalidConfig, s.Faults)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("%w: scale %d must be positive", terrain.ErrInvalidConfig, s.Scale)
	}
	cfg := terrain.MapConfig{Size: s.Size(), PercentWater: s.PercentWater}
	return terrain.Validate(cfg, s.Options())
}

// Snapshot describes the settings for display.
func (s *Settings) Snapshot() core.ParameterSnapshot {
	seed := []core.Parameter{core.Int64Param("seed", "Seed", s.EffectiveSeed())}
	if s.SeedName != "" {
		seed = append(seed, core.StringParam("seedName", "Seed name", s.SeedName))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("width", "Width", s.Width),
				core.IntParam("height", "Height", s.Height),
				core.FloatParam("percentWater", "Water fraction", s.PercentWater),
			},
		},
		{
			Name: "Faults",
			Params: append([]core.Parameter{
				core.IntParam("faults", "Fault count", s.Faults),
			}, seed...),
		},
		{
			Name: "Palette",
			Params: []core.Parameter{
				core.IntParam("waterBuckets", "Water buckets", s.WaterBuckets),
				core.IntParam("landBuckets", "Land buckets", s.LandBuckets),
			},
		},
	}}
}
