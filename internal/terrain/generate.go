package terrain

import (
	"errors"
	"fmt"
	"math"

	"faultmap/internal/core"
)

const (
	// DefaultWaterBuckets is the number of palette shades used below the
	// water threshold.
	DefaultWaterBuckets = 16
	// DefaultLandBuckets is the number of palette shades used at or above
	// the water threshold.
	DefaultLandBuckets = 15
	// MaxBuckets bounds water+land so every bucket fits in a uint8.
	MaxBuckets = 256
)

// ErrInvalidConfig reports a configuration that cannot be generated.
var ErrInvalidConfig = errors.New("invalid map config")

// MapConfig describes a single generation run.
type MapConfig struct {
	Size         core.Size
	PercentWater float64
	Faults       []Fault
}

// Options tunes how a run is executed and quantized.
type Options struct {
	// Workers sets the size of the height engine pool; 0 means NumCPU.
	Workers      int
	WaterBuckets int
	LandBuckets  int
}

// DefaultOptions returns the standard bucket split with an automatic
// worker count.
func DefaultOptions() Options {
	return Options{WaterBuckets: DefaultWaterBuckets, LandBuckets: DefaultLandBuckets}
}

// Result carries every artifact of a generation run.
type Result struct {
	Size      core.Size
	Faults    []Fault
	Heights   *HeightField
	Min, Max  int32
	Threshold int32
	Colors    *ColorField
}

// Validate checks cfg and opts before any work is done.
func Validate(cfg MapConfig, opts Options) error {
	if !cfg.Size.Valid() {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, cfg.Size.W, cfg.Size.H)
	}
	if math.IsNaN(cfg.PercentWater) || cfg.PercentWater < 0 || cfg.PercentWater > 1 {
		return fmt.Errorf("%w: percent water %v outside [0,1]", ErrInvalidConfig, cfg.PercentWater)
	}
	if int64(len(cfg.Faults)) > math.MaxInt32 {
		return fmt.Errorf("%w: %d faults overflow the height range", ErrInvalidConfig, len(cfg.Faults))
	}
	if opts.WaterBuckets <= 0 || opts.LandBuckets <= 0 {
		return fmt.Errorf("%w: bucket counts %d/%d must be positive", ErrInvalidConfig, opts.WaterBuckets, opts.LandBuckets)
	}
	if opts.WaterBuckets+opts.LandBuckets > MaxBuckets {
		return fmt.Errorf("%w: %d buckets exceed %d", ErrInvalidConfig, opts.WaterBuckets+opts.LandBuckets, MaxBuckets)
	}
	return nil
}

// Generate runs the full pipeline: heights, water threshold, quantization.
// It blocks until the result is complete and has no side effects.
func Generate(cfg MapConfig, opts Options) (*Result, error) {
	if err := Validate(cfg, opts); err != nil {
		return nil, err
	}
	heights := ComputeHeights(cfg.Size, cfg.Faults, opts.Workers)
	lo, hi := heights.Bounds()
	threshold := FindThreshold(heights, cfg.PercentWater)
	return &Result{
		Size:      cfg.Size,
		Faults:    cfg.Faults,
		Heights:   heights,
		Min:       lo,
		Max:       hi,
		Threshold: threshold,
		Colors:    Quantize(heights, threshold, opts.WaterBuckets, opts.LandBuckets),
	}, nil
}

// WaterCells counts the cells strictly below the result's threshold.
func (r *Result) WaterCells() int {
	n := 0
	for _, v := range r.Heights.Cells() {
		if v < r.Threshold {
			n++
		}
	}
	return n
}
