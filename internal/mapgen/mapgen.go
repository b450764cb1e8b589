package mapgen

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"faultmap/internal/config"
	"faultmap/internal/core"
	"faultmap/internal/terrain"
)

// Request describes a map to generate from a seed.
type Request struct {
	Size         core.Size
	PercentWater float64
	FaultCount   int
	Seed         int64
	Options      terrain.Options
}

// RequestFromSettings builds a request from loaded settings.
func RequestFromSettings(s *config.Settings) Request {
	return Request{
		Size:         s.Size(),
		PercentWater: s.PercentWater,
		FaultCount:   s.Faults,
		Seed:         s.EffectiveSeed(),
		Options:      s.Options(),
	}
}

// WithSeed returns a copy of r using seed.
func (r Request) WithSeed(seed int64) Request {
	r.Seed = seed
	return r
}

// Generator runs requests and reports progress through its logger.
type Generator struct {
	log zerolog.Logger
}

// New returns a Generator logging to log.
func New(log zerolog.Logger) *Generator {
	return &Generator{log: log}
}

// Run samples the request's faults and executes the terrain pipeline.
func (g *Generator) Run(req Request) (*terrain.Result, error) {
	log := g.log.With().Int64("seed", req.Seed).Int("w", req.Size.W).Int("h", req.Size.H).Logger()
	cfg := terrain.MapConfig{Size: req.Size, PercentWater: req.PercentWater}
	if err := terrain.Validate(cfg, req.Options); err != nil {
		log.Error().Err(err).Msg("rejected map config")
		return nil, err
	}

	start := time.Now()
	cfg.Faults = terrain.GenerateFaults(req.FaultCount, core.NewRNG(req.Seed))
	log.Debug().Int("faults", len(cfg.Faults)).Dur("took", time.Since(start)).Msg("faults complete")

	stage := time.Now()
	heights := terrain.ComputeHeights(cfg.Size, cfg.Faults, req.Options.Workers)
	lo, hi := heights.Bounds()
	log.Debug().Int32("min", lo).Int32("max", hi).Dur("took", time.Since(stage)).Msg("heights computed")

	stage = time.Now()
	threshold := terrain.FindThreshold(heights, cfg.PercentWater)
	colors := terrain.Quantize(heights, threshold, req.Options.WaterBuckets, req.Options.LandBuckets)
	log.Debug().Int32("threshold", threshold).Dur("took", time.Since(stage)).Msg("heights classified")

	res := &terrain.Result{
		Size:      cfg.Size,
		Faults:    cfg.Faults,
		Heights:   heights,
		Min:       lo,
		Max:       hi,
		Threshold: threshold,
		Colors:    colors,
	}
	log.Info().
		Int("faults", len(cfg.Faults)).
		Int32("threshold", threshold).
		Int("water_cells", res.WaterCells()).
		Dur("took", time.Since(start)).
		Msg("map generated")
	return res, nil
}

// Batch generates one map per seed with at most limit runs in flight.
// Results are returned in seed order. The first failure cancels runs that
// have not started yet.
func (g *Generator) Batch(ctx context.Context, req Request, seeds []int64, limit int) ([]*terrain.Result, error) {
	results := make([]*terrain.Result, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, seed := range seeds {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.Run(req.WithSeed(seed))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
