// Command sweep generates small maps over a grid of fault counts and water
// fractions and ranks them by coastline length.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"faultmap/internal/core"
	"faultmap/internal/mapgen"
	"faultmap/internal/terrain"
)

type paramSet struct {
	faults int
	water  float64
	seed   int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("faults=%d water=%.2f seed=%d", p.faults, p.water, p.seed)
}

type scenarioResult struct {
	params paramSet
	stats  mapgen.Stats
	err    error
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	width := fs.Int("w", 240, "map width")
	height := fs.Int("h", 120, "map height")
	faultList := fs.String("faults", "50,200,800", "comma separated fault counts")
	waterList := fs.String("water", "0.4,0.6,0.8", "comma separated water fractions")
	seeds := fs.Int("seeds", 3, "seeds per parameter pair")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := fs.Int("top", 5, "results to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	faults, err := parseInts(*faultList)
	if err != nil {
		return fmt.Errorf("-faults: %w", err)
	}
	waters, err := parseFloats(*waterList)
	if err != nil {
		return fmt.Errorf("-water: %w", err)
	}
	if *workers <= 0 {
		*workers = 1
	}

	var sets []paramSet
	for _, f := range faults {
		for _, w := range waters {
			for s := 0; s < *seeds; s++ {
				sets = append(sets, paramSet{faults: f, water: w, seed: int64(s + 1)})
			}
		}
	}

	fmt.Fprintf(stdout, "Sweeping %d parameter sets (%d workers, %dx%d)\n", len(sets), *workers, *width, *height)

	start := time.Now()
	all, err := sweep(core.Size{W: *width, H: *height}, sets, *workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	sort.SliceStable(all, func(i, j int) bool { return all[i].stats.CoastCells > all[j].stats.CoastCells })

	fmt.Fprintf(stdout, "\nTop %d results (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Fprintf(stdout, "%2d) coast=%d land=%.3f heights[%d,%d] threshold=%d %s\n",
			i+1, res.stats.CoastCells, res.stats.LandFraction, res.stats.Min, res.stats.Max, res.stats.Threshold, res.params)
	}
	return nil
}

// sweep runs every set on a pool of workers. Results come back in set order.
func sweep(size core.Size, sets []paramSet, workers int) ([]scenarioResult, error) {
	gen := mapgen.New(zerolog.Nop())
	jobs := make(chan int)
	out := make([]scenarioResult, len(sets))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out[idx] = runScenario(gen, size, sets[idx])
			}
		}()
	}
	for idx := range sets {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for _, res := range out {
		if res.err != nil {
			return nil, fmt.Errorf("%s: %w", res.params, res.err)
		}
	}
	return out, nil
}

func runScenario(gen *mapgen.Generator, size core.Size, params paramSet) scenarioResult {
	opts := terrain.DefaultOptions()
	// The pool already spreads scenarios across CPUs.
	opts.Workers = 1
	res, err := gen.Run(mapgen.Request{
		Size:         size,
		PercentWater: params.water,
		FaultCount:   params.faults,
		Seed:         params.seed,
		Options:      opts,
	})
	if err != nil {
		return scenarioResult{params: params, err: err}
	}
	return scenarioResult{params: params, stats: mapgen.Summarize(res)}
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
