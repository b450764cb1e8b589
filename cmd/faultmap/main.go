package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"faultmap/internal/config"
	"faultmap/internal/logging"
	"faultmap/internal/mapgen"
	"faultmap/internal/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logging.Console("error").Error().Err(err).Msg("faultmap failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	settings, err := config.Load(configPath(args))
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("faultmap", flag.ContinueOnError)
	fs.String("config", "", "settings file (json, yaml or toml)")
	settings.Bind(fs)
	count := fs.Int("count", 1, "number of maps to generate from consecutive seeds")
	parallel := fs.Int("parallel", 2, "maps generated concurrently when -count > 1")
	relief := fs.Bool("relief", false, "also write a relief image of the height field")
	describe := fs.Bool("describe", false, "print the effective parameters before generating")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 1 {
		return fmt.Errorf("-count must be at least 1, got %d", *count)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	log := logging.Console(settings.LogLevel)
	if *describe {
		for _, line := range settings.Snapshot().Lines() {
			fmt.Fprintln(stdout, line)
		}
	}

	req := mapgen.RequestFromSettings(settings)
	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = req.Seed + int64(i)
	}

	results, err := mapgen.New(log).Batch(ctx, req, seeds, *parallel)
	if err != nil {
		return err
	}

	palette := render.Palette()
	for i, res := range results {
		path := outputPath(settings.Output, i, *count)
		if err := render.SavePNG(path, render.ColorImage(res.Colors, palette)); err != nil {
			return err
		}
		log.Info().Str("path", path).Int64("seed", seeds[i]).Msg("wrote map")

		if *relief {
			rpath := withSuffix(path, "relief")
			if err := render.SavePNG(rpath, render.ElevationImage(res.Heights)); err != nil {
				return err
			}
			log.Info().Str("path", rpath).Msg("wrote relief")
		}
	}
	return nil
}

// configPath finds the value of -config/--config without parsing the other
// flags, so the file can seed their defaults.
func configPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if len(name) == len(arg) {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// outputPath numbers the output file when more than one map is written.
func outputPath(base string, index, count int) string {
	if count <= 1 {
		return base
	}
	return withSuffix(base, strconv.Itoa(index))
}

func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + suffix + ext
}
