//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"faultmap/internal/app"
	"faultmap/internal/config"
	"faultmap/internal/core"
	"faultmap/internal/logging"
	"faultmap/internal/mapgen"
)

func main() {
	configFile := os.Getenv("FAULTMAP_CONFIG")
	settings, err := config.Load(configFile)
	if err != nil {
		logging.Console("error").Fatal().Err(err).Msg("load settings")
	}
	// The viewer defaults to a window-sized map rather than the poster size.
	if configFile == "" {
		settings.Width, settings.Height, settings.Faults = 750, 375, 1000
	}
	settings.Bind(flag.CommandLine)
	flag.Parse()

	log := logging.Console(settings.LogLevel)
	if err := settings.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	snapshot := func(seed int64) core.ParameterSnapshot {
		s := *settings
		s.Seed, s.SeedName = seed, ""
		return s.Snapshot()
	}
	game := app.New(mapgen.New(log), mapgen.RequestFromSettings(settings), settings.Scale, snapshot)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("faultmap")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("viewer exited")
	}
}
