//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"faultmap/internal/core"
	"faultmap/internal/mapgen"
	"faultmap/internal/render"
	"faultmap/internal/terrain"
	"faultmap/internal/ui"
)

const hudWidth = 220

// Game adapts the map generator to the ebiten.Game interface. Generation runs
// on a background job so the window stays responsive.
type Game struct {
	gen      *mapgen.Generator
	req      mapgen.Request
	snapshot func(seed int64) core.ParameterSnapshot

	job    *mapgen.Job
	result *terrain.Result
	err    error

	colors     *render.GridPainter
	relief     *render.GridPainter
	palette    []color.RGBA
	hud        *ui.HUD
	showRelief bool

	scale int
	frame int
}

// New constructs a Game and starts generating the first map.
func New(gen *mapgen.Generator, req mapgen.Request, scale int, snapshot func(seed int64) core.ParameterSnapshot) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		gen:      gen,
		req:      req,
		snapshot: snapshot,
		colors:   render.NewGridPainter(req.Size.W, req.Size.H),
		relief:   render.NewGridPainter(req.Size.W, req.Size.H),
		palette:  render.Palette(),
		hud:      ui.NewHUD(hudWidth),
		scale:    scale,
	}
	g.hud.SetLegend(legendColors(g.palette, req.Options))
	g.Regenerate(req.Seed)
	return g
}

// Regenerate abandons any pending run and starts a new one with seed.
func (g *Game) Regenerate(seed int64) {
	g.req = g.req.WithSeed(seed)
	g.job = g.gen.Start(g.req)
}

// Update handles input and collects finished jobs.
func (g *Game) Update() error {
	g.frame++
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.Regenerate(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Regenerate(g.req.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.showRelief = !g.showRelief
	}

	if g.job != nil && g.job.Ready() {
		g.result, g.err = g.job.Result()
		g.job = nil
		if g.result != nil {
			g.colors.SetBuckets(g.result.Colors.Cells(), g.palette)
			g.relief.SetElevation(g.result.Heights.Cells())
		}
	}

	var snap core.ParameterSnapshot
	if g.snapshot != nil {
		snap = g.snapshot(g.req.Seed)
	}
	g.hud.Update(ui.BuildStatus(snap, g.job != nil, g.frame, g.result, g.err))
	return nil
}

// Draw renders the current map and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.result != nil {
		g.colors.Draw(screen, g.scale)
		if g.showRelief {
			g.relief.Draw(screen, g.scale)
		}
	}
	g.hud.Draw(screen, g.req.Size.W*g.scale, g.req.Size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.req.Size.W*g.scale + g.hud.Width(), g.req.Size.H * g.scale
}

// legendColors returns the palette entries the quantizer can produce.
func legendColors(palette []color.RGBA, opts terrain.Options) []color.RGBA {
	n := opts.WaterBuckets + opts.LandBuckets
	if n > len(palette) {
		n = len(palette)
	}
	return palette[:n]
}
