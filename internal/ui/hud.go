//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	lineHeight   = 16
	legendHeight = 10
)

// HUD renders the status panel to the right of the map view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     Status
	legend     []color.RGBA
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update replaces the text shown by the panel.
func (h *HUD) Update(status Status) {
	if h == nil {
		return
	}
	h.status = status
}

// SetLegend sets the bucket colors shown as a strip along the bottom of the
// panel, water first.
func (h *HUD) SetLegend(colors []color.RGBA) {
	if h == nil {
		return
	}
	h.legend = append(h.legend[:0], colors...)
}

// Draw renders the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + 10
	text.Draw(h.panel, h.status.Title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight + 4
	bottom := height - panelPadding
	if len(h.legend) > 0 {
		bottom -= legendHeight + lineHeight
	}
	for _, line := range h.status.Lines {
		if y > bottom {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}
	h.drawLegend(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLegend(height int) {
	if len(h.legend) == 0 {
		return
	}
	span := float32(h.width - 2*panelPadding)
	step := span / float32(len(h.legend))
	top := float32(height - panelPadding - legendHeight)
	for i, c := range h.legend {
		x := float32(panelPadding) + step*float32(i)
		vector.DrawFilledRect(h.panel, x, top, step+0.5, legendHeight, c, false)
	}
}
