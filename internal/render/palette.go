package render

import (
	"image/color"
	"slices"
)

// PaletteSize is the number of entries in the reference palette. Buckets
// 0..15 are water shades, 16..31 land shades and 32..48 a reserved grey ramp.
const PaletteSize = 49

var (
	paletteRed = [PaletteSize]uint8{
		0, 0, 0, 0, 0, 0, 0, 0, 34, 68, 102, 119, 136, 153, 170, 187,
		0, 34, 34, 119, 187, 255, 238, 221, 204, 187, 170, 153, 136, 119, 85, 68,
		255, 250, 245, 240, 235, 230, 225, 220, 215, 210, 205, 200, 195, 190, 185, 180, 175,
	}
	paletteGreen = [PaletteSize]uint8{
		0, 0, 17, 51, 85, 119, 153, 204, 221, 238, 255, 255, 255, 255, 255, 255,
		68, 102, 136, 170, 221, 187, 170, 136, 136, 102, 85, 85, 68, 51, 51, 34,
		255, 250, 245, 240, 235, 230, 225, 220, 215, 210, 205, 200, 195, 190, 185, 180, 175,
	}
	paletteBlue = [PaletteSize]uint8{
		0, 68, 102, 136, 170, 187, 221, 255, 255, 255, 255, 255, 255, 255, 255, 255,
		0, 0, 0, 0, 0, 34, 34, 34, 34, 34, 34, 34, 34, 34, 17, 0,
		255, 250, 245, 240, 235, 230, 225, 220, 215, 210, 205, 200, 195, 190, 185, 180, 175,
	}
)

var referencePalette = buildReferencePalette()

func buildReferencePalette() []color.RGBA {
	palette := make([]color.RGBA, PaletteSize)
	for i := range palette {
		palette[i] = color.RGBA{R: paletteRed[i], G: paletteGreen[i], B: paletteBlue[i], A: 255}
	}
	return palette
}

// Palette returns a copy of the reference bucket palette.
func Palette() []color.RGBA {
	return slices.Clone(referencePalette)
}
