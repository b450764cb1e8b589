package render

import (
	"image/color"
	"math"
)

// FillPaletteRGBA converts bucket indices into RGBA pixels using a palette.
// Indices past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillElevationRGBA tints a w*h height field from deep blue to pale snow,
// with alpha raised on steep cells so relief reads through when the result is
// drawn over the bucket colors.
func FillElevationRGBA(buf []byte, field []int32, w, h int) {
	total := w * h
	if len(field) != total || total == 0 {
		return
	}

	minVal, maxVal := field[0], field[0]
	for _, v := range field {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rangeVal := float64(maxVal - minVal)
	if rangeVal == 0 {
		rangeVal = 1
	}
	slopeScale := 0.0
	if maxVal > minVal {
		slopeScale = 1.0 / rangeVal
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			base := idx * 4
			col := elevationColor(float64(field[idx]-minVal) / rangeVal)

			alpha := float64(col.A)
			if slopeScale > 0 {
				v := field[idx]
				var maxDiff int32
				if x > 0 {
					maxDiff = max(maxDiff, absInt32(v-field[idx-1]))
				}
				if x+1 < w {
					maxDiff = max(maxDiff, absInt32(v-field[idx+1]))
				}
				if y > 0 {
					maxDiff = max(maxDiff, absInt32(v-field[idx-w]))
				}
				if y+1 < h {
					maxDiff = max(maxDiff, absInt32(v-field[idx+w]))
				}
				slope := clamp01(float64(maxDiff) * slopeScale)
				alpha *= 0.55 + 0.45*slope
			}

			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = uint8(math.Round(clamp(alpha, 0, 255)))
		}
	}
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
