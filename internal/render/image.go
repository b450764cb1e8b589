package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"faultmap/internal/terrain"
)

// ColorImage assembles an RGBA image from a bucket field and palette.
func ColorImage(colors *terrain.ColorField, palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, colors.W, colors.H))
	FillPaletteRGBA(img.Pix, colors.Cells(), palette)
	return img
}

// ElevationImage renders the raw height field as a tinted relief image.
func ElevationImage(heights *terrain.HeightField) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, heights.W, heights.H))
	FillElevationRGBA(img.Pix, heights.Cells(), heights.W, heights.H)
	return img
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WritePNG(f, img)
}
