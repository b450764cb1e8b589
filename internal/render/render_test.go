package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultmap/internal/core"
	"faultmap/internal/terrain"
)

func TestPaletteMatchesReferenceTable(t *testing.T) {
	p := Palette()
	require.Len(t, p, PaletteSize)

	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, p[0])
	assert.Equal(t, color.RGBA{R: 187, G: 255, B: 255, A: 255}, p[15])
	assert.Equal(t, color.RGBA{R: 0, G: 68, B: 0, A: 255}, p[16])
	assert.Equal(t, color.RGBA{R: 68, G: 34, B: 0, A: 255}, p[31])
	assert.Equal(t, color.RGBA{R: 175, G: 175, B: 175, A: 255}, p[48])

	p[0] = color.RGBA{R: 1}
	assert.Equal(t, uint8(0), Palette()[0].R, "Palette must return a copy")
}

func TestPaletteCoversDefaultBuckets(t *testing.T) {
	assert.LessOrEqual(t, terrain.DefaultWaterBuckets+terrain.DefaultLandBuckets, PaletteSize)
}

func TestFillPaletteRGBAClampsIndices(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	buf := make([]byte, 12)

	FillPaletteRGBA(buf, []uint8{1, 0, 200}, palette)

	assert.Equal(t, []byte{5, 6, 7, 8, 1, 2, 3, 4, 5, 6, 7, 8}, buf)
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillPaletteRGBA(buf, []uint8{0, 3}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}

func TestFillElevationRGBAGradient(t *testing.T) {
	field := []int32{-2, 0, 2}
	buf := make([]byte, 12)

	FillElevationRGBA(buf, field, 3, 1)

	assert.Equal(t, []byte{40, 60, 120}, buf[0:3], "minimum maps to the deepest stop")
	assert.Equal(t, []byte{90, 150, 100}, buf[4:7], "midpoint maps to the middle stop")
	assert.Equal(t, []byte{240, 235, 215}, buf[8:11], "maximum maps to the top stop")
	for i := 3; i < len(buf); i += 4 {
		assert.NotZero(t, buf[i])
	}
}

func TestFillElevationRGBAIgnoresMismatchedSize(t *testing.T) {
	buf := []byte{7, 7, 7, 7}
	FillElevationRGBA(buf, []int32{1, 2}, 1, 1)
	assert.Equal(t, []byte{7, 7, 7, 7}, buf)
}

func TestColorImageAndPNG(t *testing.T) {
	colors := core.NewGrid[uint8](3, 2)
	copy(colors.Cells(), []uint8{0, 15, 16, 30, 31, 48})

	img := ColorImage(colors, Palette())
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, Palette()[15], img.RGBAAt(1, 0))
	assert.Equal(t, Palette()[30], img.RGBAAt(0, 1))

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestSavePNGCreatesDirectories(t *testing.T) {
	heights := core.NewGrid[int32](4, 4)
	heights.Set(1, 1, 3)
	path := filepath.Join(t.TempDir(), "nested", "relief.png")

	require.NoError(t, SavePNG(path, ElevationImage(heights)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
}
