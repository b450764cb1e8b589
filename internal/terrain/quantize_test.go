package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultmap/internal/core"
)

func TestQuantizePiecewiseLinear(t *testing.T) {
	field := gridOf(7, 1, -3, -2, -1, 0, 1, 2, 3)

	got := Quantize(field, 0, 4, 3)

	assert.Equal(t, []uint8{0, 1, 2, 4, 5, 6, 6}, got.Cells())
}

func TestQuantizeDegenerateSides(t *testing.T) {
	field := gridOf(4, 1, 2, 2, 5, 5)

	// threshold at the minimum: no water, land spread over [2,5].
	assert.Equal(t, []uint8{16, 16, 30, 30}, Quantize(field, 2, 16, 15).Cells())

	// threshold above the maximum: land side empty, water spread over [2,6).
	assert.Equal(t, []uint8{0, 0, 12, 12}, Quantize(field, 6, 16, 15).Cells())

	// threshold equal to the maximum: land collapses to its first bucket.
	assert.Equal(t, []uint8{0, 0, 16, 16}, Quantize(field, 5, 16, 15).Cells())
}

func TestQuantizeFlatField(t *testing.T) {
	field := gridOf(4, 4)

	assert.Equal(t, make([]uint8, 16), Quantize(field, 1, 16, 15).Cells())

	land := Quantize(field, 0, 16, 15).Cells()
	for _, b := range land {
		assert.Equal(t, uint8(16), b)
	}
}

func TestQuantizeBucketsStayOnTheirSide(t *testing.T) {
	size := core.Size{W: 64, H: 40}
	field := ComputeHeights(size, GenerateFaults(400, core.NewRNG(77)), 0)
	water, land := 16, 15

	for _, percent := range []float64{0, 0.1, 0.35, 0.6, 0.9, 1} {
		threshold := FindThreshold(field, percent)
		colors := Quantize(field, threshold, water, land)
		require.Equal(t, field.Size(), colors.Size())

		heights := field.Cells()
		for i, b := range colors.Cells() {
			require.Less(t, int(b), water+land, "cell %d", i)
			if heights[i] < threshold {
				require.Less(t, int(b), water, "water cell %d", i)
			} else {
				require.GreaterOrEqual(t, int(b), water, "land cell %d", i)
			}
		}
	}
}

func TestQuantizeUsesWholeRange(t *testing.T) {
	field := gridOf(5, 1, -10, -1, 0, 9, 10)

	colors := Quantize(field, 0, 8, 8).Cells()

	assert.Equal(t, uint8(0), colors[0])
	assert.Equal(t, uint8(7), colors[1])
	assert.Equal(t, uint8(8), colors[2])
	assert.Equal(t, uint8(15), colors[3])
	assert.Equal(t, uint8(15), colors[4])
}
