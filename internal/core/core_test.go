package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridIndexing(t *testing.T) {
	g := NewGrid[int32](3, 2)
	g.Set(2, 1, 7)
	g.Set(0, 0, -4)

	assert.Equal(t, Size{W: 3, H: 2}, g.Size())
	assert.Equal(t, 5, g.Index(2, 1))
	assert.Equal(t, int32(7), g.Cells()[5])
	assert.Equal(t, int32(-4), g.At(0, 0))

	lo, hi := g.Bounds()
	assert.Equal(t, int32(-4), lo)
	assert.Equal(t, int32(7), hi)
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid[uint8](0, -2)
	assert.Equal(t, Size{W: 1, H: 1}, g.Size())
	assert.Len(t, g.Cells(), 1)
}

func TestSizeHelpers(t *testing.T) {
	assert.Equal(t, 12, Size{W: 4, H: 3}.Area())
	assert.True(t, Size{W: 1, H: 1}.Valid())
	assert.False(t, Size{W: 0, H: 5}.Valid())
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Bool(), b.Bool())
		assert.Equal(t, a.IntN(10), b.IntN(10))
	}
}

func TestSeedFromNameStable(t *testing.T) {
	assert.Equal(t, SeedFromName("pangaea"), SeedFromName("pangaea"))
	assert.NotEqual(t, SeedFromName("pangaea"), SeedFromName("pangaeb"))
	assert.NotEqual(t, SeedFromName(""), SeedFromName(" "))
}

func TestParameterSnapshotLines(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name: "Map",
		Params: []Parameter{
			IntParam("width", "Width", 300),
			FloatParam("percentWater", "Water", 0.6),
			StringParam("seedName", "Seed name", "atlas"),
			Int64Param("seed", "Seed", -5),
		},
	}}}

	assert.Equal(t, []string{
		"[Map]",
		"  Width: 300",
		"  Water: 0.6",
		"  Seed name: atlas",
		"  Seed: -5",
	}, snap.Lines())
}
