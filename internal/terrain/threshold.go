package terrain

import (
	"math"
	"sort"
)

// WaterTarget returns the number of cells that must lie strictly below the
// threshold for the given water fraction. The product is floored.
func WaterTarget(total int, percentWater float64) int {
	target := int(math.Floor(percentWater * float64(total)))
	if target < 0 {
		return 0
	}
	if target > total {
		return total
	}
	return target
}

// FindThreshold returns the smallest height t >= min(field) such that at
// least floor(percentWater * cells) cells have a height strictly below t.
//
// A zero fraction yields the field minimum and a fraction of one yields one
// past the field maximum.
func FindThreshold(field *HeightField, percentWater float64) int32 {
	lo, hi := field.Bounds()
	cells := field.Cells()
	target := WaterTarget(len(cells), percentWater)

	// below[i] counts cells with height < lo+i, for i in [0, hi-lo+1].
	span := int(hi) - int(lo) + 1
	below := make([]int, span+1)
	for _, v := range cells {
		below[int(v)-int(lo)+1]++
	}
	for i := 1; i <= span; i++ {
		below[i] += below[i-1]
	}

	i := sort.Search(span+1, func(i int) bool { return below[i] >= target })
	return lo + int32(i)
}
