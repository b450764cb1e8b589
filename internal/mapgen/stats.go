package mapgen

import "faultmap/internal/terrain"

// Stats summarizes the shape of a generated map.
type Stats struct {
	Min, Max   int32
	Threshold  int32
	WaterCells int
	// CoastCells counts water cells with at least one land 4-neighbour.
	CoastCells int
	// LandFraction is the share of cells at or above the threshold.
	LandFraction float64
}

// Summarize computes Stats for res.
func Summarize(res *terrain.Result) Stats {
	w, h := res.Size.W, res.Size.H
	cells := res.Heights.Cells()
	st := Stats{Min: res.Min, Max: res.Max, Threshold: res.Threshold}

	isWater := func(x, y int) bool { return cells[y*w+x] < res.Threshold }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !isWater(x, y) {
				continue
			}
			st.WaterCells++
			if (x > 0 && !isWater(x-1, y)) ||
				(x+1 < w && !isWater(x+1, y)) ||
				(y > 0 && !isWater(x, y-1)) ||
				(y+1 < h && !isWater(x, y+1)) {
				st.CoastCells++
			}
		}
	}
	if total := w * h; total > 0 {
		st.LandFraction = float64(total-st.WaterCells) / float64(total)
	}
	return st
}
