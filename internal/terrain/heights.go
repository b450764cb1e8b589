package terrain

import (
	"math"
	"runtime"
	"sync"

	"faultmap/internal/core"
)

// HeightField holds the summed fault contributions per cell.
type HeightField = core.Grid[int32]

type columnSpan struct {
	from, to int
}

// ComputeHeights accumulates every fault into a fresh w*h height field.
//
// Each fault contributes +1 to cell (x, y) when its flag equals y <= theta,
// where theta is the fault's crest row for column x, and -1 otherwise. Crest
// rows are evaluated once per (fault, column) and the column is filled with a
// difference array, so a column costs O(faults + rows). Columns are split
// across a fixed pool of workers; the result does not depend on the worker
// count. A non-positive workers value uses runtime.NumCPU().
func ComputeHeights(size core.Size, faults []Fault, workers int) *HeightField {
	field := core.NewGrid[int32](size.W, size.H)
	if len(faults) == 0 {
		return field
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	w := field.W
	if workers > w {
		workers = w
	}

	var base int32
	for _, f := range faults {
		base -= f.sign()
	}

	chunk := (w + workers*4 - 1) / (workers * 4)
	if chunk < 1 {
		chunk = 1
	}

	jobs := make(chan columnSpan)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			diff := make([]int32, field.H+1)
			for span := range jobs {
				for x := span.from; x < span.to; x++ {
					fillColumn(field, faults, x, base, diff)
				}
			}
		}()
	}
	for from := 0; from < w; from += chunk {
		to := from + chunk
		if to > w {
			to = w
		}
		jobs <- columnSpan{from: from, to: to}
	}
	close(jobs)
	wg.Wait()
	return field
}

// fillColumn writes column x of field. diff is scratch space of length H+1.
func fillColumn(field *HeightField, faults []Fault, x int, base int32, diff []int32) {
	w, h := field.W, field.H
	for i := range diff {
		diff[i] = 0
	}
	for _, f := range faults {
		theta := f.crest(x, w, h)
		if !(theta >= 0) {
			continue
		}
		last := h - 1
		if theta < float64(last) {
			last = int(math.Floor(theta))
		}
		s := 2 * f.sign()
		diff[0] += s
		diff[last+1] -= s
	}
	cells := field.Cells()
	acc := base
	for y := 0; y < h; y++ {
		acc += diff[y]
		cells[y*w+x] = acc
	}
}
