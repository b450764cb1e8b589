package terrain

import "faultmap/internal/core"

// ColorField holds one palette bucket index per cell.
type ColorField = core.Grid[uint8]

// Quantize maps every height onto a palette bucket. Heights below threshold
// spread linearly over [0, waterBuckets) between the field minimum and the
// threshold; the rest spread over [waterBuckets, waterBuckets+landBuckets)
// between the threshold and the field maximum. A side whose range collapses
// to a single value maps entirely to the first bucket of that side.
func Quantize(field *HeightField, threshold int32, waterBuckets, landBuckets int) *ColorField {
	out := core.NewGrid[uint8](field.W, field.H)
	lo, hi := field.Bounds()
	waterSpan := int64(threshold) - int64(lo)
	landSpan := int64(hi) - int64(threshold)
	water := int64(waterBuckets)
	land := int64(landBuckets)

	dst := out.Cells()
	for i, v := range field.Cells() {
		h := int64(v)
		var bucket int64
		if h < int64(threshold) {
			if waterSpan > 0 {
				bucket = floorDiv((h-int64(lo))*water, waterSpan)
			}
			bucket = clampBucket(bucket, 0, water-1)
		} else {
			if landSpan > 0 {
				bucket = floorDiv((h-int64(threshold))*land, landSpan)
			}
			bucket = clampBucket(bucket+water, water, water+land-1)
		}
		dst[i] = uint8(bucket)
	}
	return out
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clampBucket(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
