package core

// Cell enumerates the value types a Grid may hold.
type Cell interface {
	~uint8 | ~int32 | ~float32
}

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T Cell] struct {
	W, H int
	data []T
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid[T Cell](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// Bounds returns the smallest and largest values in the grid.
func (g *Grid[T]) Bounds() (lo, hi T) {
	if len(g.data) == 0 {
		return lo, hi
	}
	lo, hi = g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
