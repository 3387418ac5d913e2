package core

// Grid owns the current and next generation buffers of a toroidal boolean
// grid. Both buffers are row-major and sized W*H for the lifetime of the grid.
type Grid struct {
	W, H int
	cur  []bool
	nxt  []bool
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cur: make([]bool, w*h), nxt: make([]bool, w*h)}
}

// Wrap maps any integer onto [0, n). Negative inputs wrap from the top, so
// Wrap(-1, n) == n-1.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	return Wrap(x, g.W), Wrap(y, g.H)
}

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Get reports whether the cell at (x, y) of the current generation is alive.
func (g *Grid) Get(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.cur[g.Index(x, y)]
}

// Set writes a cell of the current generation.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	g.cur[g.Index(x, y)] = alive
}

// SetNext writes a cell of the next generation.
func (g *Grid) SetNext(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	g.nxt[g.Index(x, y)] = alive
}

// Commit makes the next buffer current. The old current buffer becomes the
// scratch space for the following generation.
func (g *Grid) Commit() {
	g.cur, g.nxt = g.nxt, g.cur
}

// Cells exposes the current generation. Callers must not write to it.
func (g *Grid) Cells() []bool { return g.cur }

// Population counts the live cells of the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Clear marks every cell of the current generation dead.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = false
	}
}
