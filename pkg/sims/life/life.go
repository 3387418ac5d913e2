package life

import (
	"torus-life/pkg/core"
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	grid    *core.Grid
	density Density
	gen     uint64
}

// New returns a Life simulation with the provided dimensions and the default
// seeding density.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided options.
// All cells start dead until Reset or Seed is called.
func NewWithConfig(cfg Config) *Life {
	return &Life{grid: core.NewGrid(cfg.Width, cfg.Height), density: cfg.Density}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Get reports whether the cell at (x, y) is alive. Coordinates wrap.
func (l *Life) Get(x, y int) bool { return l.grid.Get(x, y) }

// Grid exposes the underlying store.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() uint64 { return l.gen }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.grid.Population() }

// Reset reseeds the board from seed using the configured density.
func (l *Life) Reset(seed int64) {
	l.Seed(core.NewRNG(seed), l.density)
}

// Seed draws a value in [0, d.Den) for every cell and marks it alive iff the
// draw is below d.Num. Every cell is written, so no previous state survives.
func (l *Life) Seed(rng *core.RNG, d Density) {
	g := l.grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, y, rng.IntN(d.Den) < d.Num)
		}
	}
	l.gen = 0
}

// CountLiveNeighbors returns how many of the 8 cells around (x, y) are alive.
func (l *Life) CountLiveNeighbors(x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.grid.Get(x+dx, y+dy) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Rule is the B3/S23 transition: a live cell survives with 2 or 3
// neighbours, a dead cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	g := l.grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.SetNext(x, y, Rule(g.Get(x, y), l.CountLiveNeighbors(x, y)))
		}
	}
	g.Commit()
	l.gen++
}
