package life

// Pattern is a rectangular stamp. Rows are read top to bottom; '#' marks a
// live cell and any other rune a dead one.
type Pattern []string

var (
	// Block is the 2x2 still life.
	Block = Pattern{
		"##",
		"##",
	}
	// Blinker is the horizontal period-2 oscillator.
	Blinker = Pattern{
		"###",
	}
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{
		".#.",
		"..#",
		"###",
	}
)

// Patterns maps names accepted on the command line to stamps.
var Patterns = map[string]Pattern{
	"block":   Block,
	"blinker": Blinker,
	"glider":  Glider,
}

// Place stamps p with its top-left corner at (x, y). The stamp wraps around
// the board edges and overwrites every cell it covers.
func (l *Life) Place(x, y int, p Pattern) {
	for dy, row := range p {
		for dx, r := range []rune(row) {
			l.grid.Set(x+dx, y+dy, r == '#')
		}
	}
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.grid.Clear()
	l.gen = 0
}
