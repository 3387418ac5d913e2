package life

// Density is the fraction Num/Den of cells seeded alive.
type Density struct {
	Num int
	Den int
}

// Valid reports whether the density describes a probability in [0, 1].
func (d Density) Valid() bool {
	return d.Den > 0 && d.Num >= 0 && d.Num <= d.Den
}

// Config controls the Life grid dimensions and seeding density.
type Config struct {
	Width   int
	Height  int
	Density Density
}

// DefaultConfig returns the standard 100x50 board seeded at 6/25.
func DefaultConfig() Config {
	return Config{
		Width:   100,
		Height:  50,
		Density: Density{Num: 6, Den: 25},
	}
}
