package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// View is the read-only surface a presenter needs to draw a generation.
type View interface {
	Size() Size
	Get(x, y int) bool
}

// Sim defines the contract the control loop drives.
type Sim interface {
	View
	Name() string
	Reset(seed int64)
	Step()
	Generation() uint64
	Population() int
}
