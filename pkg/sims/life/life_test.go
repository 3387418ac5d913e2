package life

import (
	"slices"
	"testing"

	"torus-life/pkg/core"
)

func assertAlive(t *testing.T, l *Life, expects map[[2]int]bool, stage string) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := l.Get(x, y)
			shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	life.Place(1, 2, Blinker)

	life.Step()
	assertAlive(t, life, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after first step")

	life.Step()
	assertAlive(t, life, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after second step")

	if got := life.Generation(); got != 2 {
		t.Fatalf("generation = %d, want 2", got)
	}
}

func TestBlockStillLife(t *testing.T) {
	life := New(12, 12)
	life.Place(5, 5, Block)
	before := slices.Clone(life.Grid().Cells())

	life.Step()

	if !slices.Equal(before, life.Grid().Cells()) {
		t.Fatal("2x2 block changed after one generation")
	}
	for _, c := range [][2]int{{4, 4}, {7, 4}, {4, 7}, {7, 7}} {
		if life.Get(c[0], c[1]) {
			t.Fatalf("diagonal corner (%d,%d) came alive", c[0], c[1])
		}
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	life := New(8, 6)
	life.Step()
	if got := life.Population(); got != 0 {
		t.Fatalf("population = %d after stepping an empty grid", got)
	}
}

func TestCountLiveNeighborsExcludesSelf(t *testing.T) {
	life := New(5, 5)
	life.Grid().Set(2, 2, true)
	if got := life.CountLiveNeighbors(2, 2); got != 0 {
		t.Fatalf("lone cell counted %d neighbours, want 0", got)
	}
}

func TestCountLiveNeighborsRange(t *testing.T) {
	life := New(3, 3)
	for i := range life.Grid().Cells() {
		life.Grid().Cells()[i] = true
	}
	// On a 3x3 torus every offset of every cell lands on a distinct live cell.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := life.CountLiveNeighbors(x, y); got != 8 {
				t.Fatalf("full 3x3 grid: (%d,%d) counted %d, want 8", x, y, got)
			}
		}
	}

	life = New(10, 7)
	life.Reset(3)
	for y := -2; y < 9; y++ {
		for x := -2; x < 12; x++ {
			if got := life.CountLiveNeighbors(x, y); got < 0 || got > 8 {
				t.Fatalf("(%d,%d) counted %d neighbours", x, y, got)
			}
		}
	}
}

func TestToroidalWrapNeighbour(t *testing.T) {
	const w, h = 9, 6
	life := New(w, h)
	life.Grid().Set(0, 0, true)
	life.Grid().Set(w-1, h-1, true)
	if got := life.CountLiveNeighbors(0, 0); got != 1 {
		t.Fatalf("(0,0) counted %d neighbours, want 1 from (%d,%d)", got, w-1, h-1)
	}
	if got := life.CountLiveNeighbors(w-1, h-1); got != 1 {
		t.Fatalf("(%d,%d) counted %d neighbours, want 1", w-1, h-1, got)
	}
}

func TestBlinkerAcrossEdge(t *testing.T) {
	life := New(6, 6)
	life.Place(5, 0, Blinker) // occupies (5,0), (0,0), (1,0)

	life.Step()
	assertAlive(t, life, map[[2]int]bool{
		{0, 5}: true,
		{0, 0}: true,
		{0, 1}: true,
	}, "wrapped blinker")
}

func TestGliderReturnsShifted(t *testing.T) {
	life := New(10, 10)
	life.Place(1, 1, Glider)
	before := slices.Clone(life.Grid().Cells())

	for i := 0; i < 4; i++ {
		life.Step()
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := before[core.Wrap(y-1, 10)*10+core.Wrap(x-1, 10)]
			if got := life.Get(x, y); got != want {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Rule(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("Rule(alive, %d) = %v, want %v", n, got, want)
		}
		if got, want := Rule(false, n), n == 3; got != want {
			t.Fatalf("Rule(dead, %d) = %v, want %v", n, got, want)
		}
	}
}

func TestSeedBoundaryDensities(t *testing.T) {
	life := New(20, 10)

	life.Seed(core.NewRNG(1), Density{Num: 25, Den: 25})
	if got, want := life.Population(), 200; got != want {
		t.Fatalf("full density seeded %d cells, want %d", got, want)
	}

	// Zero density must clear cells left alive by the previous seeding.
	life.Seed(core.NewRNG(1), Density{Num: 0, Den: 25})
	if got := life.Population(); got != 0 {
		t.Fatalf("zero density left %d cells alive", got)
	}
}

func TestResetDeterministic(t *testing.T) {
	life := New(40, 30)
	life.Reset(99)
	first := slices.Clone(life.Grid().Cells())
	life.Step()

	life.Reset(99)
	if !slices.Equal(first, life.Grid().Cells()) {
		t.Fatal("Reset with the same seed produced a different board")
	}
	if life.Generation() != 0 {
		t.Fatalf("generation = %d after reset", life.Generation())
	}

	life.Reset(100)
	if slices.Equal(first, life.Grid().Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestResetDensityRoughlyMatches(t *testing.T) {
	life := New(100, 50)
	life.Reset(42)
	// 6/25 of 5000 is 1200; allow a wide margin.
	if got := life.Population(); got < 1000 || got > 1400 {
		t.Fatalf("population = %d, expected about 1200", got)
	}
}

func TestStepReadsOnlyPreviousGeneration(t *testing.T) {
	life := New(16, 16)
	life.Reset(5)
	grid := life.Grid()

	want := make([]bool, len(grid.Cells()))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want[grid.Index(x, y)] = Rule(life.Get(x, y), life.CountLiveNeighbors(x, y))
		}
	}

	life.Step()
	if !slices.Equal(want, grid.Cells()) {
		t.Fatal("step result differs from simultaneous application of the rule")
	}
}
