//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/sims/life"
)

// DefaultUI is the presenter used when -ui is not given.
const DefaultUI = UIWindow

// Game adapts a Life board to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	sim     *life.Life
	painter *render.GridPainter
	overlay *ui.Overlay
	stepper *core.FixedStep
	stats   *core.Stats

	paused   bool
	tickOnce bool
	dirty    bool
	drawn    bool
	seed     int64
}

// New constructs a Game for the provided board. The first generation is shown
// for a full interval before the board advances.
func New(cfg *Config, sim *life.Life, seed int64) *Game {
	g := &Game{
		cfg:     cfg,
		sim:     sim,
		painter: render.NewGridPainter(sim.Size(), cfg.Layout(), CellColor, color.Black),
		overlay: ui.NewOverlay(),
		stepper: core.NewFixedStep(cfg.Interval),
		stats:   core.NewStats(time.Now()),
		dirty:   true,
		seed:    seed,
	}
	g.stepper.Reset()
	g.stats.Restart(sim.Population(), time.Now())
	return g
}

// Reset repopulates the board from seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.cfg.Populate(g.sim, seed)
	g.stepper.Reset()
	g.stats.Restart(g.sim.Population(), time.Now())
	g.tickOnce = false
	g.dirty = true
}

// Generations returns the number of generations since the last reset.
func (g *Game) Generations() uint64 { return g.sim.Generation() }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	// Never advance past a generation that has not been drawn yet.
	if !g.drawn {
		return nil
	}
	due := g.stepper.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.stats.Update(g.sim.Generation(), g.sim.Population(), time.Now())
		g.tickOnce = false
		g.dirty = true
		g.drawn = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.painter.Refresh(g.sim)
		g.dirty = false
	}
	g.painter.Draw(screen)
	g.overlay.Draw(screen, g.stats, g.paused)
	g.drawn = true
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Bounds()
}

// RunWindow opens a window and runs the board until it is closed. Failures
// from the windowing system are reported as an *InitError.
func RunWindow(cfg *Config, sim *life.Life, seed int64) (uint64, error) {
	game := New(cfg, sim, seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("torus-life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return game.Generations(), &InitError{Op: "window", Err: err}
	}
	return game.Generations(), nil
}
