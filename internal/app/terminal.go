package app

import (
	"context"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"torus-life/internal/term"
	"torus-life/pkg/core"
)

// CellColor is the fill used for live cells by every presenter.
var CellColor = color.RGBA{R: 18, G: 14, B: 252, A: 255}

// RunTerminal presents sim in the controlling terminal until the user quits or
// ctx is done. Input is polled on a separate goroutine; the simulation itself
// stays on the loop goroutine.
func RunTerminal(ctx context.Context, cfg *Config, sim core.Sim) (uint64, error) {
	screen, err := term.New(tcell.NewRGBColor(int32(CellColor.R), int32(CellColor.G), int32(CellColor.B)))
	if err != nil {
		return 0, &InitError{Op: "terminal", Err: err}
	}
	return runWithScreen(ctx, screen, cfg, sim)
}

func runWithScreen(ctx context.Context, screen *term.Screen, cfg *Config, sim core.Sim) (uint64, error) {
	var gens uint64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return screen.PollEvents(gctx)
	})
	g.Go(func() error {
		defer screen.Close()
		n, err := Run(gctx, sim, screen, cfg.Interval)
		gens = n
		return err
	})
	err := g.Wait()
	return gens, err
}
