// Package term presents a Life board in a terminal using tcell. Every grid cell
// is drawn as two character cells so squares keep a roughly square aspect.
package term

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"torus-life/pkg/core"
)

type statusProvider interface {
	Generation() uint64
	Population() int
}

// Screen is a tcell-backed presenter.
type Screen struct {
	screen   tcell.Screen
	live     tcell.Style
	status   tcell.Style
	shutdown atomic.Bool
	fini     sync.Once
}

// New opens the controlling terminal and wraps it.
func New(cell tcell.Color) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	return NewWithScreen(s, cell)
}

// NewWithScreen initializes s and draws live cells with a cell-coloured
// background.
func NewWithScreen(s tcell.Screen, cell tcell.Color) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen: s,
		live:   tcell.StyleDefault.Background(cell),
		status: tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}, nil
}

// Present draws v. Cells outside the terminal are clipped.
func (s *Screen) Present(v core.View) error {
	s.screen.Clear()
	size := v.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if !v.Get(x, y) {
				continue
			}
			s.screen.SetContent(x*2, y, ' ', nil, s.live)
			s.screen.SetContent(x*2+1, y, ' ', nil, s.live)
		}
	}
	if sp, ok := v.(statusProvider); ok {
		line := fmt.Sprintf("gen %d  live %d  [q] quit", sp.Generation(), sp.Population())
		for i, r := range line {
			s.screen.SetContent(i, size.H, r, nil, s.status)
		}
	}
	s.screen.Show()
	return nil
}

// ShutdownRequested reports whether the user asked to quit.
func (s *Screen) ShutdownRequested() bool { return s.shutdown.Load() }

// PollEvents handles terminal input until a quit key arrives, the screen is
// closed, or ctx is done. It blocks and should run on its own goroutine.
func (s *Screen) PollEvents(ctx context.Context) error {
	for ctx.Err() == nil {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				s.shutdown.Store(true)
				return nil
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
	return nil
}

// Close restores the terminal. It is safe to call more than once and unblocks
// PollEvents.
func (s *Screen) Close() {
	s.fini.Do(s.screen.Fini)
}
