//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"torus-life/pkg/sims/life"
)

// DefaultUI is the presenter used when -ui is not given.
const DefaultUI = UITerminal

// ErrNoWindow is the cause reported when the window presenter was not
// compiled in.
var ErrNoWindow = errors.New("the window presenter requires building with the 'ebiten' tag; use -ui term or -tags ebiten")

// RunWindow always fails in headless builds.
func RunWindow(*Config, *life.Life, int64) (uint64, error) {
	return 0, &InitError{Op: "window", Err: ErrNoWindow}
}
