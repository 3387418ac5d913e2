package app

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"torus-life/pkg/core"
)

// Presenter draws generations and relays the host's request to stop.
type Presenter interface {
	Present(v core.View) error
	ShutdownRequested() bool
}

// Run drives sim until p requests shutdown or ctx is done. Each pass presents
// the current generation, computes the next one, then waits interval. Shutdown
// is only observed between passes, so a started step always completes. Run
// returns the number of generations computed.
func Run(ctx context.Context, sim core.Sim, p Presenter, interval time.Duration) (uint64, error) {
	var gens uint64
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		if p.ShutdownRequested() || ctx.Err() != nil {
			return gens, nil
		}
		if err := p.Present(sim); err != nil {
			return gens, errors.Wrapf(err, "present generation %d", sim.Generation())
		}
		sim.Step()
		gens++

		timer.Reset(interval)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
}
