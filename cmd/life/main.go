package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"torus-life/internal/app"
	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Printf("error while initializing: %v", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = core.TimeSeed()
	}

	board := life.NewWithConfig(cfg.LifeConfig())
	cfg.Populate(board, seed)
	log.Printf("life %dx%d seed=%d density=%d/%d pattern=%s ui=%s",
		cfg.Width, cfg.Height, seed, cfg.DensityNum, cfg.DensityDen, cfg.Pattern, cfg.UI)

	var gens uint64
	switch cfg.UI {
	case app.UITerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		gens, err = app.RunTerminal(ctx, cfg, board)
		stop()
	default:
		gens, err = app.RunWindow(cfg, board, seed)
	}
	if err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
	log.Printf("stopped after %d generations", gens)
}
