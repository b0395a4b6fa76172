//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatal(err)
	}

	frames := core.NewFrameScheduler()
	opts := []life.Option{life.WithScheduler(frames)}
	if cfg.Verbose {
		opts = append(opts, life.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}
	session, err := life.Initialize(simCfg, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if err := session.RandomizeSeed(simCfg.Density); err != nil {
		log.Fatal(err)
	}
	session.Start()

	game := app.New(session, frames, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-life — " + session.Name())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
