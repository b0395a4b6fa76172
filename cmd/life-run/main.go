package main

import (
	"flag"
	"log"
	"os"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/sims/life"
)

func main() {
	duration := flag.Duration("for", 5*time.Second, "wall-clock time to run the clock")
	every := flag.Int("report", 10, "log population every N generations")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatal(err)
	}
	opts := []life.Option{life.WithScheduler(core.TickerScheduler{})}
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

	log.Printf("running %dx%d at %v for %v, initial population %d",
		simCfg.Height, simCfg.Width, simCfg.Interval(), *duration, session.Population())
	session.Start()

	poll := time.NewTicker(simCfg.Interval())
	defer poll.Stop()
	deadline := time.After(*duration)
	var reported uint64
	for {
		select {
		case <-poll.C:
			gen := session.Generation()
			if *every > 0 && gen >= reported+uint64(*every) {
				reported = gen
				log.Printf("generation %d population %d", gen, session.Population())
			}
		case <-deadline:
			session.Pause()
			log.Printf("stopped at generation %d, clock ticks %d, population %d",
				session.Generation(), session.Clock().Ticks(), session.Population())
			return
		}
	}
}
