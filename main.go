// crab-roguelike is a small turn-based roguelike played in the terminal.
//
// Usage:
//
//	crab-roguelike [-config game.yaml] [-seed N]
package main

import (
	"flag"
	"fmt"
	"os"

	"crab-roguelike/internal/config"
	"crab-roguelike/internal/factory"
	"crab-roguelike/internal/game"
	"crab-roguelike/internal/logger"
	"crab-roguelike/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "Path to a YAML config file (defaults are used when empty)")
	seed := flag.Int64("seed", 0, "RNG seed; 0 picks one from the clock")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// The terminal belongs to the game, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := logger.New(cfg.Log, logFile)

	s := session.New(cfg, log)
	factory.Populate(s)

	g, err := game.New(s)
	if err != nil {
		return err
	}
	return g.Run()
}
