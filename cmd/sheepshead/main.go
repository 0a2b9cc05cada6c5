package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/schafkopf-go/sheepshead/internal/config"
	"github.com/schafkopf-go/sheepshead/internal/game/session"
	"github.com/schafkopf-go/sheepshead/internal/logger"
	"github.com/schafkopf-go/sheepshead/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	goal := flag.Int("goal", -1, "override the goal score (0 plays unbounded)")
	seed := flag.Uint64("seed", 0, "fix the shuffle seed")
	headless := flag.Bool("no-ui", false, "play an all-computer game and print the standings")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("could not load config, using defaults: %v", err)
		cfg = config.Default()
	}
	if *goal >= 0 {
		cfg.Game.Goal = *goal
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	if err := logger.Init(); err != nil {
		log.Printf("logging disabled: %v", err)
	}
	defer logger.Close()

	if *headless {
		if err := runHeadless(cfg); err != nil {
			logger.LogError("headless game failed: %v", err)
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := ui.Run(cfg); err != nil {
		logger.LogError("ui exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless plays the configured game without a screen. Human seats make
// no sense here, so they are downgraded to computer players.
func runHeadless(cfg *config.Config) error {
	for i := range cfg.Game.Players {
		cfg.Game.Players[i].Control = config.ControlComputer
	}
	if cfg.Game.Goal == 0 {
		return fmt.Errorf("goal 0 would play forever without a screen; set -goal")
	}

	g, err := session.NewGame(ui.BuildPlayers(cfg, ui.NewBridge()), session.Options{
		Goal:              cfg.Game.Goal,
		EnforceFollowSuit: cfg.Game.EnforceFollowSuit,
		Seed:              cfg.Game.Seed,
	})
	if err != nil {
		return err
	}
	if err := g.Play(context.Background()); err != nil {
		return err
	}

	fmt.Printf("final standings after %d hands:\n", len(g.Hands))
	for _, s := range g.Seats {
		fmt.Printf("  %-10s %3d\n", s.Name(), s.Score)
	}
	return nil
}
