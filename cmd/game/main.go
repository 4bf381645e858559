package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/ascii-adventure/internal/config"
	"github.com/tatianab/ascii-adventure/internal/engine"
	"github.com/tatianab/ascii-adventure/internal/models"
	"github.com/tatianab/ascii-adventure/internal/sim"
	"github.com/tatianab/ascii-adventure/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	models.SaveDir = cfg.SaveDir

	var ai *engine.Engine
	if cfg.GeminiAPIKey != "" {
		ai, err = engine.NewEngine(ctx, cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("Error creating engine: %v\n", err)
			os.Exit(1)
		}
		defer ai.Close()
	}

	simEngine := sim.New(sim.Options{NPCWander: true, FlavorText: true})

	if err := tui.Run(simEngine, ai, cfg.TickInterval); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
