package sim

import (
	"log/slog"
	"math/rand"
	"time"
)

// Engine runs the local simulation. It is stateless across turns: every call
// takes the authoritative world model in and hands a new one back, so the
// caller owns serialization of turns and may keep old snapshots for undo.
type Engine struct {
	log          *slog.Logger
	rng          *rand.Rand
	npcWander    bool
	flavorText   bool
	wanderChance float64
	evolveChance float64
}

// Options configures an Engine. The zero value is a fully deterministic
// engine: no NPC wandering, no procedural flavor text, time-seeded randomness
// only where a policy below asks for it.
type Options struct {
	// Logger receives contract-violation reports. Defaults to slog.Default().
	Logger *slog.Logger
	// Source seeds the engine's randomness so ticks are reproducible in
	// tests. Defaults to a time-based seed.
	Source rand.Source
	// NPCWander enables autonomous character movement on ticks.
	NPCWander bool
	// WanderChance is the per-tick probability of one character moving when
	// NPCWander is on. Defaults to 0.5.
	WanderChance float64
	// FlavorText enables the procedural descriptive line on ticks.
	FlavorText bool
	// EvolveChance is the per-call probability that Evolve proposes a
	// mutation. Defaults to 0.05.
	EvolveChance float64
}

// New builds an Engine from opts.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	src := opts.Source
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	wander := opts.WanderChance
	if wander == 0 {
		wander = 0.5
	}
	evolve := opts.EvolveChance
	if evolve == 0 {
		evolve = 0.05
	}
	return &Engine{
		log:          logger,
		rng:          rand.New(src),
		npcWander:    opts.NPCWander,
		flavorText:   opts.FlavorText,
		wanderChance: wander,
		evolveChance: evolve,
	}
}
