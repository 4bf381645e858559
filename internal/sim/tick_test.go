package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTickAdvancesPeriod(t *testing.T) {
	e := testEngine()
	m := studyWorld()
	m.WorldState.Time = "Day 3, Morning"

	narrative, next := e.Tick(m)
	require.Equal(t, "Day 3, Afternoon", next.WorldState.Time)
	require.Empty(t, narrative, "a plain time-step produces no narrative")
	require.Equal(t, "Day 3, Morning", m.WorldState.Time, "input model must stay untouched")
	require.NotSame(t, m, next)
}

func TestTickRollsIntoNewDay(t *testing.T) {
	e := testEngine()
	m := studyWorld()
	m.WorldState.Time = "Day 3, Night"

	narrative, next := e.Tick(m)
	require.Equal(t, "Day 4, Morning", next.WorldState.Time)
	require.Equal(t, "A new day begins.", narrative)
}

func TestTickWander(t *testing.T) {
	e := testEngine(func(o *Options) {
		o.NPCWander = true
		o.WanderChance = 1.0
	})
	m := studyWorld()

	narrative, next := e.Tick(m)
	require.Contains(t, narrative, "The Apprentice wanders off towards The Tower.")

	require.Equal(t, "The Tower", next.WorldState.CharacterLocations[0].LocationName)
	require.Equal(t, "The Study", m.WorldState.CharacterLocations[0].LocationName,
		"input model must stay untouched")
	require.NoError(t, next.Validate())
}

func TestTickWanderArrivalLine(t *testing.T) {
	e := testEngine(func(o *Options) {
		o.NPCWander = true
		o.WanderChance = 1.0
	})
	m := studyWorld()
	// The apprentice starts away from the player; the only destination is the
	// player's room, so the tick must report an arrival.
	m.WorldState.CharacterLocations[0].LocationName = "The Tower"

	narrative, next := e.Tick(m)
	require.Contains(t, narrative, "The Apprentice has arrived.")
	require.Equal(t, "The Study", next.WorldState.CharacterLocations[0].LocationName)
}

func TestTickFlavorText(t *testing.T) {
	e := testEngine(func(o *Options) {
		o.FlavorText = true
		o.Source = rand.NewSource(7)
	})
	m := studyWorld()

	narrative, next := e.Tick(m)
	require.NotEmpty(t, narrative)
	require.NotContains(t, narrative, "#", "grammar symbols must be fully expanded")
	require.Equal(t, "Day 1, Afternoon", next.WorldState.Time)
}

func TestTickReproducibleWithSeed(t *testing.T) {
	m := studyWorld()

	run := func() string {
		e := testEngine(func(o *Options) {
			o.FlavorText = true
			o.NPCWander = true
			o.Source = rand.NewSource(42)
		})
		narrative, _ := e.Tick(m)
		return narrative
	}

	require.Equal(t, run(), run())
}
