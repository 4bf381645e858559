package sim

import (
	"fmt"
	"strings"

	"github.com/tatianab/ascii-adventure/internal/models"
)

// Tick advances the world by one discrete time-step: the clock moves one
// period forward, and, when the policies are enabled, one character may
// wander to another setting and a procedural flavor line may be generated.
// An empty narrative is legal; callers must tolerate a no-op tick.
func (e *Engine) Tick(model *models.WorldModel) (string, *models.WorldModel) {
	m := model.Clone()
	ws := &m.WorldState
	var lines []string

	now := ParseGameTime(ws.Time)
	next, newDay := now.Next()
	ws.Time = next.String()
	if newDay {
		lines = append(lines, "A new day begins.")
	}

	if e.npcWander {
		if line := e.wander(m); line != "" {
			lines = append(lines, line)
		}
	}

	if e.flavorText {
		if line := e.tickFlavor(m); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, " "), m
}

// wander relocates one random character to a random other setting. The line
// returned is empty unless the player can see the departure or arrival.
func (e *Engine) wander(m *models.WorldModel) string {
	if len(m.Characters) == 0 || len(m.Settings) < 2 {
		return ""
	}
	if e.rng.Float64() >= e.wanderChance {
		return ""
	}

	ws := &m.WorldState
	c := m.Characters[e.rng.Intn(len(m.Characters))]

	var loc *models.CharacterLocation
	for i := range ws.CharacterLocations {
		if ws.CharacterLocations[i].CharacterName == c.Name {
			loc = &ws.CharacterLocations[i]
			break
		}
	}
	if loc == nil {
		return ""
	}

	var destinations []string
	for _, s := range m.Settings {
		if s.Name != loc.LocationName {
			destinations = append(destinations, s.Name)
		}
	}
	if len(destinations) == 0 {
		return ""
	}
	dest := destinations[e.rng.Intn(len(destinations))]

	var lines []string
	if loc.LocationName == ws.CurrentLocation {
		lines = append(lines, fmt.Sprintf("%s wanders off towards %s.", c.Name, dest))
	}
	loc.LocationName = dest
	if dest == ws.CurrentLocation {
		lines = append(lines, fmt.Sprintf("%s has arrived.", c.Name))
	}
	return strings.Join(lines, " ")
}

// tickFlavor expands a small tracery-like grammar into one descriptive line,
// weighted by whoever is in the room and the room's ambience.
func (e *Engine) tickFlavor(m *models.WorldModel) string {
	ws := &m.WorldState
	grammar := map[string][]string{
		"origin": {"#sensory#", "#character#", "#environment#"},
		"sensory": {
			"The scent of #smell# hangs in the air.",
			"A floorboard creaks somewhere in the building.",
			"The distant sound of #sound# tolls once, then falls silent.",
			"A faint, unidentifiable scent drifts by on the air.",
		},
		"smell": {"old paper", "dust", "damp stone", "ozone"},
		"sound": {"a bell", "a closing door", "a faint shout"},
	}

	var present []models.Character
	for _, c := range m.Characters {
		if characterAt(m, c.Name, ws.CurrentLocation) {
			present = append(present, c)
		}
	}
	if len(present) > 0 {
		c := present[e.rng.Intn(len(present))]
		gestures := []string{"shifts their weight, lost in thought", "stares blankly into the middle distance"}
		if hasAny(c.Personality, "anxious", "hurried") {
			gestures = []string{"glances nervously towards the exit", "taps their foot impatiently"}
		}
		moods := []string{"boredom", "weariness"}
		if hasAny(c.Personality, "ambitious", "confident") {
			moods = []string{"determination", "calculation"}
		}
		grammar["character"] = []string{
			fmt.Sprintf("%s %s.", c.Name, e.choice(gestures)),
			fmt.Sprintf("A flicker of %s crosses %s's face.", e.choice(moods), c.Name),
		}
	} else {
		grammar["character"] = []string{"You feel a profound sense of solitude."}
	}

	if setting := m.FindSetting(ws.CurrentLocation); setting != nil {
		ambience := strings.ToLower(strings.Join(setting.AmbienceDescriptors, " "))
		shadow := "A comfortable silence settles over the area."
		if strings.Contains(ambience, "dark") {
			shadow = "Shadows cling to the corners of the room, deep and motionless."
		}
		chill := "The air feels heavy and still."
		if strings.Contains(ambience, "cold") {
			chill = "The cold seems to seep in from the very stones."
		}
		grammar["environment"] = []string{shadow, chill}
	} else {
		grammar["environment"] = []string{"The world holds its breath."}
	}

	return e.expand(grammar, "#origin#")
}

func (e *Engine) choice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[e.rng.Intn(len(options))]
}

// expand replaces #key# symbols with random entries from the grammar. The
// pass count is capped so a self-referential grammar cannot loop forever.
func (e *Engine) expand(grammar map[string][]string, start string) string {
	text := e.choice(grammar[strings.Trim(start, "#")])
	for i := 0; i < 10; i++ {
		open := strings.Index(text, "#")
		if open < 0 {
			return text
		}
		close := strings.Index(text[open+1:], "#")
		if close < 0 {
			return text
		}
		symbol := text[open+1 : open+1+close]
		text = text[:open] + e.choice(grammar[symbol]) + text[open+close+2:]
	}
	return text
}
