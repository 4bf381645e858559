package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is one of the four phases of a game day.
type Period int

const (
	Morning Period = iota
	Afternoon
	Evening
	Night
)

var periodNames = [...]string{"Morning", "Afternoon", "Evening", "Night"}

func (p Period) String() string {
	if p < Morning || p > Night {
		return "Morning"
	}
	return periodNames[p]
}

// GameTime is the structured form of the world clock. The world document
// carries it as the string "Day N, <Period>"; the structured value exists only
// inside the engine.
type GameTime struct {
	Day    int
	Period Period
}

// ParseGameTime reads a world-state time string. Matching is substring-based
// against the four period keywords so decorated strings like "Dreary
// Afternoon" still parse. Unreadable input defaults to Day 1, Morning.
func ParseGameTime(s string) GameTime {
	gt := GameTime{Day: 1, Period: Morning}

	dayPart, periodPart, _ := strings.Cut(s, ",")
	for _, f := range strings.Fields(dayPart) {
		if n, err := strconv.Atoi(f); err == nil {
			gt.Day = n
			break
		}
	}
	if periodPart == "" {
		periodPart = dayPart
	}
	for p := Night; p >= Morning; p-- {
		if strings.Contains(strings.ToLower(periodPart), strings.ToLower(p.String())) {
			gt.Period = p
			// Prefer the earliest period mentioned; keep scanning.
		}
	}
	return gt
}

// String renders the canonical serialization form.
func (t GameTime) String() string {
	return fmt.Sprintf("Day %d, %s", t.Day, t.Period)
}

// Next advances one period through the Morning->Afternoon->Evening->Night
// cycle, rolling into the next day after Night. newDay reports a rollover.
func (t GameTime) Next() (next GameTime, newDay bool) {
	if t.Period == Night {
		return GameTime{Day: t.Day + 1, Period: Morning}, true
	}
	return GameTime{Day: t.Day, Period: t.Period + 1}, false
}
