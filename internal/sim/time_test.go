package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGameTime(t *testing.T) {
	tests := []struct {
		in   string
		want GameTime
	}{
		{"Day 1, Morning", GameTime{Day: 1, Period: Morning}},
		{"Day 3, Night", GameTime{Day: 3, Period: Night}},
		{"Day 2, Dreary Afternoon", GameTime{Day: 2, Period: Afternoon}},
		{"day 7, evening", GameTime{Day: 7, Period: Evening}},
		{"complete nonsense", GameTime{Day: 1, Period: Morning}},
		{"", GameTime{Day: 1, Period: Morning}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseGameTime(tt.in), "input %q", tt.in)
	}
}

func TestGameTimeString(t *testing.T) {
	require.Equal(t, "Day 4, Evening", GameTime{Day: 4, Period: Evening}.String())

	// Canonical strings survive a round trip.
	for _, s := range []string{"Day 1, Morning", "Day 12, Night"} {
		require.Equal(t, s, ParseGameTime(s).String())
	}
}

func TestGameTimeNext(t *testing.T) {
	next, newDay := GameTime{Day: 3, Period: Morning}.Next()
	require.Equal(t, GameTime{Day: 3, Period: Afternoon}, next)
	require.False(t, newDay)

	next, newDay = GameTime{Day: 3, Period: Night}.Next()
	require.Equal(t, GameTime{Day: 4, Period: Morning}, next)
	require.True(t, newDay)

	// A full cycle from Morning crosses into the next day exactly once.
	gt := GameTime{Day: 1, Period: Morning}
	days := 0
	for i := 0; i < 4; i++ {
		var rolled bool
		gt, rolled = gt.Next()
		if rolled {
			days++
		}
	}
	require.Equal(t, GameTime{Day: 2, Period: Morning}, gt)
	require.Equal(t, 1, days)
}
