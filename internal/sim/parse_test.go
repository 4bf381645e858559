package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Command
	}{
		{
			name: "bare verb",
			raw:  "look",
			want: Command{Verb: "look"},
		},
		{
			name: "verb and object",
			raw:  "take the brass key",
			want: Command{Verb: "take", DirectObject: "the brass key"},
		},
		{
			name: "full clause",
			raw:  "use key on chest",
			want: Command{Verb: "use", DirectObject: "key", Preposition: "on", IndirectObject: "chest"},
		},
		{
			name: "multi-word objects",
			raw:  "put the silver key in the iron chest",
			want: Command{Verb: "put", DirectObject: "the silver key", Preposition: "in", IndirectObject: "the iron chest"},
		},
		{
			name: "preposition list order beats token order",
			raw:  "use lever with rope on hook",
			want: Command{Verb: "use", DirectObject: "lever with rope", Preposition: "on", IndirectObject: "hook"},
		},
		{
			name: "preposition directly after verb",
			raw:  "look in chest",
			want: Command{Verb: "look", DirectObject: "", Preposition: "in", IndirectObject: "chest"},
		},
		{
			name: "input is lowercased",
			raw:  "  TAKE The Razor  ",
			want: Command{Verb: "take", DirectObject: "the razor"},
		},
		{
			name: "empty input",
			raw:  "",
			want: Command{},
		},
		{
			name: "whitespace only",
			raw:  "   \t  ",
			want: Command{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}
