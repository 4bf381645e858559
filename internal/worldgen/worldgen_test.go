package worldgen

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tatianab/ascii-adventure/internal/models"
)

func genreByTitle(t *testing.T, title string) Genre {
	t.Helper()
	for _, g := range Genres {
		if g.Title == title {
			return g
		}
	}
	t.Fatalf("no bundled genre titled %q", title)
	return Genre{}
}

func TestGenerateAllGenresAreValid(t *testing.T) {
	for _, g := range Genres {
		m := Generate(g)
		require.NoError(t, m.Validate(), "genre %q", g.Title)
		require.NotEmpty(t, m.Settings, "genre %q", g.Title)
		require.NotEmpty(t, m.WorldState.InitialDescription, "genre %q", g.Title)
		require.Equal(t, "Day 1, Morning", m.WorldState.Time, "genre %q", g.Title)
	}
}

func TestGenerateStudyPuzzleSeeding(t *testing.T) {
	m := Generate(genreByTitle(t, "The Alchemist's Study"))

	chest := m.FindObject("Iron-bound Chest")
	require.NotNil(t, chest)
	require.True(t, chest.Is(models.PropContainer))
	require.True(t, chest.Is(models.PropLocked))
	require.False(t, chest.Is(models.PropOpen))
	keyID, _ := chest.Prop(models.PropKeyID)
	require.Equal(t, "silver_key_01", keyID)

	book := m.FindObject("Leather-bound Book")
	require.NotNil(t, book)
	effect, _ := book.Prop(models.PropReadEffect)
	require.Equal(t, models.ReadEffectRevealsKey, effect)
	read, _ := book.Prop(models.PropHasBeenRead)
	require.Equal(t, "false", read)

	// The key exists but is hidden: no location entry until the book is read.
	require.NotNil(t, m.FindObject("Silver Key"))
	for _, ol := range m.WorldState.ObjectLocations {
		require.NotEqual(t, "Silver Key", ol.ObjectName)
	}

	require.Contains(t, m.ObjectNamesAt("Iron-bound Chest"), "Golden Goblet")
	require.NotContains(t, m.ObjectNamesAt(m.WorldState.CurrentLocation), "Golden Goblet")
}

func TestGenerateCuratedCharacters(t *testing.T) {
	whale := Generate(genreByTitle(t, "The Whale"))
	ishmael := whale.FindCharacter("Ishmael")
	require.NotNil(t, ishmael)
	require.Contains(t, ishmael.Personality, "melancholic",
		"the curated profile must win over the generic name scan")

	rabbit := Generate(genreByTitle(t, "Down the Rabbit-Hole"))
	require.NotNil(t, rabbit.FindCharacter("White Rabbit"), "alias lookup")
	require.NotNil(t, rabbit.FindCharacter("Alice"))

	north := Generate(genreByTitle(t, "The Northern Enterprise"))
	scientist := north.FindCharacter("Walton")
	require.NotNil(t, scientist)
	require.Equal(t, "The Scientist", scientist.Name)
}

func TestGenerateObjectsUseWellKnownCapabilities(t *testing.T) {
	for _, g := range Genres {
		m := Generate(g)
		for _, obj := range m.Objects {
			require.Empty(t, obj.UnknownCapabilityKeys(),
				"genre %q object %q", g.Title, obj.Name)
		}
	}
}

func TestGenerateCharactersSkipSentenceStarters(t *testing.T) {
	m := Generate(genreByTitle(t, "The Alchemist's Study"))
	for _, c := range m.Characters {
		require.NotContains(t, []string{"The", "Dust", "An"}, c.Name)
	}
}

func TestGenerateSettingsAndEnvironment(t *testing.T) {
	whale := Generate(genreByTitle(t, "The Whale"))
	require.Equal(t, "The Shore", whale.WorldState.CurrentLocation)
	require.Equal(t, "Drizzly", whale.WorldState.Environment.Weather)

	north := Generate(genreByTitle(t, "The Northern Enterprise"))
	require.Equal(t, "Cold", north.WorldState.Environment.Weather)

	study := Generate(genreByTitle(t, "The Alchemist's Study"))
	require.Equal(t, "The Alchemist's Study", study.WorldState.CurrentLocation)
}

func TestGenerateObjectsFromPatterns(t *testing.T) {
	north := Generate(genreByTitle(t, "The Northern Enterprise"))
	for _, name := range []string{"A Letter to Mrs. Saville", "Bowl of Lather", "A Mirror", "A Razor"} {
		require.NotNil(t, north.FindObject(name), "object %q", name)
	}

	rabbit := Generate(genreByTitle(t, "Down the Rabbit-Hole"))
	require.NotNil(t, rabbit.FindObject("Waistcoat-Pocket Watch"))
}

func TestGenerateUnknownNarrativeFallsBack(t *testing.T) {
	m := Generate(Genre{Title: "Custom", Narrative: "nothing recognizable here"})
	require.NoError(t, m.Validate())
	require.Equal(t, "An Unknown Place", m.WorldState.CurrentLocation)
}
