package art

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tatianab/ascii-adventure/internal/models"
)

func sceneWith(ambience ...string) *models.WorldModel {
	return &models.WorldModel{
		Settings: []models.Setting{
			{Name: "Here", AmbienceDescriptors: ambience},
		},
		WorldState: models.WorldState{CurrentLocation: "Here"},
	}
}

func TestForSceneMatchesAmbience(t *testing.T) {
	require.Contains(t, ForScene(sceneWith("cold"), nil), "A biting wind howls.")
	require.Contains(t, ForScene(sceneWith("dark"), nil), "pitch black")
}

func TestForSceneWaterFallsBackToSea(t *testing.T) {
	require.Contains(t, ForScene(sceneWith("vast", "watery"), nil), "The endless ocean.")
}

func TestForSceneDefaults(t *testing.T) {
	require.Contains(t, ForScene(sceneWith("unremarkable"), nil), "procedural imaging system")

	missing := &models.WorldModel{WorldState: models.WorldState{CurrentLocation: "Nowhere"}}
	require.Contains(t, ForScene(missing, nil), "procedural imaging system")
}

func TestForSceneDynamicArtWins(t *testing.T) {
	dynamic := map[string]string{"cold": "an aurora of shifting glyphs"}
	require.Equal(t, "an aurora of shifting glyphs", ForScene(sceneWith("cold"), dynamic))
}
