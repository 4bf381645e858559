// Package worldgen builds a playable world model from narrative text using
// local, rule-based heuristics. It is the offline counterpart to the AI
// generator: cruder, but it needs no network and always produces a document
// that satisfies the world-state invariants.
package worldgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tatianab/ascii-adventure/internal/models"
)

// Genre is a bundled adventure: a title, a blurb for the selection screen,
// and the narrative text the world is generated from.
type Genre struct {
	Title       string
	Description string
	Narrative   string
}

var nameRegexp = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)?)\b`)

// Words that match the capitalized-name pattern but never name a character:
// sentence starters, months, places, honorifics, and figures the curated
// entries below cover under a different name.
var notNames = map[string]bool{
	"Chapter": true, "Letter": true,
	"The": true, "And": true, "But": true, "You": true, "She": true,
	"Her": true, "His": true, "Some": true, "Suddenly": true,
	"Whenever": true, "Burning": true, "Call": true, "Dust": true,
	"November": true, "London": true, "Petersburgh": true,
	"Mrs": true, "Saville": true,
	"Rabbit": true, "White Rabbit": true, "The Rabbit": true,
}

func findCharacters(text string) []models.Character {
	var characters []models.Character
	seen := make(map[string]bool)

	add := func(c models.Character) {
		if !seen[c.Name] {
			characters = append(characters, c)
			seen[c.Name] = true
		}
	}

	// Curated narrators and title-cased figures come first so the generic
	// scan cannot claim their names with an empty profile.
	if strings.Contains(text, "Call me Ishmael") {
		add(models.Character{
			Name:          "Ishmael",
			Personality:   []string{"melancholic", "philosophical"},
			Goals:         []string{"go to sea"},
			DialogueStyle: "eloquent",
		})
	}
	if strings.Contains(text, "White Rabbit") {
		add(models.Character{
			Name:          "The White Rabbit",
			Aliases:       []string{"White Rabbit"},
			Personality:   []string{"hurried", "anxious"},
			Traits:        []string{"has pink eyes"},
			Goals:         []string{"not be late"},
			DialogueStyle: "rushed",
		})
	}
	if strings.Contains(text, "Mrs. Saville") {
		add(models.Character{
			Name:          "The Scientist",
			Aliases:       []string{"Walton"},
			Personality:   []string{"ambitious", "confident"},
			Traits:        []string{"scientific"},
			Goals:         []string{"reach the North Pole"},
			DialogueStyle: "formal",
		})
	}

	for _, match := range nameRegexp.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if notNames[name] || len(name) <= 2 {
			continue
		}
		if seen[name] {
			continue
		}
		var personality []string
		// "Ahab, grim and vengeful" reads as a personality aside.
		asideRegexp := regexp.MustCompile(fmt.Sprintf(`(?:%s, )([a-z]+ and [a-z]+)`, regexp.QuoteMeta(name)))
		if aside := asideRegexp.FindStringSubmatch(text); aside != nil {
			personality = strings.Split(aside[1], " and ")
		}
		add(models.Character{Name: name, Personality: personality})
	}

	return characters
}

var settingKeywords = []struct {
	keyword  string
	name     string
	ambience []string
}{
	{"shore", "The Shore", []string{"damp", "drizzly", "sea", "melancholy"}},
	{"sea", "The Sea", []string{"vast", "watery", "salty"}},
	{"ocean", "The Ocean", []string{"vast", "deep", "mysterious"}},
	{"petersburgh", "St. Petersburgh Street", []string{"cold", "northern", "icy", "urban"}},
	{"bank", "The Riverbank", []string{"hot", "sleepy", "pastoral", "quiet"}},
	{"rabbit-hole", "The Rabbit-Hole", []string{"dark", "mysterious", "deep", "cave"}},
	{"tower", "The Tower", []string{"stately", "stone", "morning"}},
	{"stairhead", "The Stairhead", []string{"dark", "winding", "stone"}},
	{"gunrest", "The Gunrest", []string{"round", "open-air", "windy"}},
	{"alchemist's study", "The Alchemist's Study", []string{"cluttered", "dusty", "mysterious"}},
}

func findSettings(text string) []models.Setting {
	var settings []models.Setting
	lower := strings.ToLower(text)
	seen := make(map[string]bool)

	for _, sk := range settingKeywords {
		if strings.Contains(lower, sk.keyword) && !seen[sk.name] {
			settings = append(settings, models.Setting{
				Name:                sk.name,
				Geography:           "Vague",
				Culture:             "Unknown",
				Climate:             "Temperate",
				AmbienceDescriptors: sk.ambience,
			})
			seen[sk.name] = true
		}
	}

	if len(settings) == 0 {
		settings = append(settings, models.Setting{
			Name:                "An Unknown Place",
			Geography:           "Vague",
			Climate:             "Temperate",
			AmbienceDescriptors: []string{"mysterious"},
		})
	}
	return settings
}

var objectPatterns = []struct {
	pattern string
	object  models.WorldObject
}{
	{"a watch out of its waistcoat-pocket", models.WorldObject{
		Name:       "Waistcoat-Pocket Watch",
		Properties: []models.Property{{Key: "function", Value: "tells time"}},
	}},
	{"a letter to mrs. saville", models.WorldObject{
		Name:       "A Letter to Mrs. Saville",
		Properties: []models.Property{{Key: models.PropContent, Value: "Details of an enterprise"}},
	}},
	{"bowl of lather", models.WorldObject{
		Name:       "Bowl of Lather",
		Properties: []models.Property{{Key: "state", Value: "full"}},
	}},
	{"a mirror", models.WorldObject{
		Name:       "A Mirror",
		Properties: []models.Property{{Key: "feature", Value: "reflects"}, {Key: models.PropSurface, Value: "glass"}},
	}},
	{"a razor", models.WorldObject{
		Name:       "A Razor",
		Properties: []models.Property{{Key: "feature", Value: "sharp"}},
	}},
}

func findObjects(text, genreTitle string) []models.WorldObject {
	var objects []models.WorldObject
	lower := strings.ToLower(text)

	for _, op := range objectPatterns {
		if strings.Contains(lower, op.pattern) {
			obj := op.object
			obj.Properties = append([]models.Property(nil), op.object.Properties...)
			objects = append(objects, obj)
		}
	}

	if genreTitle == "The Alchemist's Study" {
		objects = append(objects,
			models.WorldObject{Name: "Iron-bound Chest", Properties: []models.Property{
				{Key: models.PropContainer, Value: "true"},
				{Key: models.PropLocked, Value: "true"},
				{Key: models.PropOpen, Value: "false"},
				{Key: models.PropKeyID, Value: "silver_key_01"},
			}},
			models.WorldObject{Name: "Leather-bound Book", Properties: []models.Property{
				{Key: models.PropReadEffect, Value: models.ReadEffectRevealsKey},
				{Key: models.PropHasBeenRead, Value: "false"},
				{Key: models.PropContentUnread, Value: "The pages are filled with cryptic diagrams. Tucked inside is a small silver key."},
				{Key: models.PropContentRead, Value: "The cryptic diagrams mean nothing more to you, and the hollow where the key rested is empty."},
			}},
			models.WorldObject{Name: "Silver Key", Properties: []models.Property{
				{Key: models.PropItemID, Value: "silver_key_01"},
			}},
			models.WorldObject{Name: "Golden Goblet", Properties: []models.Property{
				{Key: "material", Value: "gold"},
				{Key: "feature", Value: "exquisitely crafted"},
			}},
		)
	}

	return objects
}

func initialDescription(text string) string {
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if len(p) > 100 && !strings.HasPrefix(p, "CHAPTER") && !strings.HasPrefix(p, "Letter") {
			return p
		}
	}
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			return strings.TrimSpace(p)
		}
	}
	return "Your adventure begins."
}

// Generate constructs a world model from the genre's narrative text. The
// result always satisfies the world-state invariants.
func Generate(genre Genre) *models.WorldModel {
	characters := findCharacters(genre.Narrative)
	settings := findSettings(genre.Narrative)
	objects := findObjects(genre.Narrative, genre.Title)

	start := settings[0].Name

	var objectLocations []models.ObjectLocation
	for _, o := range objects {
		objectLocations = append(objectLocations, models.ObjectLocation{
			ObjectName:   o.Name,
			LocationName: start,
		})
	}

	// Puzzle seeding: the key stays hidden until the book is read, and the
	// goblet waits inside the locked chest.
	if genre.Title == "The Alchemist's Study" {
		filtered := objectLocations[:0]
		for _, ol := range objectLocations {
			switch ol.ObjectName {
			case "Silver Key":
				continue
			case "Golden Goblet":
				ol.LocationName = "Iron-bound Chest"
			}
			filtered = append(filtered, ol)
		}
		objectLocations = filtered
	}

	var characterLocations []models.CharacterLocation
	for _, c := range characters {
		characterLocations = append(characterLocations, models.CharacterLocation{
			CharacterName: c.Name,
			LocationName:  start,
		})
	}

	ws := models.WorldState{
		CurrentLocation:    start,
		Time:               "Day 1, Morning",
		Mode:               models.ModeOpenWorld,
		Environment:        models.EnvironmentState{Weather: "Clear", Lighting: "Bright"},
		PlayerInventory:    []string{},
		CharacterLocations: characterLocations,
		ObjectLocations:    objectLocations,
		InitialDescription: initialDescription(genre.Narrative),
	}

	ambience := strings.ToLower(strings.Join(settings[0].AmbienceDescriptors, " "))
	switch {
	case strings.Contains(ambience, "drizzly"), strings.Contains(ambience, "rain"):
		ws.Environment.Weather = "Drizzly"
	case strings.Contains(ambience, "cold"), strings.Contains(ambience, "icy"):
		ws.Environment.Weather = "Cold"
	case strings.Contains(ambience, "hot"):
		ws.Environment.Weather = "Hot"
	}
	if strings.Contains(ambience, "dark") || strings.Contains(ambience, "evening") || strings.Contains(ambience, "twilight") {
		ws.Environment.Lighting = "Dim Twilight"
	}

	return &models.WorldModel{
		Characters: characters,
		Settings:   settings,
		Objects:    objects,
		WorldState: ws,
	}
}
