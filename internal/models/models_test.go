package models

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func testModel() *WorldModel {
	return &WorldModel{
		Characters: []Character{
			{Name: "Ishmael", Personality: []string{"melancholic"}, Goals: []string{"go to sea"}},
		},
		Settings: []Setting{
			{Name: "The Shore", AmbienceDescriptors: []string{"damp", "drizzly"}},
			{Name: "The Sea", AmbienceDescriptors: []string{"vast"}},
		},
		Objects: []WorldObject{
			{Name: "Razor", Properties: []Property{{Key: "feature", Value: "sharp"}}},
			{Name: "Sea Chest", Properties: []Property{
				{Key: PropContainer, Value: "true"},
				{Key: PropOpen, Value: "false"},
			}},
		},
		WorldState: WorldState{
			CurrentLocation: "The Shore",
			Time:            "Day 1, Morning",
			PlayerInventory: []string{"Razor"},
			CharacterLocations: []CharacterLocation{
				{CharacterName: "Ishmael", LocationName: "The Shore"},
			},
			ObjectLocations: []ObjectLocation{
				{ObjectName: "Sea Chest", LocationName: "The Shore"},
			},
		},
	}
}

func TestWorldModelYAML(t *testing.T) {
	m := testModel()

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("Failed to marshal world model: %v", err)
	}

	var m2 WorldModel
	if err := yaml.Unmarshal(data, &m2); err != nil {
		t.Fatalf("Failed to unmarshal world model: %v", err)
	}

	if m2.WorldState.CurrentLocation != "The Shore" {
		t.Errorf("Expected current location The Shore, got %s", m2.WorldState.CurrentLocation)
	}
	if len(m2.Objects) != 2 {
		t.Errorf("Expected 2 objects, got %d", len(m2.Objects))
	}
	if v, ok := m2.Objects[1].Prop(PropContainer); !ok || v != "true" {
		t.Errorf("Expected is_container=true after round trip, got %q (%v)", v, ok)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	m := testModel()
	clone := m.Clone()

	clone.Objects[0].SetProp("feature", "dull")
	clone.WorldState.PlayerInventory = append(clone.WorldState.PlayerInventory, "Hat")
	clone.WorldState.ObjectLocations[0].LocationName = "The Sea"
	clone.Characters[0].Goals[0] = "stay home"

	if v, _ := m.Objects[0].Prop("feature"); v != "sharp" {
		t.Errorf("Clone mutation leaked into original object property: %q", v)
	}
	if len(m.WorldState.PlayerInventory) != 1 {
		t.Errorf("Clone mutation leaked into original inventory: %v", m.WorldState.PlayerInventory)
	}
	if m.WorldState.ObjectLocations[0].LocationName != "The Shore" {
		t.Error("Clone mutation leaked into original object locations")
	}
	if m.Characters[0].Goals[0] != "go to sea" {
		t.Error("Clone mutation leaked into original character goals")
	}
}

func TestValidate(t *testing.T) {
	if err := testModel().Validate(); err != nil {
		t.Fatalf("Expected valid model, got %v", err)
	}

	m := testModel()
	m.WorldState.CurrentLocation = "Nowhere"
	if err := m.Validate(); err == nil {
		t.Error("Expected error for unknown current location")
	}

	m = testModel()
	m.WorldState.PlayerInventory = append(m.WorldState.PlayerInventory, "Ghost Item")
	if err := m.Validate(); err == nil {
		t.Error("Expected error for inventory item not in objects")
	}

	m = testModel()
	m.WorldState.ObjectLocations = append(m.WorldState.ObjectLocations,
		ObjectLocation{ObjectName: "Razor", LocationName: "The Shore"})
	if err := m.Validate(); err == nil {
		t.Error("Expected error for object both held and placed")
	}

	m = testModel()
	m.WorldState.CharacterLocations = append(m.WorldState.CharacterLocations,
		CharacterLocation{CharacterName: "Ishmael", LocationName: "The Sea"})
	if err := m.Validate(); err == nil {
		t.Error("Expected error for character in two places")
	}
}

func TestPlaceObjectReplacesEntry(t *testing.T) {
	m := testModel()
	m.PlaceObject("Sea Chest", "The Sea")

	count := 0
	for _, ol := range m.WorldState.ObjectLocations {
		if ol.ObjectName == "Sea Chest" {
			count++
			if ol.LocationName != "The Sea" {
				t.Errorf("Expected Sea Chest at The Sea, got %s", ol.LocationName)
			}
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one location entry for Sea Chest, got %d", count)
	}
}

func TestFindCharacterByAlias(t *testing.T) {
	m := testModel()
	m.Characters = append(m.Characters, Character{
		Name:    "The White Rabbit",
		Aliases: []string{"White Rabbit"},
	})

	if c := m.FindCharacter("white rabbit"); c == nil || c.Name != "The White Rabbit" {
		t.Errorf("Expected alias lookup to find The White Rabbit, got %v", c)
	}
	if c := m.FindCharacter("ishmael"); c == nil {
		t.Error("Expected case-insensitive name lookup to find Ishmael")
	}
	if c := m.FindCharacter("Ahab"); c != nil {
		t.Errorf("Expected no match for Ahab, got %v", c)
	}
}

func TestUnknownCapabilityKeys(t *testing.T) {
	obj := WorldObject{Properties: []Property{
		{Key: PropContainer, Value: "true"},
		{Key: "is_sentient", Value: "true"},
		{Key: "on_polish", Value: "It gleams."},
		{Key: "material", Value: "brass"},
	}}
	keys := obj.UnknownCapabilityKeys()
	if len(keys) != 1 || keys[0] != "is_sentient" {
		t.Errorf("Expected [is_sentient], got %v", keys)
	}
}

func TestRemoveFromWorld(t *testing.T) {
	m := testModel()
	m.RemoveFromWorld("Razor")
	if _, held := m.InInventory("Razor"); held {
		t.Error("Expected Razor removed from inventory")
	}
	m.RemoveFromWorld("Sea Chest")
	if names := m.ObjectNamesAt("The Shore"); len(names) != 0 {
		t.Errorf("Expected no objects at The Shore, got %v", names)
	}
}
