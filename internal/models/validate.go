package models

import "fmt"

// Validate checks the world-state invariants that every component relies on.
// A failure here means a collaborator already broke the document upstream, so
// callers should treat it as a contract violation rather than a game-logic
// refusal.
func (m *WorldModel) Validate() error {
	if m.FindSetting(m.WorldState.CurrentLocation) == nil {
		return fmt.Errorf("current_location %q does not name an existing setting", m.WorldState.CurrentLocation)
	}
	for _, item := range m.WorldState.PlayerInventory {
		if m.FindObject(item) == nil {
			return fmt.Errorf("inventory item %q does not exist in objects", item)
		}
	}
	held := make(map[string]bool, len(m.WorldState.PlayerInventory))
	for _, item := range m.WorldState.PlayerInventory {
		held[item] = true
	}
	for _, ol := range m.WorldState.ObjectLocations {
		if held[ol.ObjectName] {
			return fmt.Errorf("object %q is both held and placed at %q", ol.ObjectName, ol.LocationName)
		}
	}
	seen := make(map[string]bool, len(m.WorldState.CharacterLocations))
	for _, cl := range m.WorldState.CharacterLocations {
		if seen[cl.CharacterName] {
			return fmt.Errorf("character %q has more than one location entry", cl.CharacterName)
		}
		seen[cl.CharacterName] = true
	}
	return nil
}
