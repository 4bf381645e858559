package models

import "strings"

// WorldModel is the single authoritative document for one running adventure.
// It is constructed once (by the AI engine or the local world generator) and
// then threaded through every command, tick and mutation. The simulation core
// never replaces it; it clones, mutates the clone, and returns the clone.
type WorldModel struct {
	Characters []Character   `yaml:"characters" json:"characters"`
	Settings   []Setting     `yaml:"settings" json:"settings"`
	Objects    []WorldObject `yaml:"objects" json:"objects"`
	WorldState WorldState    `yaml:"world_state" json:"world_state"`
}

// Character is a named inhabitant of the world. Personality and goals are
// written at generation time and never rewritten during play.
type Character struct {
	Name          string         `yaml:"name" json:"name"`
	Aliases       []string       `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Personality   []string       `yaml:"personality,omitempty" json:"personality,omitempty"`
	Traits        []string       `yaml:"traits,omitempty" json:"traits,omitempty"`
	Goals         []string       `yaml:"goals,omitempty" json:"goals,omitempty"`
	DialogueStyle string         `yaml:"dialogue_style,omitempty" json:"dialogue_style,omitempty"`
	Relationships []Relationship `yaml:"relationships,omitempty" json:"relationships,omitempty"`
}

// Relationship links a character to another by name.
type Relationship struct {
	CharacterName string `yaml:"characterName" json:"characterName"`
	Relationship  string `yaml:"relationship" json:"relationship"`
}

// Setting is a location the player or a character can occupy. Settings are
// immutable after generation.
type Setting struct {
	Name                string   `yaml:"name" json:"name"`
	TimeCues            []string `yaml:"time_cues,omitempty" json:"time_cues,omitempty"`
	Geography           string   `yaml:"geography,omitempty" json:"geography,omitempty"`
	Culture             string   `yaml:"culture,omitempty" json:"culture,omitempty"`
	Climate             string   `yaml:"climate,omitempty" json:"climate,omitempty"`
	AmbienceDescriptors []string `yaml:"ambience_descriptors" json:"ambience_descriptors"`
}

// Property is one key/value entry in an object's property bag.
type Property struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Well-known property keys. Behavior lives entirely in properties: there is
// no object class. The dispatcher inspects these keys to decide legality and
// effect. Arbitrary extra keys are allowed; the on_<verb> convention lets
// world content define its own verbs.
const (
	PropContainer     = "is_container"
	PropOpen          = "is_open"
	PropLocked        = "is_locked"
	PropKeyID         = "key_id"
	PropItemID        = "item_id"
	PropEdible        = "is_edible"
	PropEffect        = "effect"
	PropContent       = "content"
	PropContentUnread = "content_unread"
	PropContentRead   = "content_read"
	PropReadEffect    = "on_read_effect"
	PropHasBeenRead   = "has_been_read"
	PropSurface       = "surface"
	PropBreakDestroy  = "on_break_destroy"
)

// ReadEffectRevealsKey is the PropReadEffect value that spawns a hidden key.
const ReadEffectRevealsKey = "reveals_key"

// WellKnownKeys is the whitelist world generators check capability keys
// against. Keys outside this set are accepted as content-defined behavior
// (on_* prefixed keys and free-form descriptive properties).
var WellKnownKeys = map[string]bool{
	PropContainer:     true,
	PropOpen:          true,
	PropLocked:        true,
	PropKeyID:         true,
	PropItemID:        true,
	PropEdible:        true,
	PropEffect:        true,
	PropContent:       true,
	PropContentUnread: true,
	PropContentRead:   true,
	PropReadEffect:    true,
	PropHasBeenRead:   true,
	PropSurface:       true,
	PropBreakDestroy:  true,
}

// WorldObject is an item entity. All of its behavior is defined by its
// property bag.
type WorldObject struct {
	Name       string     `yaml:"name" json:"name"`
	Properties []Property `yaml:"properties" json:"properties"`
}

// Prop returns the value for key and whether it is present.
func (o *WorldObject) Prop(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	for _, p := range o.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Is reports whether a boolean-convention property is set to "true".
func (o *WorldObject) Is(key string) bool {
	v, _ := o.Prop(key)
	return v == "true"
}

// SetProp sets key to value, updating an existing entry or appending one.
func (o *WorldObject) SetProp(key, value string) {
	for i, p := range o.Properties {
		if p.Key == key {
			o.Properties[i].Value = value
			return
		}
	}
	o.Properties = append(o.Properties, Property{Key: key, Value: value})
}

// UnknownCapabilityKeys returns "is_"-prefixed property keys outside the
// well-known set. Such a key looks like a capability switch but no handler
// reads it, usually a typo in generated content. "on_"-prefixed keys are
// content-defined verbs and always allowed.
func (o *WorldObject) UnknownCapabilityKeys() []string {
	var keys []string
	for _, p := range o.Properties {
		if strings.HasPrefix(p.Key, "is_") && !WellKnownKeys[p.Key] {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// CharacterLocation records where a character currently is.
type CharacterLocation struct {
	CharacterName string `yaml:"characterName" json:"characterName"`
	LocationName  string `yaml:"locationName" json:"locationName"`
}

// ObjectLocation records where an object currently is. LocationName may be a
// setting name or the name of another object (a container).
type ObjectLocation struct {
	ObjectName   string `yaml:"objectName" json:"objectName"`
	LocationName string `yaml:"locationName" json:"locationName"`
}

// Objective tracks a narrative-mode goal.
type Objective struct {
	Description string `yaml:"description" json:"description"`
	IsCompleted bool   `yaml:"is_completed" json:"is_completed"`
}

// EnvironmentState carries ambient weather and lighting for display.
type EnvironmentState struct {
	Weather  string `yaml:"weather,omitempty" json:"weather,omitempty"`
	Lighting string `yaml:"lighting,omitempty" json:"lighting,omitempty"`
}

// Game modes.
const (
	ModeNarrative = "Narrative"
	ModeOpenWorld = "Open World"
)

// WorldState is the single mutable position/time document.
//
// Invariants: CurrentLocation always names an existing setting; every
// inventory name exists in Objects; an object name appears in at most one of
// PlayerInventory and ObjectLocations at any time.
type WorldState struct {
	CurrentLocation    string              `yaml:"current_location" json:"current_location"`
	Time               string              `yaml:"time" json:"time"`
	Mode               string              `yaml:"mode,omitempty" json:"mode,omitempty"`
	Objectives         []Objective         `yaml:"objectives,omitempty" json:"objectives,omitempty"`
	Environment        EnvironmentState    `yaml:"environment,omitempty" json:"environment,omitempty"`
	PlayerInventory    []string            `yaml:"player_inventory" json:"player_inventory"`
	CharacterLocations []CharacterLocation `yaml:"character_locations" json:"character_locations"`
	ObjectLocations    []ObjectLocation    `yaml:"object_locations" json:"object_locations"`
	InitialDescription string              `yaml:"initial_description,omitempty" json:"initial_description,omitempty"`
}

// Clone deep-copies the model so a caller may retain the previous snapshot
// without aliasing.
func (m *WorldModel) Clone() *WorldModel {
	out := &WorldModel{
		Characters: make([]Character, len(m.Characters)),
		Settings:   make([]Setting, len(m.Settings)),
		Objects:    make([]WorldObject, len(m.Objects)),
		WorldState: m.WorldState,
	}
	for i, c := range m.Characters {
		cc := c
		cc.Aliases = append([]string(nil), c.Aliases...)
		cc.Personality = append([]string(nil), c.Personality...)
		cc.Traits = append([]string(nil), c.Traits...)
		cc.Goals = append([]string(nil), c.Goals...)
		cc.Relationships = append([]Relationship(nil), c.Relationships...)
		out.Characters[i] = cc
	}
	for i, s := range m.Settings {
		ss := s
		ss.TimeCues = append([]string(nil), s.TimeCues...)
		ss.AmbienceDescriptors = append([]string(nil), s.AmbienceDescriptors...)
		out.Settings[i] = ss
	}
	for i, o := range m.Objects {
		oo := o
		oo.Properties = append([]Property(nil), o.Properties...)
		out.Objects[i] = oo
	}
	ws := &out.WorldState
	ws.Objectives = append([]Objective(nil), m.WorldState.Objectives...)
	ws.PlayerInventory = append([]string(nil), m.WorldState.PlayerInventory...)
	ws.CharacterLocations = append([]CharacterLocation(nil), m.WorldState.CharacterLocations...)
	ws.ObjectLocations = append([]ObjectLocation(nil), m.WorldState.ObjectLocations...)
	return out
}

// FindObject returns the object with the given name (case-insensitive), or nil.
func (m *WorldModel) FindObject(name string) *WorldObject {
	for i := range m.Objects {
		if strings.EqualFold(m.Objects[i].Name, name) {
			return &m.Objects[i]
		}
	}
	return nil
}

// FindSetting returns the setting with the given name (exact match), or nil.
func (m *WorldModel) FindSetting(name string) *Setting {
	for i := range m.Settings {
		if m.Settings[i].Name == name {
			return &m.Settings[i]
		}
	}
	return nil
}

// FindCharacter matches name case-insensitively against character names and
// aliases. Exact matches win over substring matches ("rabbit" still finds
// "The White Rabbit" when nothing is named exactly that). Returns nil when
// nothing matches.
func (m *WorldModel) FindCharacter(name string) *Character {
	for i := range m.Characters {
		c := &m.Characters[i]
		if strings.EqualFold(c.Name, name) {
			return c
		}
		for _, a := range c.Aliases {
			if strings.EqualFold(a, name) {
				return c
			}
		}
	}
	query := strings.ToLower(name)
	if query == "" {
		return nil
	}
	for i := range m.Characters {
		c := &m.Characters[i]
		if strings.Contains(strings.ToLower(c.Name), query) {
			return c
		}
		for _, a := range c.Aliases {
			if strings.Contains(strings.ToLower(a), query) {
				return c
			}
		}
	}
	return nil
}

// ObjectNamesAt lists names of objects located directly at the given setting
// or container name, in document order.
func (m *WorldModel) ObjectNamesAt(location string) []string {
	var names []string
	for _, ol := range m.WorldState.ObjectLocations {
		if ol.LocationName == location {
			names = append(names, ol.ObjectName)
		}
	}
	return names
}

// CharacterNamesAt lists names of characters located at the given setting.
func (m *WorldModel) CharacterNamesAt(location string) []string {
	var names []string
	for _, cl := range m.WorldState.CharacterLocations {
		if cl.LocationName == location {
			names = append(names, cl.CharacterName)
		}
	}
	return names
}

// InInventory reports whether the named object (case-insensitive) is held by
// the player, returning its canonical name.
func (m *WorldModel) InInventory(name string) (string, bool) {
	for _, item := range m.WorldState.PlayerInventory {
		if strings.EqualFold(item, name) {
			return item, true
		}
	}
	return "", false
}

// RemoveFromInventory deletes the first inventory entry with the canonical
// name, reporting whether anything was removed.
func (m *WorldModel) RemoveFromInventory(name string) bool {
	inv := m.WorldState.PlayerInventory
	for i, item := range inv {
		if item == name {
			m.WorldState.PlayerInventory = append(inv[:i], inv[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveObjectLocation deletes the location entry for the named object,
// reporting whether anything was removed.
func (m *WorldModel) RemoveObjectLocation(name string) bool {
	locs := m.WorldState.ObjectLocations
	for i, ol := range locs {
		if ol.ObjectName == name {
			m.WorldState.ObjectLocations = append(locs[:i], locs[i+1:]...)
			return true
		}
	}
	return false
}

// PlaceObject records the object at the given location, replacing any
// existing entry so the one-location invariant holds.
func (m *WorldModel) PlaceObject(name, location string) {
	m.RemoveObjectLocation(name)
	m.WorldState.ObjectLocations = append(m.WorldState.ObjectLocations, ObjectLocation{
		ObjectName:   name,
		LocationName: location,
	})
}

// RemoveFromWorld deletes the object's inventory entry and location entry,
// whichever exists. Used for consumed or destroyed objects.
func (m *WorldModel) RemoveFromWorld(name string) {
	m.RemoveFromInventory(name)
	m.RemoveObjectLocation(name)
}

// LogEntryType classifies adventure log entries.
type LogEntryType string

const (
	LogNarrative  LogEntryType = "narrative"
	LogCommand    LogEntryType = "command"
	LogError      LogEntryType = "error"
	LogSimulation LogEntryType = "simulation"
	LogASCII      LogEntryType = "ascii"
)

// AdventureLogEntry is one line of the scrollback log.
type AdventureLogEntry struct {
	Type    LogEntryType `yaml:"type" json:"type"`
	Content string       `yaml:"content" json:"content"`
}

// SaveGame is the portable single-file save format.
type SaveGame struct {
	WorldModel   *WorldModel         `yaml:"worldModel" json:"worldModel"`
	AdventureLog []AdventureLogEntry `yaml:"adventureLog" json:"adventureLog"`
}
