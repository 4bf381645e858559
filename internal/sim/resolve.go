package sim

import (
	"strings"

	"github.com/tatianab/ascii-adventure/internal/models"
)

// Scope says where a resolved object was found.
type Scope int

const (
	ScopeInventory Scope = iota
	ScopeLocation
	ScopeContainer
)

func (s Scope) String() string {
	switch s {
	case ScopeInventory:
		return "inventory"
	case ScopeLocation:
		return "location"
	case ScopeContainer:
		return "container"
	}
	return "unknown"
}

// Resolution is a successful name lookup: the object, the scope it was found
// in, and the name of the place holding it (empty for inventory, the setting
// name for location scope, the container's name for container scope).
type Resolution struct {
	Object *models.WorldObject
	Scope  Scope
	Where  string
}

// stripArticle drops a leading "a"/"an"/"the" so "the razor" matches "Razor".
func stripArticle(name string) string {
	for _, art := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(name, art) {
			return strings.TrimSpace(strings.TrimPrefix(name, art))
		}
	}
	return name
}

// matches reports whether query names the candidate: a case-insensitive exact
// match or a substring of it, so "chest" finds "Iron-bound Chest". Within a
// scope the first match in document order wins; this is an order-dependent
// tie-break, same as the travel verb's setting match.
func matches(candidate, query string) bool {
	return strings.Contains(strings.ToLower(candidate), query)
}

// Resolve finds the object the player means by name. Priority is a deliberate
// tie-break, not incidental: inventory first, then the current location, then
// inside open containers at the current location. Closed containers and
// containers elsewhere are invisible, and the search goes exactly one level
// deep; nested containment is stored but not resolved.
func Resolve(m *models.WorldModel, name string) (Resolution, bool) {
	name = stripArticle(strings.ToLower(strings.TrimSpace(name)))
	if name == "" {
		return Resolution{}, false
	}

	for _, item := range m.WorldState.PlayerInventory {
		if matches(item, name) {
			return Resolution{Object: m.FindObject(item), Scope: ScopeInventory}, true
		}
	}

	here := m.WorldState.CurrentLocation
	for _, objName := range m.ObjectNamesAt(here) {
		if matches(objName, name) {
			return Resolution{Object: m.FindObject(objName), Scope: ScopeLocation, Where: here}, true
		}
	}

	for _, containerName := range m.ObjectNamesAt(here) {
		container := m.FindObject(containerName)
		if container == nil || !container.Is(models.PropContainer) || !container.Is(models.PropOpen) {
			continue
		}
		for _, inner := range m.ObjectNamesAt(container.Name) {
			if matches(inner, name) {
				return Resolution{Object: m.FindObject(inner), Scope: ScopeContainer, Where: container.Name}, true
			}
		}
	}

	return Resolution{}, false
}
