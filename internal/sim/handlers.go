package sim

import (
	"fmt"
	"strings"

	"github.com/tatianab/ascii-adventure/internal/models"
)

func handleLook(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	target := cmd.DirectObject
	if cmd.Preposition == "in" || cmd.Preposition == "inside" {
		target = cmd.IndirectObject
	}

	if target != "" {
		return lookAt(m, target)
	}

	ws := &m.WorldState
	var b strings.Builder
	fmt.Fprintf(&b, "You are in %s.", ws.CurrentLocation)
	if setting := m.FindSetting(ws.CurrentLocation); setting != nil {
		fmt.Fprintf(&b, " %s", strings.Join(setting.AmbienceDescriptors, " "))
	}
	b.WriteString("\n")

	if chars := m.CharacterNamesAt(ws.CurrentLocation); len(chars) > 0 {
		fmt.Fprintf(&b, "You see: %s.\n", strings.Join(chars, ", "))
	}

	var objects []string
	for _, name := range m.ObjectNamesAt(ws.CurrentLocation) {
		if obj := m.FindObject(name); obj.Is(models.PropContainer) {
			state := "closed"
			if obj.Is(models.PropOpen) {
				state = "open"
			}
			objects = append(objects, fmt.Sprintf("%s (%s)", name, state))
			continue
		}
		objects = append(objects, name)
	}
	if len(objects) > 0 {
		fmt.Fprintf(&b, "There is a %s here.", strings.Join(objects, ", "))
	}
	return b.String(), true
}

func lookAt(m *models.WorldModel, target string) (string, bool) {
	res, found := Resolve(m, target)
	if found {
		obj := res.Object
		if obj.Is(models.PropContainer) && res.Scope != ScopeInventory {
			if !obj.Is(models.PropOpen) {
				return fmt.Sprintf("The %s is closed.", obj.Name), false
			}
			contents := m.ObjectNamesAt(obj.Name)
			if len(contents) == 0 {
				return fmt.Sprintf("The %s is empty.", obj.Name), true
			}
			return fmt.Sprintf("Inside the %s, you see: %s.", obj.Name, strings.Join(contents, ", ")), true
		}
		values := make([]string, 0, len(obj.Properties))
		for _, p := range obj.Properties {
			values = append(values, p.Value)
		}
		return fmt.Sprintf("%s: %s.", obj.Name, strings.Join(values, ", ")), true
	}

	if c := m.FindCharacter(target); c != nil {
		return fmt.Sprintf("%s seems %s. Their goal is to %s.",
			c.Name, strings.Join(c.Personality, " and "), strings.Join(c.Goals, ", ")), true
	}
	return fmt.Sprintf("You see nothing special about the %s.", target), false
}

func handleInventory(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	inv := m.WorldState.PlayerInventory
	if len(inv) == 0 {
		return "You are not carrying anything.", true
	}
	return fmt.Sprintf("You have: %s.", strings.Join(inv, ", ")), true
}

func handleGo(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	place := cmd.DirectObject
	if place == "" {
		return "Where do you want to go?", false
	}
	// Substring match against setting names; first match wins. This is an
	// order-dependent tie-break, not a closest-match search.
	for _, s := range m.Settings {
		if strings.Contains(strings.ToLower(s.Name), place) {
			m.WorldState.CurrentLocation = s.Name
			return fmt.Sprintf("You travel to %s.", s.Name), true
		}
	}
	return fmt.Sprintf("You don't know how to get to a place called %q.", place), false
}

func handleTalk(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	name := cmd.DirectObject
	if cmd.Preposition == "to" && cmd.IndirectObject != "" {
		name = cmd.IndirectObject
	}
	if name == "" {
		return "Who do you want to talk to?", false
	}

	c := m.FindCharacter(name)
	if c == nil || !characterAt(m, c.Name, m.WorldState.CurrentLocation) {
		return fmt.Sprintf("You don't see anyone named %q here.", name), false
	}

	// First matching tag category wins. Lines are fixed so identical states
	// produce identical conversations.
	switch {
	case hasAny(c.Personality, "hurried", "anxious"):
		return fmt.Sprintf("%q %s mutters, barely looking at you.", "No time to talk!", c.Name), true
	case hasAny(c.Personality, "melancholic", "philosophical"):
		return fmt.Sprintf("%s regards you with a distant gaze. %q", c.Name, "The world is a grand stage, is it not?"), true
	case hasAny(c.Personality, "ambitious", "confident"):
		return fmt.Sprintf("%s sizes you up. %q", c.Name, "State your purpose."), true
	}
	return fmt.Sprintf("%s nods at you but doesn't say anything.", c.Name), true
}

func handleShave(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	hasRazor := false
	for _, item := range m.WorldState.PlayerInventory {
		if strings.Contains(strings.ToLower(item), "razor") {
			hasRazor = true
		}
	}
	here := m.WorldState.CurrentLocation
	hasLather := false
	for _, name := range m.ObjectNamesAt(here) {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "razor") {
			hasRazor = true
		}
		if strings.Contains(lower, "lather") {
			hasLather = true
		}
	}
	if !hasRazor {
		return "You have nothing to shave with.", false
	}
	if hasLather {
		return "Using the lather and razor, you have a remarkably close and refreshing shave.", true
	}
	return "You have a nice, clean shave. You feel refreshed.", true
}

func handleTake(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	itemName := cmd.DirectObject
	if itemName == "" {
		return "What do you want to take?", false
	}

	// take <item> from <container> addresses the container explicitly.
	if cmd.Preposition == "from" && cmd.IndirectObject != "" {
		return takeFromContainer(m, itemName, cmd.IndirectObject)
	}

	res, found := Resolve(m, itemName)
	if !found {
		return "You don't see that here.", false
	}
	if res.Scope == ScopeInventory {
		return fmt.Sprintf("You're already carrying the %s.", res.Object.Name), false
	}

	m.RemoveObjectLocation(res.Object.Name)
	m.WorldState.PlayerInventory = append(m.WorldState.PlayerInventory, res.Object.Name)
	if res.Scope == ScopeContainer {
		return fmt.Sprintf("You take the %s from the %s.", res.Object.Name, res.Where), true
	}
	return fmt.Sprintf("You take the %s.", res.Object.Name), true
}

func takeFromContainer(m *models.WorldModel, itemName, containerName string) (string, bool) {
	here := m.WorldState.CurrentLocation
	var container *models.WorldObject
	for _, name := range m.ObjectNamesAt(here) {
		if matches(name, stripArticle(containerName)) {
			container = m.FindObject(name)
			break
		}
	}
	if container == nil {
		return fmt.Sprintf("You don't see a %s here.", containerName), false
	}
	if !container.Is(models.PropOpen) {
		return fmt.Sprintf("The %s is closed.", container.Name), false
	}
	for _, inner := range m.ObjectNamesAt(container.Name) {
		if matches(inner, stripArticle(itemName)) {
			m.RemoveObjectLocation(inner)
			m.WorldState.PlayerInventory = append(m.WorldState.PlayerInventory, inner)
			return fmt.Sprintf("You take the %s from the %s.", inner, container.Name), true
		}
	}
	return fmt.Sprintf("There is no %s in the %s.", itemName, container.Name), false
}

func handleDrop(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	itemName := cmd.DirectObject
	if itemName == "" {
		return "What do you want to drop?", false
	}
	res, found := Resolve(m, itemName)
	if !found || res.Scope != ScopeInventory {
		return "You don't have that.", false
	}
	m.RemoveFromInventory(res.Object.Name)
	m.PlaceObject(res.Object.Name, m.WorldState.CurrentLocation)
	return fmt.Sprintf("You drop the %s.", res.Object.Name), true
}

func handleGive(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	if cmd.DirectObject == "" || cmd.IndirectObject == "" {
		return "What do you want to give, and to whom?", false
	}
	res, found := Resolve(m, cmd.DirectObject)
	if !found || res.Scope != ScopeInventory {
		return "You don't have that to give.", false
	}
	itemName := res.Object.Name
	c := m.FindCharacter(cmd.IndirectObject)
	if c == nil || !characterAt(m, c.Name, m.WorldState.CurrentLocation) {
		return fmt.Sprintf("You don't see anyone named %q here.", cmd.IndirectObject), false
	}
	// Characters have no inventory model; the item leaves the player's hands.
	m.RemoveFromInventory(itemName)
	return fmt.Sprintf("You give the %s to %s. %s accepts it with a nod.", itemName, c.Name, c.Name), true
}

func handleRead(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	itemName := cmd.DirectObject
	if itemName == "" {
		return "What do you want to read?", false
	}
	res, found := Resolve(m, itemName)
	if !found {
		return fmt.Sprintf("You don't see a %q here.", itemName), false
	}
	obj := res.Object

	if effect, _ := obj.Prop(models.PropReadEffect); effect == models.ReadEffectRevealsKey {
		if read, _ := obj.Prop(models.PropHasBeenRead); read == "false" {
			obj.SetProp(models.PropHasBeenRead, "true")
			revealKey(m)
			if text, has := obj.Prop(models.PropContentUnread); has {
				return text, true
			}
			return fmt.Sprintf("As you open the %s, a small silver key slips from between the pages.", obj.Name), true
		}
		if text, has := obj.Prop(models.PropContentRead); has {
			return text, true
		}
		return fmt.Sprintf("You leaf through the %s again, but find nothing new.", obj.Name), true
	}

	if content, has := obj.Prop(models.PropContent); has {
		return fmt.Sprintf("The %s reads: %q", obj.Name, content), true
	}
	return fmt.Sprintf("There is nothing to read on the %s.", itemName), false
}

// revealKey places the Silver Key in the current location, creating the
// object if the generator never defined it. Duplicate reveals are no-ops so a
// second read cannot mint a second key.
func revealKey(m *models.WorldModel) {
	const keyName = "Silver Key"
	if m.FindObject(keyName) == nil {
		m.Objects = append(m.Objects, models.WorldObject{
			Name:       keyName,
			Properties: []models.Property{{Key: models.PropItemID, Value: "silver_key_01"}},
		})
	}
	if _, held := m.InInventory(keyName); held {
		return
	}
	for _, ol := range m.WorldState.ObjectLocations {
		if ol.ObjectName == keyName {
			return
		}
	}
	m.PlaceObject(keyName, m.WorldState.CurrentLocation)
}

func handleOpen(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	return toggleContainer(m, cmd.DirectObject, true)
}

func handleClose(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	return toggleContainer(m, cmd.DirectObject, false)
}

func toggleContainer(m *models.WorldModel, targetName string, open bool) (string, bool) {
	verb := "open"
	if !open {
		verb = "close"
	}
	if targetName == "" {
		return fmt.Sprintf("What do you want to %s?", verb), false
	}
	res, found := Resolve(m, targetName)
	if !found {
		return fmt.Sprintf("You don't see a %s here.", targetName), false
	}
	obj := res.Object
	if res.Scope == ScopeInventory {
		return fmt.Sprintf("You can't %s the %s while carrying it.", verb, obj.Name), false
	}
	if !obj.Is(models.PropContainer) {
		return fmt.Sprintf("You can't %s that.", verb), false
	}
	if open {
		if obj.Is(models.PropLocked) {
			return "It's locked.", false
		}
		if obj.Is(models.PropOpen) {
			return "It's already open.", false
		}
		obj.SetProp(models.PropOpen, "true")
		return fmt.Sprintf("You open the %s.", obj.Name), true
	}
	if !obj.Is(models.PropOpen) {
		return "It's already closed.", false
	}
	obj.SetProp(models.PropOpen, "false")
	return fmt.Sprintf("You close the %s.", obj.Name), true
}

func handleUse(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	// use <tool> on <target>, but use <target> with <tool>: the "with"
	// phrasing (and the unlock alias, rewritten before dispatch) names the
	// tool second.
	toolName, targetName := cmd.DirectObject, cmd.IndirectObject
	if cmd.Preposition == "with" {
		toolName, targetName = cmd.IndirectObject, cmd.DirectObject
	}
	if toolName == "" || targetName == "" {
		return "What do you want to use on what?", false
	}

	toolRes, found := Resolve(m, toolName)
	if !found {
		return fmt.Sprintf("You don't have or see a %s.", toolName), false
	}
	tool := toolRes.Object

	targetRes, found := Resolve(m, targetName)
	if !found || targetRes.Scope == ScopeInventory {
		return fmt.Sprintf("You don't see a %s here.", targetName), false
	}
	target := targetRes.Object

	toolID, _ := tool.Prop(models.PropItemID)
	keyID, _ := target.Prop(models.PropKeyID)

	// 1. Key/lock match.
	if target.Is(models.PropLocked) && toolID != "" && toolID == keyID {
		target.SetProp(models.PropLocked, "false")
		if toolRes.Scope != ScopeInventory {
			m.RemoveObjectLocation(tool.Name)
			m.WorldState.PlayerInventory = append(m.WorldState.PlayerInventory, tool.Name)
			return fmt.Sprintf("You pick up the %s and use it on the %s. It unlocks with a click.", tool.Name, target.Name), true
		}
		return fmt.Sprintf("You use the %s on the %s. It unlocks with a click.", tool.Name, target.Name), true
	}

	// 2. Content-defined positive interaction.
	if toolID != "" {
		if outcome, has := target.Prop("on_use_" + toolID); has {
			return outcome, true
		}
	}

	// 3. Content-defined misuse: the tool reacts to the target's surface,
	// possibly destroying itself.
	if surface, has := target.Prop(models.PropSurface); has {
		if outcome, has := tool.Prop("on_use_on_" + surface); has {
			narrative := strings.ReplaceAll(outcome, "{target_name}", target.Name)
			if tool.Is(models.PropBreakDestroy) {
				m.RemoveFromWorld(tool.Name)
			}
			return narrative, true
		}
	}

	return "That doesn't seem to do anything.", false
}

func handleEat(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	itemName := cmd.DirectObject
	if itemName == "" {
		return "What do you want to eat?", false
	}
	res, found := Resolve(m, itemName)
	if !found {
		return fmt.Sprintf("You don't have or see any %s to eat.", itemName), false
	}
	obj := res.Object
	if !obj.Is(models.PropEdible) {
		return fmt.Sprintf("You can't eat the %s.", obj.Name), false
	}
	m.RemoveFromWorld(obj.Name)
	if effect, has := obj.Prop(models.PropEffect); has {
		return fmt.Sprintf("You eat the %s. %s", obj.Name, effect), true
	}
	return fmt.Sprintf("You eat the %s. It's quite tasty.", obj.Name), true
}

func characterAt(m *models.WorldModel, name, location string) bool {
	for _, cl := range m.WorldState.CharacterLocations {
		if cl.CharacterName == name && cl.LocationName == location {
			return true
		}
	}
	return false
}

func hasAny(tags []string, wanted ...string) bool {
	for _, tag := range tags {
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}
