package sim

import (
	"fmt"

	"github.com/tatianab/ascii-adventure/internal/models"
)

// handlerFunc mutates the cloned model and reports whether the action took
// effect. Refusals return ok=false with a narrative explaining why; they must
// not touch the model.
type handlerFunc func(e *Engine, m *models.WorldModel, cmd Command) (narrative string, ok bool)

var handlers = map[string]handlerFunc{
	"look": handleLook, "l": handleLook, "examine": handleLook,
	"inventory": handleInventory, "i": handleInventory,
	"take": handleTake, "get": handleTake,
	"drop": handleDrop,
	"go": handleGo, "move": handleGo, "travel": handleGo,
	"talk": handleTalk, "ask": handleTalk,
	"give":  handleGive,
	"read":  handleRead,
	"open":  handleOpen,
	"close": handleClose,
	"use":   handleUse,
	"shave": handleShave,
	"eat":   handleEat,
}

// Command processes one player command against the world model. The input is
// never mutated: success returns a fresh clone with the effect applied,
// refusal returns the original model with a narrative explaining the refusal.
// The error return fires only for contract violations: a world document
// whose invariants were already broken upstream.
func (e *Engine) Command(model *models.WorldModel, raw string) (string, *models.WorldModel, error) {
	if err := model.Validate(); err != nil {
		e.log.Error("world model failed invariant check", "error", err)
		return "", model, fmt.Errorf("invalid world model: %w", err)
	}

	cmd := Parse(raw)
	if cmd.Verb == "" {
		return "I don't understand that command.", model, nil
	}

	// unlock <target> with <tool> is sugar for use <tool> on <target>.
	if cmd.Verb == "unlock" {
		cmd = Command{
			Verb:           "use",
			DirectObject:   cmd.IndirectObject,
			Preposition:    "on",
			IndirectObject: cmd.DirectObject,
		}
	}

	handler, known := handlers[cmd.Verb]
	if !known {
		handler = handleFallback
	}

	next := model.Clone()
	narrative, ok := handler(e, next, cmd)
	if !ok {
		return narrative, model, nil
	}
	return narrative, next, nil
}

// handleFallback covers content-defined verbs: if the resolved object carries
// an on_<verb> property, its value is the outcome. No hardcoded game logic.
func handleFallback(e *Engine, m *models.WorldModel, cmd Command) (string, bool) {
	if cmd.DirectObject == "" {
		return "I don't understand that command.", false
	}
	res, found := Resolve(m, cmd.DirectObject)
	if !found {
		return fmt.Sprintf("You don't see a %q here.", cmd.DirectObject), false
	}
	if effect, has := res.Object.Prop("on_" + cmd.Verb); has {
		return effect, true
	}
	return fmt.Sprintf("You can't %s the %s.", cmd.Verb, res.Object.Name), false
}
