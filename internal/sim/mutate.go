package sim

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tatianab/ascii-adventure/internal/models"
)

// MutationType discriminates externally-proposed world edits.
type MutationType string

const (
	MutationAddObject        MutationType = "ADD_OBJECT"
	MutationEnhanceNarrative MutationType = "ENHANCE_NARRATIVE"
)

// Mutation is a single externally-proposed edit to the world model. The
// payload stays raw until the type is known: ADD_OBJECT carries a
// WorldObject, ENHANCE_NARRATIVE a string.
type Mutation struct {
	Type    MutationType    `json:"type"`
	Payload json.RawMessage `json:"payload"`
	Reason  string          `json:"reason"`
}

// ErrUnknownMutationType signals a contract violation by the mutation's
// producer, as opposed to the silent idempotent rejection of duplicates.
var ErrUnknownMutationType = errors.New("unknown mutation type")

//go:embed mutation.schema.json
var mutationSchemaSource string

var mutationSchema = jsonschema.MustCompileString("mutation.schema.json", mutationSchemaSource)

// ParseMutation validates raw mutation JSON from an untrusted producer
// against the embedded schema before decoding it.
func ParseMutation(data []byte) (Mutation, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Mutation{}, fmt.Errorf("decode mutation: %w", err)
	}
	if err := mutationSchema.Validate(doc); err != nil {
		return Mutation{}, fmt.Errorf("validate mutation: %w", err)
	}
	var m Mutation
	if err := json.Unmarshal(data, &m); err != nil {
		return Mutation{}, fmt.Errorf("decode mutation: %w", err)
	}
	return m, nil
}

// ApplyMutation validates and applies one mutation. Duplicate or structurally
// empty ADD_OBJECT payloads are rejected idempotently: the original model
// comes back with an empty narrative and no error, so replaying a mutation is
// always safe. An unknown type is a real error: it means the producer broke
// the contract.
func (e *Engine) ApplyMutation(model *models.WorldModel, mut Mutation) (*models.WorldModel, string, error) {
	switch mut.Type {
	case MutationAddObject:
		var obj models.WorldObject
		if err := json.Unmarshal(mut.Payload, &obj); err != nil {
			return model, "", fmt.Errorf("decode ADD_OBJECT payload: %w", err)
		}
		if obj.Name == "" || obj.Properties == nil {
			e.log.Warn("mutation rejected: payload lacks name or properties", "type", mut.Type)
			return model, "", nil
		}
		if model.FindObject(obj.Name) != nil {
			e.log.Info("mutation rejected: object already exists", "object", obj.Name)
			return model, "", nil
		}
		if keys := obj.UnknownCapabilityKeys(); len(keys) > 0 {
			e.log.Warn("mutation payload carries capability keys no handler reads",
				"object", obj.Name, "keys", keys)
		}
		next := model.Clone()
		next.Objects = append(next.Objects, obj)
		next.PlaceObject(obj.Name, next.WorldState.CurrentLocation)
		narrative := fmt.Sprintf("A new detail materializes: %s. (Reason: %s)", obj.Name, mut.Reason)
		return next, narrative, nil

	case MutationEnhanceNarrative:
		var text string
		if err := json.Unmarshal(mut.Payload, &text); err != nil {
			return model, "", fmt.Errorf("decode ENHANCE_NARRATIVE payload: %w", err)
		}
		// Narrative-only: the object/location graph is never touched.
		return model, fmt.Sprintf("%s (Reason: %s)", text, mut.Reason), nil

	default:
		e.log.Error("mutation producer sent unknown type", "type", mut.Type)
		return model, "", fmt.Errorf("%w: %q", ErrUnknownMutationType, mut.Type)
	}
}

// Evolve occasionally proposes a small locally-generated mutation so the
// offline world keeps shifting. The proposal feeds the same validation
// pipeline as AI-produced mutations.
func (e *Engine) Evolve(model *models.WorldModel) (Mutation, bool) {
	if e.rng.Float64() >= e.evolveChance {
		return Mutation{}, false
	}

	if e.rng.Intn(2) == 0 {
		candidates := []models.WorldObject{
			{Name: "A forgotten coin", Properties: []models.Property{{Key: "material", Value: "tarnished brass"}}},
			{Name: "A rusty key", Properties: []models.Property{{Key: "feature", Value: "ornate handle"}}},
			{Name: "A crumpled note", Properties: []models.Property{{Key: "state", Value: "barely legible"}}},
			{Name: "A single, white feather", Properties: []models.Property{{Key: "origin", Value: "unknown bird"}}},
		}
		obj := candidates[e.rng.Intn(len(candidates))]
		if model.FindObject(obj.Name) != nil {
			return Mutation{}, false
		}
		payload, err := json.Marshal(obj)
		if err != nil {
			return Mutation{}, false
		}
		return Mutation{
			Type:    MutationAddObject,
			Payload: payload,
			Reason:  "The world shifts in subtle ways.",
		}, true
	}

	enhancements := []string{
		"A floorboard creaks ominously in the distance.",
		"The scent of old paper and dust hangs heavy in the air.",
		"For a moment, the light seems to dim, and a chill runs down your spine.",
		"A faint, musical chime echoes from a place you cannot identify.",
	}
	payload, err := json.Marshal(enhancements[e.rng.Intn(len(enhancements))])
	if err != nil {
		return Mutation{}, false
	}
	return Mutation{
		Type:    MutationEnhanceNarrative,
		Payload: payload,
		Reason:  "A detail sharpens into focus.",
	}, true
}
