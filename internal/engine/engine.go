// Package engine is the online collaborator: it asks Gemini to generate a
// world model from narrative text, to adjudicate commands and ticks in online
// mode, and to draw scene art. The local simulation in internal/sim never
// depends on it; everything here can fail or be absent and the game keeps
// running offline.
package engine

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/ascii-adventure/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/generate_world.txt
var generateWorldPrompt string

//go:embed prompts/process_command.txt
var processCommandPrompt string

//go:embed prompts/advance_simulation.txt
var advanceSimulationPrompt string

//go:embed prompts/ascii_art.txt
var asciiArtPrompt string

type Engine struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewEngine(ctx context.Context, apiKey string) (*Engine, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Engine{
		client: client,
		model:  client.GenerativeModel("gemini-2.5-flash"),
	}, nil
}

func (e *Engine) Close() {
	e.client.Close()
}

func (e *Engine) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := e.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return string(text), nil
}

// stripFences removes the markdown fences the model sometimes adds despite
// instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func render(name, tmplText string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(tmplText)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GenerateWorldModel builds a world model from uploaded narrative text.
func (e *Engine) GenerateWorldModel(ctx context.Context, narrative string) (*models.WorldModel, error) {
	prompt, err := render("generate_world", generateWorldPrompt, struct{ Narrative string }{narrative})
	if err != nil {
		return nil, err
	}

	raw, err := e.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var model models.WorldModel
	if err := json.Unmarshal([]byte(stripFences(raw)), &model); err != nil {
		return nil, fmt.Errorf("failed to parse world model JSON: %v\nOutput was: %s", err, raw)
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("generated world model is inconsistent: %w", err)
	}
	return &model, nil
}

type turnResponse struct {
	Narrative         string            `json:"narrative"`
	UpdatedWorldState models.WorldState `json:"updatedWorldState"`
}

func storyText(log []models.AdventureLogEntry) string {
	var b strings.Builder
	for _, entry := range log {
		if entry.Type == models.LogASCII {
			continue
		}
		if entry.Type == models.LogCommand {
			b.WriteString("> ")
		}
		b.WriteString(entry.Content)
		b.WriteString("\n")
	}
	return b.String()
}

func (e *Engine) turn(ctx context.Context, tmplName, tmplText string, model *models.WorldModel, log []models.AdventureLogEntry, command string) (string, *models.WorldModel, error) {
	stateJSON, err := json.Marshal(model.WorldState)
	if err != nil {
		return "", model, err
	}
	charsJSON, err := json.Marshal(model.Characters)
	if err != nil {
		return "", model, err
	}

	prompt, err := render(tmplName, tmplText, struct {
		WorldState string
		Characters string
		Story      string
		Command    string
	}{string(stateJSON), string(charsJSON), storyText(log), command})
	if err != nil {
		return "", model, err
	}

	raw, err := e.generate(ctx, prompt)
	if err != nil {
		return "", model, err
	}

	var resp turnResponse
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		return "", model, fmt.Errorf("failed to parse turn JSON: %v\nOutput was: %s", err, raw)
	}

	next := model.Clone()
	next.WorldState = resp.UpdatedWorldState
	return resp.Narrative, next, nil
}

// ProcessCommand adjudicates one player command in online mode.
func (e *Engine) ProcessCommand(ctx context.Context, model *models.WorldModel, log []models.AdventureLogEntry, command string) (string, *models.WorldModel, error) {
	return e.turn(ctx, "process_command", processCommandPrompt, model, log, command)
}

// AdvanceSimulation runs one tick in online mode.
func (e *Engine) AdvanceSimulation(ctx context.Context, model *models.WorldModel, log []models.AdventureLogEntry) (string, *models.WorldModel, error) {
	return e.turn(ctx, "advance_simulation", advanceSimulationPrompt, model, log, "")
}

// GenerateASCIIArt draws the current scene. Failures degrade to a
// placeholder; art is decoration, never load-bearing.
func (e *Engine) GenerateASCIIArt(ctx context.Context, description string, model *models.WorldModel) (string, error) {
	themeKeywords := []string{"abstract", "mysterious"}
	atmosphere := "mysterious"
	var characters, objects []string

	if model != nil {
		here := model.WorldState.CurrentLocation
		if setting := model.FindSetting(here); setting != nil {
			if len(setting.AmbienceDescriptors) > 0 {
				themeKeywords = setting.AmbienceDescriptors
				atmosphere = strings.Join(setting.AmbienceDescriptors, ", ")
			}
		}
		for _, name := range model.CharacterNamesAt(here) {
			if c := model.FindCharacter(name); c != nil && len(c.Personality) > 0 {
				characters = append(characters, fmt.Sprintf("%s (%s)", c.Name, strings.Join(c.Personality, ", ")))
				continue
			}
			characters = append(characters, name)
		}
		for _, name := range model.ObjectNamesAt(here) {
			objects = append(objects, name)
		}
	}

	prompt, err := render("ascii_art", asciiArtPrompt, struct {
		ThemeKeywords string
		Atmosphere    string
		Characters    string
		Objects       string
		Description   string
	}{
		strings.Join(themeKeywords, ", "),
		atmosphere,
		strings.Join(characters, ", "),
		strings.Join(objects, ", "),
		description,
	})
	if err != nil {
		return "", err
	}

	raw, err := e.generate(ctx, prompt)
	if err != nil {
		return "[ASCII art generation failed]", err
	}
	return strings.ReplaceAll(strings.TrimSpace(raw), "```", ""), nil
}
