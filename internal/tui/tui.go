package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/ascii-adventure/internal/art"
	"github.com/tatianab/ascii-adventure/internal/config"
	"github.com/tatianab/ascii-adventure/internal/engine"
	"github.com/tatianab/ascii-adventure/internal/models"
	"github.com/tatianab/ascii-adventure/internal/sim"
	"github.com/tatianab/ascii-adventure/internal/worldgen"
)

type sessionState int

const (
	stateChooseGenre sessionState = iota
	stateLoading
	statePlaying
	stateError
)

type model struct {
	state     sessionState
	sim       *sim.Engine
	ai        *engine.Engine // nil in offline-only mode
	world     *models.WorldModel
	log       []models.AdventureLogEntry
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	width     int
	height    int
	autoSim   bool
	tickEvery time.Duration
}

var (
	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#005F00")).
			Bold(true).
			PaddingLeft(1)

	narrativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFFFAF"))

	simStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAF5F")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	artStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44AA44"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// NewModel builds the TUI. ai may be nil; the game then runs fully offline.
func NewModel(simEngine *sim.Engine, ai *engine.Engine, tickEvery time.Duration) model {
	ti := textinput.New()
	ti.Placeholder = "Genre number, a .txt or .json path, 'load', or enter for 1..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 60

	return model{
		state:     stateChooseGenre,
		sim:       simEngine,
		ai:        ai,
		textInput: ti,
		tickEvery: tickEvery,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type worldReadyMsg struct {
	world *models.WorldModel
	log   []models.AdventureLogEntry
}

type autoTickMsg time.Time

type errMsg struct {
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state == stateChooseGenre {
				choice := strings.TrimSpace(m.textInput.Value())
				m.textInput.Reset()
				m.state = stateLoading
				return m, m.startAdventure(choice)
			}
			if m.state == statePlaying {
				input := strings.TrimSpace(m.textInput.Value())
				if input == "" {
					return m, nil
				}
				m.textInput.Reset()
				return m.handleInput(input)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.75)
		m.viewport.Height = msg.Height - 6
		if m.state == statePlaying {
			m.viewport.SetContent(m.renderLog())
		}

	case worldReadyMsg:
		m.world = msg.world
		m.log = msg.log
		m.state = statePlaying
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(int(float64(m.width)*0.75), m.height-6)
		}
		m.appendLog(models.LogASCII, art.ForScene(m.world, nil))
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()
		m.textInput.Placeholder = "What do you do?"
		return m, nil

	case autoTickMsg:
		if m.state != statePlaying || !m.autoSim {
			return m, nil
		}
		m.runTick()
		return m, tea.Tick(m.tickEvery, func(t time.Time) tea.Msg { return autoTickMsg(t) })

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	if m.state == stateChooseGenre || m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *model) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit":
		return m, tea.Quit
	case "/restart":
		m.state = stateChooseGenre
		m.world = nil
		m.log = nil
		m.autoSim = false
		m.textInput.Placeholder = "Genre number, a .txt or .json path, or enter for 1..."
		return m, nil
	case "help":
		m.appendLog(models.LogCommand, input)
		m.appendLog(models.LogSimulation, helpText)
		m.refresh()
		return m, nil
	case "clear":
		m.log = []models.AdventureLogEntry{{Type: models.LogSimulation, Content: "Log cleared."}}
		m.refresh()
		return m, nil
	case "save":
		m.appendLog(models.LogCommand, input)
		save := &models.SaveGame{WorldModel: m.world, AdventureLog: m.log}
		if err := save.Save("current"); err != nil {
			m.appendLog(models.LogError, fmt.Sprintf("Save failed: %v", err))
		} else {
			m.appendLog(models.LogSimulation, "Game saved.")
		}
		m.refresh()
		return m, nil
	case "tick":
		m.appendLog(models.LogCommand, input)
		m.runTick()
		return m, nil
	case "auto":
		if m.autoSim {
			return m, nil
		}
		m.autoSim = true
		m.appendLog(models.LogSimulation, "Auto-simulation started.")
		m.refresh()
		return m, tea.Tick(m.tickEvery, func(t time.Time) tea.Msg { return autoTickMsg(t) })
	case "stop":
		m.autoSim = false
		m.appendLog(models.LogSimulation, "Auto-simulation stopped.")
		m.refresh()
		return m, nil
	}

	m.appendLog(models.LogCommand, input)
	wasAt := m.world.WorldState.CurrentLocation

	narrative, next, err := m.sim.Command(m.world, input)
	if err != nil {
		m.appendLog(models.LogError, fmt.Sprintf("Error processing command: %v", err))
		m.refresh()
		return m, nil
	}
	m.world = next
	m.appendLog(models.LogNarrative, narrative)

	if m.world.WorldState.CurrentLocation != wasAt {
		m.appendLog(models.LogASCII, art.ForScene(m.world, nil))
	}

	m.refresh()
	return m, nil
}

func (m *model) runTick() {
	narrative, next := m.sim.Tick(m.world)
	m.world = next
	if narrative != "" {
		m.appendLog(models.LogSimulation, narrative)
	}

	// The world occasionally evolves on its own; proposals go through the
	// same mutation pipeline as AI-sourced ones.
	if mut, ok := m.sim.Evolve(m.world); ok {
		evolved, update, err := m.sim.ApplyMutation(m.world, mut)
		if err != nil {
			m.appendLog(models.LogError, fmt.Sprintf("Mutation rejected: %v", err))
		} else {
			m.world = evolved
			if update != "" {
				m.appendLog(models.LogSimulation, update)
			}
		}
	}

	m.refresh()
}

func (m *model) appendLog(t models.LogEntryType, content string) {
	m.log = append(m.log, models.AdventureLogEntry{Type: t, Content: content})
}

func (m *model) refresh() {
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

const helpText = `CLIENT COMMANDS:
[help] - Show this message.
[clear] - Clear the screen log.
[save] - Save the game to the "current" slot.
[tick] - Advance the simulation one step.
[auto] / [stop] - Start or stop auto-simulation.
[/restart] - Return to the genre screen.
[/quit] - Exit.

GAME COMMANDS:
Interact with the world in plain words.
(e.g., 'look', 'go tower', 'take razor', 'unlock chest with key')`

func (m model) View() string {
	var s string

	switch m.state {
	case stateChooseGenre:
		var genres strings.Builder
		for i, g := range worldgen.Genres {
			fmt.Fprintf(&genres, "  %d. %s - %s\n", i+1, g.Title, g.Description)
		}
		s = fmt.Sprintf(
			"ASCII Adventure\n\nChoose a bundled adventure, give a path to a narrative .txt or a saved .json,\nor type 'load' to resume the last saved game:\n\n%s\n%s",
			genres.String(),
			m.textInput.View(),
		)

	case stateLoading:
		s = "\n  Building your world... please wait.\n"

	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderPanel(),
		)
		help := helpStyle.Render("Commands: help, save, tick, auto, stop, /restart, /quit - or just act.")
		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderPanel() string {
	if m.world == nil {
		return ""
	}
	ws := m.world.WorldState

	content := titleStyle.Render("LOCATION") + "\n" + ws.CurrentLocation + "\n\n"
	content += titleStyle.Render("TIME") + "\n" + ws.Time + "\n\n"

	if ws.Environment.Weather != "" || ws.Environment.Lighting != "" {
		content += titleStyle.Render("ENVIRONMENT") + "\n"
		content += fmt.Sprintf("%s, %s\n\n", ws.Environment.Weather, ws.Environment.Lighting)
	}

	content += titleStyle.Render("INVENTORY") + "\n"
	if len(ws.PlayerInventory) == 0 {
		content += "(empty)\n"
	} else {
		for _, item := range ws.PlayerInventory {
			content += "- " + item + "\n"
		}
	}

	if len(ws.Objectives) > 0 {
		content += "\n" + titleStyle.Render("OBJECTIVES") + "\n"
		for _, o := range ws.Objectives {
			mark := "[ ]"
			if o.IsCompleted {
				mark = "[x]"
			}
			content += fmt.Sprintf("%s %s\n", mark, o.Description)
		}
	}

	panelWidth := int(float64(m.width) * 0.23)
	return panelStyle.Width(panelWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderLog() string {
	width := m.viewport.Width
	var b strings.Builder
	for _, entry := range m.log {
		switch entry.Type {
		case models.LogCommand:
			b.WriteString(commandStyle.Width(width).Render("> " + entry.Content))
		case models.LogNarrative:
			b.WriteString(narrativeStyle.Width(width).Render(entry.Content))
		case models.LogSimulation:
			b.WriteString(simStyle.Width(width).Render(entry.Content))
		case models.LogError:
			b.WriteString(errorStyle.Width(width).Render(entry.Content))
		case models.LogASCII:
			b.WriteString(artStyle.Render(entry.Content))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// startAdventure resolves the genre-screen input into a world: a number picks
// a bundled genre, a .json path loads a portable save, a .txt path feeds the
// AI generator when available and the local heuristics otherwise.
func (m model) startAdventure(choice string) tea.Cmd {
	return func() tea.Msg {
		if choice == "load" {
			save, err := models.LoadSave("current")
			if err != nil {
				return errMsg{fmt.Errorf("load save: %w", err)}
			}
			return worldReadyMsg{world: save.WorldModel, log: save.AdventureLog}
		}

		if strings.HasSuffix(choice, ".json") {
			save, err := models.ImportJSON(choice)
			if err != nil {
				return errMsg{fmt.Errorf("load save: %w", err)}
			}
			return worldReadyMsg{world: save.WorldModel, log: save.AdventureLog}
		}

		if strings.HasSuffix(choice, ".txt") {
			data, err := os.ReadFile(choice)
			if err != nil {
				return errMsg{fmt.Errorf("read narrative: %w", err)}
			}
			narrative := string(data)

			if m.ai != nil {
				world, err := m.ai.GenerateWorldModel(context.Background(), narrative)
				if err == nil {
					return readyMsgFor(world)
				}
				// Fall through to the local generator; the game must keep
				// working with zero network access.
			}
			world := worldgen.Generate(worldgen.Genre{Title: "Uploaded Narrative", Narrative: narrative})
			return readyMsgFor(world)
		}

		idx := 0
		if choice != "" {
			n, err := strconv.Atoi(choice)
			if err != nil || n < 1 || n > len(worldgen.Genres) {
				return errMsg{fmt.Errorf("no such adventure: %q", choice)}
			}
			idx = n - 1
		}
		world := worldgen.Generate(worldgen.Genres[idx])
		return readyMsgFor(world)
	}
}

func readyMsgFor(world *models.WorldModel) worldReadyMsg {
	intro := world.WorldState.InitialDescription
	if intro == "" {
		intro = "Your adventure begins."
	}
	return worldReadyMsg{
		world: world,
		log:   []models.AdventureLogEntry{{Type: models.LogNarrative, Content: intro}},
	}
}

// Run starts the TUI. ai may be nil for offline-only play.
func Run(simEngine *sim.Engine, ai *engine.Engine, tickEvery time.Duration) error {
	p := tea.NewProgram(NewModel(simEngine, ai, tickEvery), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start wires the game from environment configuration and runs it. The online
// engine is attached only when an API key is configured.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	models.SaveDir = cfg.SaveDir

	var ai *engine.Engine
	if cfg.GeminiAPIKey != "" {
		ai, err = engine.NewEngine(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("create engine: %w", err)
		}
		defer ai.Close()
	}

	return Run(sim.New(sim.Options{NPCWander: true, FlavorText: true}), ai, cfg.TickInterval)
}
