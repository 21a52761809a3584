package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dungeonexplorer/internal/game"
	"dungeonexplorer/internal/game/response"
	"dungeonexplorer/internal/narration"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case worldReadyMsg:
		return m.handleWorldReady(msg)
	case playerReadyMsg:
		return m.handlePlayerReady(msg)
	case choicesReadyMsg:
		return m.handleChoicesReady(msg)
	case actionResolvedMsg:
		return m.handleActionResolved(msg)
	case saveDoneMsg:
		return m.handleSaveDone(msg)
	case loadDoneMsg:
		return m.handleLoadDone(msg)
	case narrationDoneMsg:
		if msg.err != nil && m.debug != nil {
			m.debug.Printf("narration failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWorldReady(msg worldReadyMsg) (tea.Model, tea.Cmd) {
	if msg.kind == response.FailureNone {
		m.say("Game context generated successfully!")
	} else {
		m.say("Error generating game context. Using default game context.")
	}
	m.busyLabel = "Creating your character..."
	return m, m.createPlayer()
}

func (m Model) handlePlayerReady(msg playerReadyMsg) (tea.Model, tea.Cmd) {
	if msg.kind != response.FailureNone {
		m.say("Error creating player. Using default player.")
	}
	m.say(
		fmt.Sprintf("Welcome, %s!", m.state.Player.Name),
		fmt.Sprintf("Background: %s", m.state.Player.Background),
		"",
		"Your adventure begins...",
		"",
	)
	if m.state.CurrentGoal != "" {
		m.say(fmt.Sprintf("Current goal: %s", m.state.CurrentGoal), "")
	}
	m.busyLabel = "What happens next..."
	return m, m.fetchChoices()
}

func (m Model) handleChoicesReady(msg choicesReadyMsg) (tea.Model, tea.Cmd) {
	if msg.kind != response.FailureNone {
		m.say("Error generating choices. Using default choices.")
	}
	m.choices = msg.choices
	m.phase = phaseMenu
	return m, nil
}

func (m Model) handleActionResolved(msg actionResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.kind != response.FailureNone {
		m.say("Error resolving action.")
	}
	m.say("", msg.outcome.Narrative)

	if len(msg.outcome.ItemsGained) > 0 {
		m.say(fmt.Sprintf("You gained: %s", FormatList(msg.outcome.ItemsGained)))
	}
	if len(msg.outcome.ItemsLost) > 0 {
		m.say(fmt.Sprintf("You lost: %s", FormatList(msg.outcome.ItemsLost)))
	}
	if msg.outcome.CharacterEncountered != "" {
		m.say(fmt.Sprintf("You met: %s", msg.outcome.CharacterEncountered))
		if msg.outcome.CharacterInteraction != "" {
			m.say(msg.outcome.CharacterInteraction)
		}
	}
	if msg.completedGoal != "" {
		m.say(fmt.Sprintf("Goal completed: %s", msg.completedGoal))
		if m.state.CurrentGoal != "" {
			m.say(fmt.Sprintf("New goal: %s", m.state.CurrentGoal))
		}
	}
	m.say("")

	m.busyLabel = "What happens next..."
	return m, tea.Batch(m.narrate(msg.outcome.Narrative), m.fetchChoices())
}

func (m Model) handleSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.say("Failed to save game.")
		if m.debug != nil {
			m.debug.Printf("save failed: %v", msg.err)
		}
	} else {
		m.say("Game saved successfully!")
	}
	m.phase = phaseMenu
	return m, nil
}

func (m Model) handleLoadDone(msg loadDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if isMissingSave(msg.err) {
			m.say("No saved game found.")
		} else {
			m.say("Error loading game. Starting fresh.")
			if m.debug != nil {
				m.debug.Printf("load failed: %v", msg.err)
			}
		}
		m.busyLabel = "Generating game world..."
		return m, m.initializeWorld()
	}

	*m.state = *msg.state
	m.say(
		"Game loaded successfully!",
		"",
		fmt.Sprintf("Welcome back, %s!", m.state.Player.Name),
		"Your adventure continues...",
		"",
	)
	m.busyLabel = "What happens next..."
	return m, m.fetchChoices()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseResumePrompt:
		return m.handleResumeKey(msg)
	case phaseMenu:
		return m.handleMenuKey(msg)
	case phaseVoiceSelect:
		return m.handleVoiceKey(msg)
	case phaseTitleInput:
		return m.handleTitleKey(msg)
	}
	// phaseBusy ignores input until the turn completes.
	return m, nil
}

func (m Model) handleResumeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.phase = phaseBusy
		m.busyLabel = "Loading saved game..."
		return m, m.loadGame()
	case "n":
		m.phase = phaseBusy
		m.busyLabel = "Generating game world..."
		m.say("Starting a new adventure...", "")
		return m, m.initializeWorld()
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.choices) {
		action := m.choices[n-1]
		m.say(fmt.Sprintf("> You decide to %s...", strings.ToLower(action)))
		m.phase = phaseBusy
		m.busyLabel = "Resolving your action..."
		return m, m.resolveAction(action)
	}

	switch key {
	case "s":
		m.phase = phaseBusy
		m.busyLabel = "Saving..."
		return m, m.saveGame()
	case "n":
		m.narrationOn = !m.narrationOn
		if m.narrationOn {
			m.say(fmt.Sprintf("Narration on (voice: %s).", m.voice))
		} else {
			m.say("Narration off.")
		}
		return m, nil
	case "v":
		m.phase = phaseVoiceSelect
		return m, nil
	case "g":
		m.showGoalLog()
		return m, nil
	case "t":
		m.phase = phaseTitleInput
		m.titleInput.SetValue(m.titleValue())
		m.titleInput.Focus()
		return m, textinput.Blink
	case "q", "0":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) showGoalLog() {
	m.say("", "--- Goals ---")
	if m.state.CurrentGoal != "" {
		m.say(fmt.Sprintf("Current: %s", m.state.CurrentGoal))
	} else {
		m.say("Current: none")
	}
	if len(m.state.CompletedGoals) == 0 {
		m.say("Completed: none")
	} else {
		for i, goal := range m.state.CompletedGoals {
			m.say(fmt.Sprintf("Completed %d: %s", i+1, goal))
		}
	}
	m.say("")
}

func (m Model) handleVoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		m.phase = phaseMenu
		return m, nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(narration.Voices) {
		m.voice = narration.Voices[n-1]
		m.say(fmt.Sprintf("Narration voice set to %s.", m.voice))
		m.phase = phaseMenu
	}
	return m, nil
}

func (m Model) handleTitleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.phase = phaseMenu
		m.titleInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.applyTitle(m.titleInput.Value())
		m.phase = phaseMenu
		m.titleInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// applyTitle parses "TITLE1 / TITLE2" into the cosmetic banner pair. An
// empty value resets to the default banner.
func (m *Model) applyTitle(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		m.state.CustomTitle = nil
		m.say("Title reset.")
		return
	}

	title1, title2 := value, ""
	if idx := strings.Index(value, "/"); idx >= 0 {
		title1 = strings.TrimSpace(value[:idx])
		title2 = strings.TrimSpace(value[idx+1:])
	}
	m.state.CustomTitle = &game.CustomTitle{Title1: title1, Title2: title2}
	m.say("Title updated.")
}

func (m Model) titleValue() string {
	if m.state.CustomTitle == nil {
		return ""
	}
	if m.state.CustomTitle.Title2 == "" {
		return m.state.CustomTitle.Title1
	}
	return m.state.CustomTitle.Title1 + " / " + m.state.CustomTitle.Title2
}
