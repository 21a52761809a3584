package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dungeonexplorer/internal/debug"
	"dungeonexplorer/internal/game"
	"dungeonexplorer/internal/game/director"
	"dungeonexplorer/internal/narration"
	"dungeonexplorer/internal/store"
)

// phase is the input mode the turn loop is in. All generation runs in the
// background behind phaseBusy; the menu only accepts input between turns.
type phase int

const (
	phaseResumePrompt phase = iota
	phaseBusy
	phaseMenu
	phaseVoiceSelect
	phaseTitleInput
)

type Model struct {
	ctx      context.Context
	director *director.Director
	store    *store.FileStore
	narrator *narration.Narrator
	debug    *debug.Logger

	state   *game.State
	choices []string

	phase     phase
	busyLabel string
	messages  []string

	narrationOn bool
	voice       string

	spin       spinner.Model
	titleInput textinput.Model

	width  int
	height int
}

// Options carries the session's starting preferences, resolved from config
// rather than process-wide globals.
type Options struct {
	NarrationEnabled bool
	NarrationVoice   string
}

func NewModel(
	ctx context.Context,
	d *director.Director,
	fileStore *store.FileStore,
	narrator *narration.Narrator,
	debugLogger *debug.Logger,
	opts Options,
) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	ti := textinput.New()
	ti.Placeholder = "TITLE1 / TITLE2"
	ti.CharLimit = 40
	ti.Width = 40

	startPhase := phaseResumePrompt
	if !fileStore.Exists() {
		startPhase = phaseBusy
	}

	voice := opts.NarrationVoice
	if !narration.ValidVoice(voice) {
		voice = "nova"
	}

	return Model{
		ctx:         ctx,
		director:    d,
		store:       fileStore,
		narrator:    narrator,
		debug:       debugLogger,
		state:       game.NewState(),
		phase:       startPhase,
		busyLabel:   "Generating game world...",
		messages:    []string{"Welcome to Dungeon Explorer!", ""},
		narrationOn: opts.NarrationEnabled,
		voice:       voice,
		spin:        sp,
		titleInput:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseBusy {
		return tea.Batch(m.spin.Tick, m.initializeWorld())
	}
	return m.spin.Tick
}

func (m *Model) say(lines ...string) {
	m.messages = append(m.messages, lines...)
}
