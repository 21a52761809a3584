package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"dungeonexplorer/internal/game"
	"dungeonexplorer/internal/game/response"
	"dungeonexplorer/internal/store"
)

// Messages produced by background commands. One command runs at a time; the
// model stays in phaseBusy until its message arrives, so the game state is
// never mutated concurrently.

type worldReadyMsg struct {
	kind response.FailureKind
}

type playerReadyMsg struct {
	kind response.FailureKind
}

type choicesReadyMsg struct {
	choices []string
	kind    response.FailureKind
}

type actionResolvedMsg struct {
	action        string
	outcome       game.Outcome
	kind          response.FailureKind
	completedGoal string
}

type saveDoneMsg struct {
	err error
}

type loadDoneMsg struct {
	state *game.State
	err   error
}

type narrationDoneMsg struct {
	err error
}

func (m Model) initializeWorld() tea.Cmd {
	return func() tea.Msg {
		kind := m.director.InitializeWorld(m.ctx, m.state)
		return worldReadyMsg{kind: kind}
	}
}

func (m Model) createPlayer() tea.Cmd {
	return func() tea.Msg {
		kind := m.director.CreatePlayer(m.ctx, m.state)
		return playerReadyMsg{kind: kind}
	}
}

func (m Model) fetchChoices() tea.Cmd {
	return func() tea.Msg {
		choices, kind := m.director.OfferChoices(m.ctx, m.state)
		return choicesReadyMsg{choices: choices, kind: kind}
	}
}

func (m Model) resolveAction(action string) tea.Cmd {
	return func() tea.Msg {
		goalBefore := m.state.CurrentGoal
		outcome, kind := m.director.ResolveAction(m.ctx, m.state, action)

		completed := ""
		if outcome.GoalCompleted {
			completed = goalBefore
		}
		return actionResolvedMsg{
			action:        action,
			outcome:       outcome,
			kind:          kind,
			completedGoal: completed,
		}
	}
}

func (m Model) saveGame() tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: m.store.Save(m.state)}
	}
}

func (m Model) loadGame() tea.Cmd {
	return func() tea.Msg {
		s, err := m.store.Load()
		return loadDoneMsg{state: s, err: err}
	}
}

// narrate speaks the text best-effort. Narration failure never aborts or
// delays the turn; the error is only logged.
func (m Model) narrate(text string) tea.Cmd {
	if !m.narrationOn || m.narrator == nil || text == "" {
		return nil
	}
	narrator, voice := m.narrator, m.voice
	ctx := m.ctx
	return func() tea.Msg {
		return narrationDoneMsg{err: narrator.Speak(ctx, text, voice)}
	}
}

// isMissingSave reports whether a load failure just means there is nothing
// to resume.
func isMissingSave(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
