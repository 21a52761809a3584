package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dungeonexplorer/internal/narration"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	locationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	menuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))
)

func (m Model) View() string {
	var b strings.Builder

	title1, title2 := "DUNGEON", "EXPLORER"
	if m.state.CustomTitle != nil {
		title1, title2 = m.state.CustomTitle.Title1, m.state.CustomTitle.Title2
	}
	b.WriteString(bannerStyle.Render(Banner(title1, title2)))
	b.WriteString("\n")

	if m.state.CurrentLocation != "" {
		b.WriteString(locationStyle.Render(fmt.Sprintf("--- %s ---", m.state.CurrentLocation)))
		b.WriteString("\n")
		if m.state.LocationDescription != "" {
			b.WriteString(statusStyle.Render(wrap(m.state.LocationDescription, m.contentWidth())))
			b.WriteString("\n")
		}
		b.WriteString(statusStyle.Render(fmt.Sprintf("Inventory: %s", FormatList(m.state.Inventory))))
		b.WriteString("\n")
		if m.state.CurrentGoal != "" {
			b.WriteString(statusStyle.Render(fmt.Sprintf("Goal: %s", m.state.CurrentGoal)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	for _, message := range m.visibleMessages() {
		if strings.HasPrefix(message, "> ") {
			b.WriteString(playerStyle.Render(wrap(message, m.contentWidth())))
		} else {
			b.WriteString(messageStyle.Render(wrap(message, m.contentWidth())))
		}
		b.WriteString("\n")
	}

	switch m.phase {
	case phaseResumePrompt:
		b.WriteString(promptStyle.Render("Would you like to load your saved game? (y/n)"))
		b.WriteString("\n")
	case phaseBusy:
		b.WriteString(promptStyle.Render(m.spin.View() + " " + m.busyLabel))
		b.WriteString("\n")
	case phaseMenu:
		b.WriteString(m.menuView())
	case phaseVoiceSelect:
		b.WriteString(m.voiceMenuView())
	case phaseTitleInput:
		b.WriteString(promptStyle.Render("Custom banner title (TITLE1 / TITLE2, empty to reset):"))
		b.WriteString("\n")
		b.WriteString(m.titleInput.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) menuView() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("What would you like to do?"))
	b.WriteString("\n")
	for i, choice := range m.choices {
		b.WriteString(menuStyle.Render(fmt.Sprintf("%d. %s", i+1, choice)))
		b.WriteString("\n")
	}

	narrationState := "off"
	if m.narrationOn {
		narrationState = "on"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"s save · n narration (%s) · v voice (%s) · g goals · t title · q quit",
		narrationState, m.voice)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) voiceMenuView() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Choose a narration voice (esc to cancel):"))
	b.WriteString("\n")
	for i, voice := range narration.Voices {
		marker := "  "
		if voice == m.voice {
			marker = "* "
		}
		b.WriteString(menuStyle.Render(fmt.Sprintf("%d. %s%s", i+1, marker, voice)))
		b.WriteString("\n")
	}
	return b.String()
}

// visibleMessages returns the tail of the log that fits the window.
func (m Model) visibleMessages() []string {
	reserved := 18 // banner, status block, menu
	maxMessages := m.height - reserved
	if maxMessages < 5 {
		maxMessages = 5
	}
	if len(m.messages) > maxMessages {
		return m.messages[len(m.messages)-maxMessages:]
	}
	return m.messages
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width - 2
}

func wrap(text string, width int) string {
	if len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) <= width {
			line += " " + word
		} else {
			result.WriteString(line + "\n")
			line = word
		}
	}
	result.WriteString(line)
	return result.String()
}
