package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpSections titles the columns of KeyMap.FullHelp, in order
var helpSections = []string{"NAVIGATION", "BOARD", "WORK ITEMS", "DETAIL", "GLOBAL"}

// HelpOverlayModel shows the key bindings grouped by area
type HelpOverlayModel struct {
	visible bool
	keys    KeyMap
	width   int
	height  int
	theme   Theme
}

// NewHelpOverlayModel creates a hidden help overlay
func NewHelpOverlayModel(theme Theme, keys KeyMap) HelpOverlayModel {
	return HelpOverlayModel{theme: theme, keys: keys}
}

// Toggle flips visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *HelpOverlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update closes the overlay on any key
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.visible = false
	}
	return m, nil
}

func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}
	t := m.theme

	sectionStyle := t.Style().Bold(true).Foreground(t.Secondary)
	keyStyle := t.Style().Foreground(t.Primary).Width(12)
	descStyle := t.Style().Foreground(t.Subtext)

	var cols []string
	for i, group := range m.keys.FullHelp() {
		var b strings.Builder
		b.WriteString(sectionStyle.Render(helpSections[i]) + "\n")
		for _, binding := range group {
			b.WriteString(renderBinding(binding, keyStyle, descStyle) + "\n")
		}
		cols = append(cols, t.Style().MarginRight(3).Render(b.String()))
	}

	// Two rows of columns fit an 80 column terminal
	var body string
	if m.width > 0 && m.width < 150 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cols[:3]...),
			lipgloss.JoinHorizontal(lipgloss.Top, cols[3:]...))
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	}

	title := t.Style().Bold(true).Foreground(t.Primary).Render("Keyboard shortcuts")
	hint := t.Style().Faint(true).Italic(true).Render("[Press any key to close]")

	return t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(title + "\n\n" + body + "\n" + hint)
}

func renderBinding(b key.Binding, keyStyle, descStyle lipgloss.Style) string {
	h := b.Help()
	return "  " + keyStyle.Render(h.Key) + descStyle.Render(h.Desc)
}
