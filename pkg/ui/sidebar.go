package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/workboard/wb/pkg/model"
	"github.com/workboard/wb/pkg/route"
)

// initiallyExpanded is the workspace whose boards show on startup
const initiallyExpanded = "softdev"

// sidebarEntry is one visible line of the workspace tree
type sidebarEntry struct {
	label  string
	route  route.Route
	ws     string // workspace id; set on workspace lines only
	nested bool
}

// sidebar is the workspace tree on the left of every page
type sidebar struct {
	theme Theme
	keys  KeyMap

	workspaces []model.Workspace
	expanded   map[string]bool
	cursor     int
	focused    bool
	active     route.Route
	height     int
}

func newSidebar(workspaces []model.Workspace, theme Theme, keys KeyMap) sidebar {
	return sidebar{
		theme:      theme,
		keys:       keys,
		workspaces: workspaces,
		expanded:   map[string]bool{initiallyExpanded: true},
	}
}

// entries flattens the tree honoring expansion
func (s *sidebar) entries() []sidebarEntry {
	var out []sidebarEntry
	for _, ws := range s.workspaces {
		out = append(out, sidebarEntry{label: ws.Name, route: route.ForWorkspace(ws.ID), ws: ws.ID})
		if !s.expanded[ws.ID] {
			continue
		}
		for _, b := range ws.Boards {
			out = append(out, sidebarEntry{label: b.Name, route: route.ForBoard(ws.ID, b.ID), nested: true})
		}
	}
	return out
}

// Focused reports whether the sidebar takes movement keys
func (s *sidebar) Focused() bool {
	return s.focused
}

func (s *sidebar) SetFocus(on bool) {
	s.focused = on
}

// SetActive marks the route of the page being shown
func (s *sidebar) SetActive(r route.Route) {
	s.active = r
}

func (s *sidebar) Update(msg tea.KeyMsg) tea.Cmd {
	entries := s.entries()
	switch {
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(entries)-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.Toggle), key.Matches(msg, s.keys.Right), key.Matches(msg, s.keys.Left):
		if s.cursor < len(entries) && entries[s.cursor].ws != "" {
			id := entries[s.cursor].ws
			s.expanded[id] = !s.expanded[id]
		}
	case key.Matches(msg, s.keys.Open):
		if s.cursor < len(entries) {
			s.focused = false
			return navigateCmd(entries[s.cursor].route)
		}
	case key.Matches(msg, s.keys.Back), key.Matches(msg, s.keys.Sidebar):
		s.focused = false
	}
	return nil
}

func (s *sidebar) View() string {
	t := s.theme
	muted := t.Style().Foreground(t.Subtext)
	inner := SidebarWidth - 2

	lines := []string{t.Style().Bold(true).Foreground(t.Secondary).Render("WORKSPACES"), ""}
	for i, e := range s.entries() {
		var line string
		if e.nested {
			line = "   " + cell(e.label, inner-3)
		} else {
			arrow := "▸ "
			if s.expanded[e.ws] {
				arrow = "▾ "
			}
			line = arrow + cell(e.label, inner-2)
		}
		style := t.Base
		switch {
		case s.focused && i == s.cursor:
			style = t.Style().Bold(true).Foreground(t.Primary).Reverse(true)
		case e.route == s.active:
			style = t.Style().Bold(true).Foreground(t.Primary)
		case e.nested:
			style = muted
		}
		lines = append(lines, style.Render(line))
	}
	lines = append(lines, "", muted.Faint(true).Render("n board · N workspace"))

	border := t.Border
	if s.focused {
		border = t.Primary
	}
	return t.Style().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(border).
		Width(SidebarWidth).
		Height(max(s.height, len(lines))).
		Render(strings.Join(lines, "\n"))
}

// jumpTarget is a board reachable from the jump palette
type jumpTarget struct {
	label string
	route route.Route
}

// jumpPalette fuzzy-finds a board by "Workspace / Board"
type jumpPalette struct {
	theme Theme

	targets  []jumpTarget
	filtered []jumpTarget
	input    textinput.Model
	cursor   int
	closed   bool
}

func newJumpPalette(workspaces []model.Workspace, theme Theme) *jumpPalette {
	ti := textinput.New()
	ti.Placeholder = "Jump to board..."
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	p := &jumpPalette{theme: theme, input: ti}
	for _, ws := range workspaces {
		for _, b := range ws.Boards {
			p.targets = append(p.targets, jumpTarget{
				label: ws.Name + " / " + b.Name,
				route: route.ForBoard(ws.ID, b.ID),
			})
		}
	}
	p.filtered = p.targets
	return p
}

// Closed reports whether the palette was dismissed or used
func (p *jumpPalette) Closed() bool {
	return p.closed
}

func (p *jumpPalette) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		p.closed = true
		return nil
	case tea.KeyEnter:
		p.closed = true
		if p.cursor < len(p.filtered) {
			return navigateCmd(p.filtered[p.cursor].route)
		}
		return nil
	case tea.KeyUp, tea.KeyCtrlP:
		if p.cursor > 0 {
			p.cursor--
		}
		return nil
	case tea.KeyDown, tea.KeyCtrlN:
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
		return nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.filter()
	return cmd
}

func (p *jumpPalette) filter() {
	p.cursor = 0
	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		p.filtered = p.targets
		return
	}
	labels := make([]string, len(p.targets))
	for i, target := range p.targets {
		labels[i] = target.label
	}
	p.filtered = p.filtered[:0:0]
	for _, m := range fuzzy.Find(query, labels) {
		p.filtered = append(p.filtered, p.targets[m.Index])
	}
}

func (p *jumpPalette) View() string {
	t := p.theme
	lines := []string{
		t.Style().Bold(true).Foreground(t.Primary).Render("Jump to board"),
		"",
		p.input.View(),
		"",
	}
	if len(p.filtered) == 0 {
		lines = append(lines, t.Style().Foreground(t.Subtext).Italic(true).Render("  No matching boards"))
	}
	for i, target := range p.filtered {
		if i == p.cursor {
			lines = append(lines, t.Style().Bold(true).Foreground(t.Primary).Render("▸ "+target.label))
		} else {
			lines = append(lines, "  "+target.label)
		}
	}
	lines = append(lines, "", t.Style().Faint(true).Render("↑/↓ select · enter go · esc close"))
	return t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(52).
		Render(strings.Join(lines, "\n"))
}
