package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/workboard/wb/pkg/model"
	"github.com/workboard/wb/pkg/route"
)

// workspaceTab is one of the workspace page tabs
type workspaceTab int

const (
	tabContent workspaceTab = iota
	tabRecents
	tabPermissions
	workspaceTabCount
)

func (t workspaceTab) String() string {
	switch t {
	case tabRecents:
		return "Recents"
	case tabPermissions:
		return "Permissions"
	}
	return "Content"
}

// noDescription stands in for a board without a description
const noDescription = "No description"

// workspacePage lists a workspace's boards with a fuzzy name search
type workspacePage struct {
	ws    model.Workspace
	theme Theme
	keys  KeyMap

	tab       workspaceTab
	search    textinput.Model
	searching bool
	boards    []model.Board
	cursor    int

	width int
}

func newWorkspacePage(ws model.Workspace, theme Theme, keys KeyMap) *workspacePage {
	ti := textinput.New()
	ti.Placeholder = "Search boards..."
	ti.CharLimit = 64
	ti.Prompt = "/ "

	return &workspacePage{
		ws:     ws,
		theme:  theme,
		keys:   keys,
		search: ti,
		boards: ws.Boards,
	}
}

func (p *workspacePage) SetSize(width, _ int) {
	p.width = width
	p.search.Width = min(40, max(width-10, 10))
}

// Capturing reports whether keystrokes go to the search box
func (p *workspacePage) Capturing() bool {
	return p.searching
}

// Boards returns the boards passing the current search
func (p *workspacePage) Boards() []model.Board {
	return p.boards
}

func (p *workspacePage) Update(msg tea.KeyMsg) tea.Cmd {
	if p.searching {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			p.searching = false
			p.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.applySearch()
		return cmd
	}

	switch {
	case key.Matches(msg, p.keys.Search):
		p.searching = true
		return p.search.Focus()
	case key.Matches(msg, p.keys.NextTab):
		p.tab = (p.tab + 1) % workspaceTabCount
	case key.Matches(msg, p.keys.PrevView):
		p.tab = (p.tab + workspaceTabCount - 1) % workspaceTabCount
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(p.boards)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Open):
		if p.tab == tabContent && p.cursor < len(p.boards) {
			b := p.boards[p.cursor]
			return navigateCmd(route.ForBoard(p.ws.ID, b.ID))
		}
	}
	return nil
}

// applySearch narrows the board list by fuzzy-matching names. An empty
// query restores workspace order.
func (p *workspacePage) applySearch() {
	query := strings.TrimSpace(p.search.Value())
	p.cursor = 0
	if query == "" {
		p.boards = p.ws.Boards
		return
	}

	names := make([]string, len(p.ws.Boards))
	for i, b := range p.ws.Boards {
		names[i] = b.Name
	}
	matches := fuzzy.Find(query, names)
	p.boards = make([]model.Board, 0, len(matches))
	for _, m := range matches {
		p.boards = append(p.boards, p.ws.Boards[m.Index])
	}
}

func (p *workspacePage) View() string {
	t := p.theme
	muted := t.Style().Foreground(t.Subtext)

	var b strings.Builder
	b.WriteString(t.Style().Bold(true).Foreground(t.Primary).Render(p.ws.Name))
	b.WriteString("\n")
	if p.ws.Description != "" {
		b.WriteString(muted.Render(p.ws.Description))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(fmt.Sprintf("Created %s · Owner: %s · %d members",
		p.ws.CreatedDate, p.ws.Owner, len(p.ws.Members))))
	b.WriteString("\n\n")

	var tabs []string
	for tab := tabContent; tab < workspaceTabCount; tab++ {
		if tab == p.tab {
			tabs = append(tabs, t.Style().Bold(true).Underline(true).Foreground(t.Primary).Render(tab.String()))
		} else {
			tabs = append(tabs, muted.Render(tab.String()))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n")
	b.WriteString(RenderDivider(t, max(p.width-2, 10)))
	b.WriteString("\n")

	switch p.tab {
	case tabRecents:
		b.WriteString(muted.Render("No recent activity"))
		b.WriteString("\n")
	case tabPermissions:
		b.WriteString(p.viewPermissions())
	default:
		b.WriteString(p.viewContent())
	}
	return b.String()
}

func (p *workspacePage) viewContent() string {
	t := p.theme
	var b strings.Builder

	if p.searching || p.search.Value() != "" {
		b.WriteString(p.search.View())
		b.WriteString("\n\n")
	}

	const (
		nameW    = 28
		descW    = 34
		creatorW = 9
		dateW    = 14
	)
	header := "  " + cell("Name", nameW) + cell("Description", descW) + cell("Creator", creatorW) +
		cell("Created", dateW) + cell("Last modified", dateW)
	b.WriteString(t.Style().Bold(true).Foreground(t.Secondary).Render(header))
	b.WriteString("\n")

	if len(p.boards) == 0 {
		b.WriteString(t.Style().Foreground(t.Subtext).Italic(true).Render("  No boards match your search"))
		b.WriteString("\n")
	}
	for i, board := range p.boards {
		desc := board.Description
		if desc == "" {
			desc = noDescription
		}
		// Last modified repeats the workspace creation date.
		row := cell(board.Name, nameW) + cell(desc, descW) + cell(model.Initials(p.ws.Owner), creatorW) +
			cell(p.ws.CreatedDate, dateW) + cell(p.ws.CreatedDate, dateW)
		if i == p.cursor {
			b.WriteString(t.Style().Foreground(t.Primary).Bold(true).Render("▸ " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (p *workspacePage) viewPermissions() string {
	t := p.theme
	var b strings.Builder
	for _, member := range p.ws.Members {
		role := "Member"
		if member == p.ws.Owner {
			role = "Owner"
		}
		b.WriteString("  " + cell(member, 24) + t.Style().Foreground(t.Subtext).Render(role))
		b.WriteString("\n")
	}
	if len(p.ws.Members) == 0 {
		b.WriteString(t.Style().Foreground(t.Subtext).Render("  No members"))
		b.WriteString("\n")
	}
	return b.String()
}
