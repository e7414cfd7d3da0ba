package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/model"
	"github.com/workboard/wb/pkg/route"
)

// myBoardsLimit is how many boards the home page lists under My Boards
const myBoardsLimit = 3

// homeLink is one selectable entry of the home page
type homeLink struct {
	label string
	route route.Route
}

// homePage is the landing page: my boards, my workspaces, the feed and
// the tasks assigned today.
type homePage struct {
	store *loader.Store
	theme Theme
	keys  KeyMap

	boards     []model.Board
	workspaces []model.Workspace
	links      []homeLink
	cursor     int

	width int
}

func newHomePage(store *loader.Store, theme Theme, keys KeyMap) *homePage {
	p := &homePage{store: store, theme: theme, keys: keys}

	p.boards = store.Boards()
	if len(p.boards) > myBoardsLimit {
		p.boards = p.boards[:myBoardsLimit]
	}
	p.workspaces = store.Workspaces()

	for _, b := range p.boards {
		p.links = append(p.links, homeLink{label: b.Name, route: route.ForBoard(b.WorkspaceID, b.ID)})
	}
	for _, ws := range p.workspaces {
		p.links = append(p.links, homeLink{label: ws.Name, route: route.ForWorkspace(ws.ID)})
	}
	return p
}

func (p *homePage) SetSize(width, _ int) {
	p.width = width
}

// Selected returns the link under the cursor
func (p *homePage) Selected() (homeLink, bool) {
	if p.cursor < 0 || p.cursor >= len(p.links) {
		return homeLink{}, false
	}
	return p.links[p.cursor], true
}

func (p *homePage) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(p.links)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Open):
		if link, ok := p.Selected(); ok {
			return navigateCmd(link.route)
		}
	}
	return nil
}

func (p *homePage) View() string {
	t := p.theme
	title := t.Style().Bold(true).Foreground(t.Primary)
	section := t.Style().Bold(true).Foreground(t.Secondary)
	muted := t.Style().Foreground(t.Subtext)

	var b strings.Builder
	b.WriteString(title.Render("Welcome back"))
	b.WriteString("\n\n")

	idx := 0
	b.WriteString(section.Render("MY BOARDS"))
	b.WriteString("\n")
	for _, board := range p.boards {
		ws := p.workspaceName(board.WorkspaceID)
		b.WriteString(p.renderLink(idx, board.Name, ws))
		idx++
	}
	b.WriteString("\n")

	b.WriteString(section.Render("MY WORKSPACES"))
	b.WriteString("\n")
	for _, ws := range p.workspaces {
		b.WriteString(p.renderLink(idx, ws.Name, fmt.Sprintf("%d boards", len(ws.Boards))))
		idx++
	}
	b.WriteString("\n")

	feed := p.store.Feed()
	b.WriteString(section.Render(fmt.Sprintf("FEED (%d)", len(feed))))
	b.WriteString("\n")
	for _, item := range feed {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			t.Style().Foreground(t.Primary).Render(item.User),
			muted.Render("commented on"),
			t.Style().Bold(true).Render(item.WorkItemName)))
		b.WriteString(muted.Render(fmt.Sprintf("    %s · %s", item.BoardName, item.Date)))
		b.WriteString("\n")
		b.WriteString("    " + clip(item.Comment, max(p.width-6, 20)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tasks := p.store.AssignedToday()
	b.WriteString(section.Render("TASKS ASSIGNED TODAY"))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(muted.Render("  Nothing assigned today"))
		b.WriteString("\n")
	}
	for _, task := range tasks {
		line := fmt.Sprintf("  • %s", task.Title)
		meta := fmt.Sprintf("by %s · %s", task.AssignedBy, task.BoardName)
		if task.DueDate != "" {
			meta += " · due " + task.DueDate
		}
		b.WriteString(line + "  " + muted.Render(meta))
		b.WriteString("\n")
	}
	return b.String()
}

func (p *homePage) renderLink(idx int, label, meta string) string {
	t := p.theme
	prefix := "  "
	style := t.Base
	if idx == p.cursor {
		prefix = "▸ "
		style = t.Style().Foreground(t.Primary).Bold(true)
	}
	return prefix + style.Render(label) + "  " + t.Style().Foreground(t.Subtext).Render(meta) + "\n"
}

func (p *homePage) workspaceName(id string) string {
	for _, ws := range p.workspaces {
		if ws.ID == id {
			return ws.Name
		}
	}
	return id
}
