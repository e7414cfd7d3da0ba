package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/workboard/wb/pkg/analysis"
	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/filter"
	"github.com/workboard/wb/pkg/model"
	"github.com/workboard/wb/pkg/route"
)

// boardHeaderLines is the height of the board header and view tabs
const boardHeaderLines = 6

// boardPage shows one board through the view selector. Expansion, group
// collapse and the work item filters live here, above the view switch, so
// changing views keeps them.
type boardPage struct {
	ws    model.Workspace
	board model.Board
	vis   board.Visibility
	theme Theme
	keys  KeyMap
	log   zerolog.Logger

	selector board.Selector
	state    board.State
	selected map[string]bool

	table  tableView
	kanban kanbanView
	items  workItemsView

	search      textinput.Model
	searching   bool
	showMembers bool
	showStats   bool

	width, height int
}

func newBoardPage(src filter.Source, page route.Page, view board.ViewKind, set filter.ResultSet, theme Theme, keys KeyMap, log zerolog.Logger) *boardPage {
	engine := filter.NewEngine(src)
	if set != "" {
		engine.Select(set)
	}

	ti := textinput.New()
	ti.Placeholder = "Search items..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	log = log.With().Str("board", page.Board.ID).Logger()
	return &boardPage{
		ws:       page.Workspace,
		board:    page.Board,
		vis:      page.Visibility,
		theme:    theme,
		keys:     keys,
		log:      log,
		selector: board.NewSelector(view),
		state: board.State{
			Expansion: board.Expansion{},
			Collapse:  board.Collapse{},
			Filter:    engine,
		},
		selected: map[string]bool{},
		table:    newTableView(theme, keys, log),
		kanban:   newKanbanView(theme, keys),
		items:    newWorkItemsView(theme, keys, engine),
		search:   ti,
	}
}

func (p *boardPage) SetSize(width, height int) {
	p.width, p.height = width, height
	p.search.Width = min(40, max(width-10, 10))
	p.table.setHeight(max(height-boardHeaderLines-1, 3))
}

// Current returns the selected view kind
func (p *boardPage) Current() board.ViewKind {
	return p.selector.Current()
}

// Layout renders the selected view's layout from the page state
func (p *boardPage) Layout() board.Layout {
	return board.Render(p.selector.Current(), p.board, p.vis, p.state)
}

// Capturing reports whether keystrokes go to a text input
func (p *boardPage) Capturing() bool {
	return p.searching || (p.selector.Current() == board.ViewWorkItems && p.items.Capturing())
}

// Overlaid reports whether a board-level panel has focus
func (p *boardPage) Overlaid() bool {
	return p.showStats
}

func (p *boardPage) switchView(v board.ViewKind) {
	if p.selector.Current() == board.ViewKanban && v != board.ViewKanban {
		p.kanban.reset()
	}
	p.selector.Select(v)
}

func (p *boardPage) Update(msg tea.KeyMsg) tea.Cmd {
	if p.searching {
		return p.updateSearch(msg)
	}
	if p.showStats {
		if key.Matches(msg, p.keys.Stats) || key.Matches(msg, p.keys.Back) {
			p.showStats = false
		}
		return nil
	}

	if p.selector.Current() == board.ViewWorkItems && p.items.Capturing() {
		cmd, _ := p.items.Update(msg, p.state.Filter)
		return cmd
	}

	switch {
	case key.Matches(msg, p.keys.NextView):
		next := p.selector
		next.Next()
		p.switchView(next.Current())
		return nil
	case key.Matches(msg, p.keys.PrevView):
		prev := p.selector
		prev.Prev()
		p.switchView(prev.Current())
		return nil
	case key.Matches(msg, p.keys.ViewTable):
		p.switchView(board.ViewTable)
		return nil
	case key.Matches(msg, p.keys.ViewKanban):
		p.switchView(board.ViewKanban)
		return nil
	case key.Matches(msg, p.keys.ViewWorkItems):
		p.switchView(board.ViewWorkItems)
		return nil
	case key.Matches(msg, p.keys.Members):
		p.showMembers = !p.showMembers
		return nil
	case key.Matches(msg, p.keys.Stats):
		p.showStats = true
		return nil
	case key.Matches(msg, p.keys.Search) && p.selector.Current() != board.ViewWorkItems:
		p.searching = true
		p.search.SetValue("")
		return p.search.Focus()
	}

	switch l := p.Layout().(type) {
	case board.TableLayout:
		cmd := p.table.Update(msg, l, p.state, p.selected)
		p.table.clamp(len(buildTableLines(p.Layout().(board.TableLayout))))
		return cmd
	case board.KanbanLayout:
		cmd, _ := p.kanban.Update(msg, l)
		return cmd
	case board.WorkItemsLayout:
		cmd, _ := p.items.Update(msg, p.state.Filter)
		return cmd
	}
	return nil
}

func (p *boardPage) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		p.searching = false
		p.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	p.jumpToMatch(strings.TrimSpace(p.search.Value()))
	return cmd
}

// jumpToMatch moves the cursor to the visible item best matching query
func (p *boardPage) jumpToMatch(query string) (string, bool) {
	if query == "" {
		return "", false
	}

	var candidates []model.WorkItem
	layout := p.Layout()
	switch l := layout.(type) {
	case board.TableLayout:
		for _, line := range buildTableLines(l) {
			if line.kind == lineRow {
				candidates = append(candidates, line.row.Item)
			}
		}
	case board.KanbanLayout:
		for _, b := range l.Buckets {
			candidates = append(candidates, b.Items...)
		}
	}

	haystack := make([]string, len(candidates))
	for i, item := range candidates {
		haystack[i] = item.ID + " " + item.Title
	}
	matches := fuzzy.Find(query, haystack)
	if len(matches) == 0 {
		return "", false
	}
	id := candidates[matches[0].Index].ID

	switch l := layout.(type) {
	case board.TableLayout:
		p.table.focusItem(buildTableLines(l), id)
	case board.KanbanLayout:
		p.kanban.focusItem(l, id)
	}
	return id, true
}

// Stats computes the statistics shown by the stats panel
func (p *boardPage) Stats() analysis.BoardStats {
	return analysis.ComputeBoardStats(p.board)
}

func (p *boardPage) View() string {
	return p.render(true)
}

// render draws the page; an unfocused render has no cursor highlights
func (p *boardPage) render(focused bool) string {
	var b strings.Builder
	b.WriteString(p.viewHeader())
	b.WriteString("\n")

	if p.showStats {
		b.WriteString(renderStatsPanel(p.Stats(), p.board.Name, p.width, p.theme))
		return b.String()
	}

	switch l := p.Layout().(type) {
	case board.TableLayout:
		b.WriteString(p.table.View(l, p.selected, focused))
	case board.KanbanLayout:
		b.WriteString(p.kanban.View(l, p.width, focused))
	case board.WorkItemsLayout:
		b.WriteString(p.items.View(l, focused))
	}
	return b.String()
}

func (p *boardPage) viewHeader() string {
	t := p.theme
	muted := t.Style().Foreground(t.Subtext)

	var b strings.Builder
	b.WriteString(t.Style().Bold(true).Foreground(t.Primary).Render(p.board.Name))
	b.WriteString("  ")
	b.WriteString(muted.Render(p.ws.Name))
	if p.board.Description != "" {
		b.WriteString("\n")
		b.WriteString(muted.Render(p.board.Description))
	}
	b.WriteString("\n")

	if p.showMembers {
		b.WriteString(muted.Render(fmt.Sprintf("Members (%d): ", len(p.ws.Members))))
		b.WriteString(strings.Join(p.ws.Members, ", "))
		b.WriteString("\n")
	}
	if p.searching || p.search.Value() != "" {
		b.WriteString(p.search.View())
		b.WriteString("\n")
	}

	var tabs []string
	for _, v := range board.ViewKinds() {
		label := fmt.Sprintf("%d %s", int(v)+1, v.Title())
		if v == p.selector.Current() {
			tabs = append(tabs, t.Style().Bold(true).Foreground(t.Primary).Underline(true).Render(label))
		} else {
			tabs = append(tabs, muted.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n")
	b.WriteString(RenderDivider(t, max(p.width-2, 10)))
	return b.String()
}
