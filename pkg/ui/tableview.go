package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/model"
)

// tableLineKind distinguishes the selectable lines of the table view
type tableLineKind int

const (
	lineGroup tableLineKind = iota
	lineRow
	lineAddItem
)

// tableLine is one selectable line: a group header, an item row or the
// "Add item" affordance closing a group.
type tableLine struct {
	kind    tableLineKind
	section int
	row     board.Row
}

// buildTableLines lays out the visible lines of a table layout in order
func buildTableLines(l board.TableLayout) []tableLine {
	var lines []tableLine
	for i, s := range l.Sections {
		lines = append(lines, tableLine{kind: lineGroup, section: i})
		if s.Collapsed {
			continue
		}
		for _, r := range s.Rows {
			lines = append(lines, tableLine{kind: lineRow, section: i, row: r})
		}
		lines = append(lines, tableLine{kind: lineAddItem, section: i})
	}
	return lines
}

// tableWidths are the cell widths of the optional and fixed columns
var tableWidths = map[board.TableColumn]int{
	board.ColItem:     38,
	board.ColPerson:   12,
	board.ColEmployee: 18,
	board.ColType:     9,
	board.ColTags:     20,
	board.ColStatus:   11,
	board.ColDueDate:  12,
	board.ColComments: 9,
}

// tableView is the grouped table. It owns only its cursor; expansion and
// collapse belong to the board page.
type tableView struct {
	theme Theme
	keys  KeyMap
	log   zerolog.Logger

	cursor int
	offset int
	height int
}

func newTableView(theme Theme, keys KeyMap, log zerolog.Logger) tableView {
	return tableView{theme: theme, keys: keys, log: log}
}

// current returns the line under the cursor
func (v *tableView) current(lines []tableLine) (tableLine, bool) {
	if v.cursor < 0 || v.cursor >= len(lines) {
		return tableLine{}, false
	}
	return lines[v.cursor], true
}

// focusItem moves the cursor to the row showing id
func (v *tableView) focusItem(lines []tableLine, id string) bool {
	for i, l := range lines {
		if l.kind == lineRow && l.row.Item.ID == id {
			v.cursor = i
			v.scrollTo(i)
			return true
		}
	}
	return false
}

func (v *tableView) Update(msg tea.KeyMsg, layout board.TableLayout, state board.State, selected map[string]bool) tea.Cmd {
	lines := buildTableLines(layout)
	line, ok := v.current(lines)

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(lines)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Toggle), key.Matches(msg, v.keys.Right):
		if !ok {
			break
		}
		switch line.kind {
		case lineGroup:
			if key.Matches(msg, v.keys.Toggle) {
				state.Collapse.Toggle(layout.Sections[line.section].Group.ID)
			}
		case lineRow:
			if line.row.HasChildren && (key.Matches(msg, v.keys.Toggle) || !line.row.Expanded) {
				state.Expansion.Toggle(line.row.Item.ID)
			}
		}
	case key.Matches(msg, v.keys.Left):
		if ok && line.kind == lineRow && line.row.Expanded {
			state.Expansion.Toggle(line.row.Item.ID)
		}
	case key.Matches(msg, v.keys.CollapseGroup):
		if ok {
			state.Collapse.Toggle(layout.Sections[line.section].Group.ID)
			// The cursor lands on the header of the group it was in.
			v.cursor = v.headerIndex(lines, line.section)
		}
	case key.Matches(msg, v.keys.Select):
		if ok && line.kind == lineRow {
			id := line.row.Item.ID
			selected[id] = !selected[id]
		}
	case key.Matches(msg, v.keys.AddItem):
		if ok {
			v.logAddItem(layout.Sections[line.section].Group)
		}
	case key.Matches(msg, v.keys.Open):
		if !ok {
			break
		}
		switch line.kind {
		case lineRow:
			return openDetailCmd(line.row.Item)
		case lineGroup:
			state.Collapse.Toggle(layout.Sections[line.section].Group.ID)
		case lineAddItem:
			v.logAddItem(layout.Sections[line.section].Group)
		}
	}

	return nil
}

// clamp keeps the cursor on one of n lines after the layout changed
func (v *tableView) clamp(n int) {
	if v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
	v.scrollTo(v.cursor)
}

func (v *tableView) headerIndex(lines []tableLine, section int) int {
	for i, l := range lines {
		if l.kind == lineGroup && l.section == section {
			return i
		}
	}
	return 0
}

func (v *tableView) logAddItem(g model.Group) {
	v.log.Info().Str("group", g.ID).Msg("add item")
}

func (v *tableView) setHeight(h int) {
	v.height = h
	v.scrollTo(v.cursor)
}

func (v *tableView) scrollTo(i int) {
	if v.height <= 0 {
		return
	}
	if i < v.offset {
		v.offset = i
	}
	if i >= v.offset+v.height {
		v.offset = i - v.height + 1
	}
}

// View renders the table. Without a height every line is shown.
func (v *tableView) View(layout board.TableLayout, selected map[string]bool, focused bool) string {
	t := v.theme
	lines := buildTableLines(layout)

	var rendered []string
	rendered = append(rendered, v.headerLine(layout.Columns))
	for i, l := range lines {
		cursor := focused && i == v.cursor
		switch l.kind {
		case lineGroup:
			rendered = append(rendered, v.groupLine(layout.Sections[l.section], cursor))
		case lineRow:
			rendered = append(rendered, v.rowLine(layout.Columns, l.row, selected[l.row.Item.ID], cursor))
		case lineAddItem:
			marker := "    "
			style := t.Style().Foreground(t.Subtext)
			if cursor {
				marker = "  ▸ "
				style = style.Foreground(t.Primary)
			}
			rendered = append(rendered, marker+style.Render("+ Add item"))
		}
	}

	if v.height > 0 && len(rendered)-1 > v.height {
		start := min(v.offset, len(rendered)-1-v.height)
		body := rendered[1+start : 1+start+v.height]
		rendered = append([]string{rendered[0]}, body...)
	}
	return strings.Join(rendered, "\n")
}

func (v *tableView) headerLine(cols []board.TableColumn) string {
	var b strings.Builder
	b.WriteString("  ")
	for _, c := range cols {
		b.WriteString(cell(c.String(), tableWidths[c]))
	}
	return v.theme.Style().Bold(true).Foreground(v.theme.Secondary).Render(b.String())
}

func (v *tableView) groupLine(s board.GroupSection, cursor bool) string {
	t := v.theme
	accent := t.GroupColor(s.Index)

	arrow := "▾"
	if s.Collapsed {
		arrow = "▸"
	}
	prefix := "  "
	if cursor {
		prefix = "▸ "
	}
	name := t.Style().Bold(true).Foreground(accent).Render(arrow + " " + s.Group.Name)
	count := t.Style().Foreground(t.Subtext).Render(fmt.Sprintf("(%d)", len(s.Group.WorkItems)))
	bar := t.Style().Foreground(accent).Render("┃")
	return prefix + bar + " " + name + " " + count
}

func (v *tableView) rowLine(cols []board.TableColumn, r board.Row, checked, cursor bool) string {
	t := v.theme
	item := r.Item

	var b strings.Builder
	if cursor {
		b.WriteString(t.Style().Foreground(t.Primary).Render("▸ "))
	} else {
		b.WriteString("  ")
	}

	for _, c := range cols {
		w := tableWidths[c]
		switch c {
		case board.ColItem:
			b.WriteString(pad(v.itemCell(r, checked, cursor), w))
		case board.ColPerson:
			b.WriteString(pad(RenderInitials(t, item.AssignedTo, 3), w))
		case board.ColEmployee:
			b.WriteString(cell(item.EmployeeName, w))
		case board.ColType:
			b.WriteString(pad(RenderTypeBadge(t, item.Type), w))
		case board.ColTags:
			b.WriteString(pad(RenderTags(t, item.Tags), w))
		case board.ColStatus:
			b.WriteString(pad(t.Style().Foreground(t.StatusColor(item.Status)).Render(string(item.Status)), w))
		case board.ColDueDate:
			due := item.DueDate
			if due == "" {
				due = "-"
			}
			b.WriteString(cell(due, w))
		case board.ColComments:
			b.WriteString(cell("💬 "+strconv.Itoa(item.CommentsCount), w))
		}
	}
	return b.String()
}

func (v *tableView) itemCell(r board.Row, checked, cursor bool) string {
	t := v.theme

	indent := strings.Repeat("  ", r.Depth)
	control := "  "
	if r.HasChildren {
		if r.Expanded {
			control = "▾ "
		} else {
			control = "▸ "
		}
	}
	box := "☐ "
	if checked {
		box = "☑ "
	}

	title := t.Base.Render(r.Item.Title)
	if cursor {
		title = t.Style().Foreground(t.Primary).Bold(true).Render(r.Item.Title)
	}
	out := indent + control + box + title
	if r.HasChildren {
		out += " " + t.Style().Foreground(t.Primary).Render(fmt.Sprintf("[%d]", r.ChildCount))
	}
	return out
}
