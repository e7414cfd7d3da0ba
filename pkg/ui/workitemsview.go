package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/filter"
	"github.com/workboard/wb/pkg/model"
)

// activityLayout is how activity timestamps appear in the grid
const activityLayout = "1/2/2006, 3:04 PM"

// unassignedCreator stands in for an item without a creator
const unassignedCreator = "Unassigned"

// workItemsCell is the width of each grid column, in grid order
var workItemsCell = struct {
	id, title, assigned, state, tags, activity, creator, comments int
}{id: 9, title: 40, assigned: 22, state: 11, tags: 24, activity: 20, creator: 18, comments: 9}

// gridCell fits s into a grid column, keeping the column's last cell as
// a gutter so full values never run into the next column.
func gridCell(s string, width int) string {
	return cell(s, width-1) + " "
}

// gridPad is gridCell for styled text
func gridPad(s string, width int) string {
	return pad(s, width-1) + " "
}

// workItemsView is the filterable grid. Predicate text lives in the
// engine owned by the board page; the view owns the input widgets.
type workItemsView struct {
	theme Theme
	keys  KeyMap

	inputs  []textinput.Model
	focus   int
	editing bool
	cursor  int
}

func newWorkItemsView(theme Theme, keys KeyMap, engine *filter.Engine) workItemsView {
	v := workItemsView{theme: theme, keys: keys}
	for _, col := range filter.Columns() {
		ti := textinput.New()
		ti.Placeholder = col.String()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 12
		ti.SetValue(engine.Text(col))
		v.inputs = append(v.inputs, ti)
	}
	return v
}

// Capturing reports whether keystrokes go to a filter input
func (v *workItemsView) Capturing() bool {
	return v.editing
}

// Update handles a key and reports whether the view consumed it
func (v *workItemsView) Update(msg tea.KeyMsg, engine *filter.Engine) (tea.Cmd, bool) {
	if v.editing {
		return v.updateEditing(msg, engine), true
	}

	res := engine.Results()
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(res.Items)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Open):
		if v.cursor < len(res.Items) {
			return openDetailCmd(res.Items[v.cursor]), true
		}
	case key.Matches(msg, v.keys.NextSet):
		engine.Select(engine.Selected().Next())
		v.cursor = 0
	case key.Matches(msg, v.keys.PrevSet):
		engine.Select(engine.Selected().Prev())
		v.cursor = 0
	case key.Matches(msg, v.keys.Filter), key.Matches(msg, v.keys.Search):
		v.editing = true
		return v.inputs[v.focus].Focus(), true
	case key.Matches(msg, v.keys.ClearAll):
		v.clearAll(engine)
	default:
		return nil, false
	}
	return nil, true
}

func (v *workItemsView) updateEditing(msg tea.KeyMsg, engine *filter.Engine) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc, msg.Type == tea.KeyEnter:
		v.inputs[v.focus].Blur()
		v.editing = false
		return nil
	case msg.Type == tea.KeyTab:
		return v.moveFocus(1)
	case msg.Type == tea.KeyShiftTab:
		return v.moveFocus(-1)
	case key.Matches(msg, v.keys.ClearCol):
		v.inputs[v.focus].SetValue("")
		engine.Clear(filter.Columns()[v.focus])
		v.cursor = 0
		return nil
	case key.Matches(msg, v.keys.ClearAll):
		v.clearAll(engine)
		return nil
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	engine.Set(filter.Columns()[v.focus], v.inputs[v.focus].Value())
	v.cursor = 0
	return cmd
}

func (v *workItemsView) moveFocus(delta int) tea.Cmd {
	v.inputs[v.focus].Blur()
	n := len(v.inputs)
	v.focus = (v.focus + delta + n) % n
	return v.inputs[v.focus].Focus()
}

func (v *workItemsView) clearAll(engine *filter.Engine) {
	engine.ClearAll()
	for i := range v.inputs {
		v.inputs[i].SetValue("")
	}
	v.cursor = 0
}

// Selected returns the result row under the cursor
func (v *workItemsView) Selected(engine *filter.Engine) (model.WorkItem, bool) {
	res := engine.Results()
	if v.cursor < 0 || v.cursor >= len(res.Items) {
		return model.WorkItem{}, false
	}
	return res.Items[v.cursor], true
}

func (v *workItemsView) View(layout board.WorkItemsLayout, focused bool) string {
	t := v.theme
	muted := t.Style().Foreground(t.Subtext)
	w := workItemsCell

	var b strings.Builder

	// Result set menu
	var sets []string
	for _, rs := range filter.ResultSets() {
		if rs == layout.Result.Set {
			sets = append(sets, t.Style().Bold(true).Underline(true).Foreground(t.Primary).Render(rs.Label()))
		} else {
			sets = append(sets, muted.Render(rs.Label()))
		}
	}
	b.WriteString(strings.Join(sets, " · "))
	b.WriteString("\n\n")

	header := "  " + gridCell("ID", w.id) + gridCell("Title", w.title) + gridCell("Assigned To", w.assigned) +
		gridCell("State", w.state) + gridCell("Tags", w.tags) + gridCell("Activity Date", w.activity) +
		gridCell("Created By", w.creator) + gridCell("Comments", w.comments)
	b.WriteString(t.Style().Bold(true).Foreground(t.Secondary).Render(header))
	b.WriteString("\n")

	// Filter row, one input per filterable column
	widths := []int{w.id, w.title, w.assigned, w.state, w.tags, w.creator}
	var filters []string
	for i, in := range v.inputs {
		if i == len(widths)-1 {
			// Created By sits after Activity Date, which has no filter
			filters = append(filters, gridCell("", w.activity))
		}
		view := in.View()
		if !v.editing && in.Value() == "" {
			view = muted.Render("⌕ " + in.Placeholder)
		}
		filters = append(filters, gridPad(view, widths[i]))
	}
	b.WriteString("  " + strings.Join(filters, ""))
	b.WriteString("\n")
	if layout.HasActive {
		b.WriteString("  " + t.Style().Foreground(t.Warning).Render("✕ Clear all filters (ctrl+x)"))
		b.WriteString("\n")
	}
	b.WriteString(RenderDivider(t, 2+w.id+w.title+w.assigned+w.state+w.tags+w.activity+w.creator+w.comments))
	b.WriteString("\n")

	if layout.Result.Empty {
		b.WriteString("  " + muted.Italic(true).Render(filter.EmptyStateMessage))
		b.WriteString("\n")
		return b.String()
	}
	for i, item := range layout.Result.Items {
		selected := focused && !v.editing && i == v.cursor
		b.WriteString(v.renderRow(item, selected))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *workItemsView) renderRow(item model.WorkItem, selected bool) string {
	t := v.theme
	w := workItemsCell

	title := item.Title
	if item.Type != "" {
		title = typeMarker(item.Type) + " " + title
	}
	assigned := "-"
	if len(item.AssignedTo) > 0 {
		first := item.AssignedTo[0]
		assigned = model.Initials(first) + " " + first
	}
	creator := item.CreatedBy
	if creator == "" {
		creator = unassignedCreator
	}

	prefix := "  "
	titleCell := gridCell(title, w.title)
	if selected {
		prefix = t.Style().Foreground(t.Primary).Render("▸ ")
		titleCell = t.Style().Foreground(t.Primary).Bold(true).Render(titleCell)
	}

	return prefix +
		gridCell(item.ID, w.id) +
		titleCell +
		gridCell(assigned, w.assigned) +
		gridPad(RenderStatusBadge(t, item.Status), w.state) +
		gridPad(RenderTags(t, item.Tags), w.tags) +
		gridCell(formatActivity(item.ActivityDate), w.activity) +
		gridCell(creator, w.creator) +
		gridCell(strconv.Itoa(item.CommentsCount), w.comments)
}

// formatActivity renders an RFC 3339 timestamp in the grid's short form.
// Timestamps are shown in UTC so output does not depend on the host zone.
func formatActivity(s string) string {
	if s == "" {
		return "-"
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return ts.UTC().Format(activityLayout)
}

// typeMarker is the one-glyph prefix of a type in the grid
func typeMarker(tp model.WorkItemType) string {
	switch tp {
	case model.TypeBug:
		return "🐞"
	case model.TypeFeature:
		return "✨"
	case model.TypeEpic:
		return "👑"
	}
	return "☑"
}
