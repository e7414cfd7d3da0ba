package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/model"
)

// kanbanView is the five-column status board. The held card is visual
// state only: dropping it never changes the item's status.
type kanbanView struct {
	theme Theme
	keys  KeyMap

	col  int
	rows []int // selected row per column
	drag board.Drag
}

func newKanbanView(theme Theme, keys KeyMap) kanbanView {
	return kanbanView{theme: theme, keys: keys, rows: make([]int, len(model.Statuses()))}
}

// Selected returns the card under the cursor
func (v *kanbanView) Selected(layout board.KanbanLayout) (model.WorkItem, bool) {
	if v.col < 0 || v.col >= len(layout.Buckets) {
		return model.WorkItem{}, false
	}
	items := layout.Buckets[v.col].Items
	r := v.rows[v.col]
	if r < 0 || r >= len(items) {
		return model.WorkItem{}, false
	}
	return items[r], true
}

// focusItem moves the cursor to the card showing id
func (v *kanbanView) focusItem(layout board.KanbanLayout, id string) bool {
	for c, b := range layout.Buckets {
		for r, item := range b.Items {
			if item.ID == id {
				v.col, v.rows[c] = c, r
				return true
			}
		}
	}
	return false
}

// Update handles a key and reports whether the view consumed it
func (v *kanbanView) Update(msg tea.KeyMsg, layout board.KanbanLayout) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, v.keys.Left):
		if v.col > 0 {
			v.col--
		}
	case key.Matches(msg, v.keys.Right):
		if v.col < len(layout.Buckets)-1 {
			v.col++
		}
	case key.Matches(msg, v.keys.Up):
		if v.rows[v.col] > 0 {
			v.rows[v.col]--
		}
	case key.Matches(msg, v.keys.Down):
		if v.rows[v.col] < len(layout.Buckets[v.col].Items)-1 {
			v.rows[v.col]++
		}
	case key.Matches(msg, v.keys.Drag):
		item, ok := v.Selected(layout)
		switch {
		case v.drag.Active():
			v.drag.End()
		case ok:
			v.drag.Start(item.ID)
		}
	case key.Matches(msg, v.keys.Back):
		if !v.drag.Active() {
			return nil, false
		}
		v.drag.End()
	case key.Matches(msg, v.keys.Open):
		if item, ok := v.Selected(layout); ok {
			return openDetailCmd(item), true
		}
	default:
		return nil, false
	}
	return nil, true
}

// reset drops the held card; called when the kanban is torn down
func (v *kanbanView) reset() {
	v.drag.End()
}

func (v *kanbanView) View(layout board.KanbanLayout, width int, focused bool) string {
	visible := len(layout.Buckets)
	if width > 0 {
		visible = max(1, min(visible, width/KanbanColumnWidth))
	}
	first := 0
	if v.col >= visible {
		first = v.col - visible + 1
	}

	var cols []string
	for i := first; i < first+visible && i < len(layout.Buckets); i++ {
		cols = append(cols, v.renderColumn(layout, i, focused))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if first > 0 || first+visible < len(layout.Buckets) {
		out += "\n" + v.theme.Style().Foreground(v.theme.Subtext).Render(
			fmt.Sprintf("columns %d-%d of %d", first+1, first+visible, len(layout.Buckets)))
	}
	if id := v.drag.ItemID(); id != "" {
		out += "\n" + v.theme.Style().Foreground(v.theme.Warning).Render(
			fmt.Sprintf("holding %s · m or esc to drop", id))
	}
	return out
}

func (v *kanbanView) renderColumn(layout board.KanbanLayout, idx int, focused bool) string {
	t := v.theme
	bucket := layout.Buckets[idx]
	inner := KanbanColumnWidth - 4

	header := t.Style().Bold(true).Foreground(t.StatusColor(bucket.Status)).
		Render(fmt.Sprintf("%s (%d)", bucket.Title(), len(bucket.Items)))

	parts := []string{header, ""}
	if len(bucket.Items) == 0 {
		parts = append(parts, t.Style().Foreground(t.Subtext).Italic(true).Render("No items"))
	}
	for r, item := range bucket.Items {
		selected := focused && idx == v.col && r == v.rows[idx]
		parts = append(parts, v.renderCard(item, layout.Visibility, inner, selected))
	}

	border := t.Border
	if focused && idx == v.col {
		border = t.Primary
	}
	return t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(KanbanColumnWidth-2).
		Padding(0, 1).
		Render(strings.Join(parts, "\n"))
}

func (v *kanbanView) renderCard(item model.WorkItem, vis board.Visibility, width int, selected bool) string {
	t := v.theme
	muted := t.Style().Foreground(t.Subtext)

	titleStyle := t.Base.Bold(true)
	if selected {
		titleStyle = t.Style().Bold(true).Foreground(t.Primary)
	}
	lines := []string{titleStyle.Render(wordwrap.String(item.Title, width))}

	meta := muted.Render(item.ID)
	if vis.Type && item.Type != "" {
		meta += " " + RenderTypeBadge(t, item.Type)
	}
	lines = append(lines, meta)

	if vis.Tags && len(item.Tags) > 0 {
		lines = append(lines, clip(RenderTags(t, item.Tags), width))
	}
	if vis.EmployeeName && item.EmployeeName != "" {
		lines = append(lines, muted.Render("👤 "+item.EmployeeName))
	}
	if vis.DueDate && item.DueDate != "" {
		lines = append(lines, muted.Render("📅 "+item.DueDate))
	}

	footer := RenderInitials(t, item.AssignedTo, 3) + "  " + muted.Render(fmt.Sprintf("💬 %d", item.CommentsCount))
	if item.HasChildren() {
		footer += "  " + t.Style().Foreground(t.Primary).Render(fmt.Sprintf("⧉ %d", len(item.Children)))
	}
	lines = append(lines, footer)

	card := t.Style().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.StatusColor(item.Status)).
		PaddingLeft(1).
		MarginBottom(1).
		Width(width)
	if v.drag.Holding(item.ID) {
		card = card.Faint(true)
		lines = append(lines, muted.Italic(true).Render("holding… (m to drop)"))
	}
	if selected {
		card = card.BorderForeground(t.Primary)
	}
	return card.Render(strings.Join(lines, "\n"))
}
