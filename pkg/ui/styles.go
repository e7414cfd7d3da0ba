package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/workboard/wb/pkg/model"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS
// ══════════════════════════════════════════════════════════════════════════════

// Layout breakpoints and box limits
const (
	// BreakpointNarrow is the width below which the sidebar is hidden.
	BreakpointNarrow = 80

	// MinBoxWidth is the minimum width for bordered content boxes.
	MinBoxWidth = 20

	// KanbanColumnWidth is the width of one kanban column including its border.
	KanbanColumnWidth = 28

	// SidebarWidth is the width of the workspace sidebar.
	SidebarWidth = 26
)

// ══════════════════════════════════════════════════════════════════════════════
// BADGES
// ══════════════════════════════════════════════════════════════════════════════

// RenderStatusBadge renders the status label on its status color. Grid
// views use the filter label (done reads "Resolved").
func RenderStatusBadge(t Theme, status model.Status) string {
	return t.Style().
		Foreground(t.StatusColor(status)).
		Bold(status == model.StatusStuck).
		Render(status.Label())
}

// RenderTypeBadge renders a work item type marker, or nothing when unset
func RenderTypeBadge(t Theme, tp model.WorkItemType) string {
	if tp == "" {
		return ""
	}
	return t.Style().Foreground(t.TypeColor(tp)).Render(string(tp))
}

// RenderInitials renders up to max assignee initials as chips, with a
// "+n" overflow marker.
func RenderInitials(t Theme, names []string, max int) string {
	if len(names) == 0 {
		return t.Style().Foreground(t.Subtext).Render("-")
	}
	chip := t.Style().Foreground(t.Primary).Bold(true)

	var parts []string
	for i, name := range names {
		if max > 0 && i == max {
			parts = append(parts, t.Style().Foreground(t.Subtext).Render(fmt.Sprintf("+%d", len(names)-max)))
			break
		}
		parts = append(parts, chip.Render(model.Initials(name)))
	}
	return strings.Join(parts, " ")
}

// RenderTags renders tags as "#tag" tokens
func RenderTags(t Theme, tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	style := t.Style().Foreground(t.Secondary)
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = style.Render("#" + tag)
	}
	return strings.Join(out, " ")
}

// ══════════════════════════════════════════════════════════════════════════════
// METRIC VISUALIZATION
// ══════════════════════════════════════════════════════════════════════════════

// RenderMiniBar renders a horizontal bar for a value between 0 and 1
func RenderMiniBar(value float64, width int, color lipgloss.TerminalColor, t Theme) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value * float64(width))
	if value > 0 && filled == 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return t.Style().Foreground(color).Render(bar)
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND CELLS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(t Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Style().Foreground(t.Border).Render(strings.Repeat("─", width))
}

// cell fits plain text into exactly width terminal cells
func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// clip shortens styled text to width cells without breaking escape codes
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// pad fills styled text with spaces up to width cells
func pad(s string, width int) string {
	s = clip(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
