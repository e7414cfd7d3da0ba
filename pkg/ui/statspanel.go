package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/workboard/wb/pkg/analysis"
	"github.com/workboard/wb/pkg/model"
)

// statsPanelPadding is subtracted from the panel width for the header box
const statsPanelPadding = 4

// statsTopTags is how many tags the panel lists
const statsTopTags = 5

const statsTopPairs = 3

// RenderStatsHeaderBox renders the double-lined title box of the stats panel
func RenderStatsHeaderBox(title, typeLabel string, width int, theme Theme, color lipgloss.TerminalColor) []string {
	headerStyle := theme.Style().Bold(true).Foreground(color)

	boxWidth := max(width-statsPanelPadding, MinBoxWidth)
	content := cell(typeLabel+" "+title, boxWidth-4)

	return []string{
		headerStyle.Render("╔" + strings.Repeat("═", boxWidth-2) + "╗"),
		headerStyle.Render("║ " + content + " ║"),
		headerStyle.Render("╚" + strings.Repeat("═", boxWidth-2) + "╝"),
	}
}

// RenderStatusBars renders one mini bar per status in kanban order
func RenderStatusBars(stats analysis.BoardStats, theme Theme) []string {
	total := max(stats.TopLevel, 1)

	var lines []string
	for _, sc := range stats.ByStatus {
		color := theme.StatusColor(sc.Status)
		bar := RenderMiniBar(float64(sc.Count)/float64(total), 10, color, theme)
		dot := theme.Style().Foreground(color).Render("●")
		lines = append(lines, fmt.Sprintf("   %s %s %2d %s", dot, cell(sc.Status.ColumnTitle()+":", 15), sc.Count, bar))
	}
	return lines
}

// renderStatsPanel is the board statistics overlay
func renderStatsPanel(stats analysis.BoardStats, boardName string, width int, t Theme) string {
	section := t.Style().Bold(true).Foreground(t.Secondary)
	muted := t.Style().Foreground(t.Subtext)

	lines := RenderStatsHeaderBox(boardName, "BOARD:", width, t, t.Primary)
	lines = append(lines, "",
		muted.Render(fmt.Sprintf("   %d items, %d including sub-items · %.0f%% closed",
			stats.TopLevel, stats.AllItems, stats.Completion*100)),
		muted.Render(fmt.Sprintf("   %d done · %d cancelled",
			stats.StatusCount(model.StatusDone), stats.StatusCount(model.StatusCancelled))),
		"",
		section.Render("STATUS"))
	lines = append(lines, RenderStatusBars(stats, t)...)

	lines = append(lines, "", section.Render("GROUPS"))
	for i, g := range stats.Groups {
		name := t.Style().Foreground(t.GroupColor(i)).Render(cell(g.Name, 18))
		lines = append(lines, fmt.Sprintf("   %s %d/%d closed", name, g.Closed, g.Items))
	}

	lines = append(lines, "", section.Render("TAGS"))
	if len(stats.Tags.TopTags) == 0 {
		lines = append(lines, muted.Render("   No tags"))
	}
	for i, tag := range stats.Tags.TopTags {
		if i == statsTopTags {
			break
		}
		lines = append(lines, fmt.Sprintf("   %s %d", cell("#"+tag, 18), stats.Tags.Stats[tag].Total))
	}

	if len(stats.TagPairs) > 0 {
		lines = append(lines, "", section.Render("TAGS SEEN TOGETHER"))
		for i, pair := range stats.TagPairs {
			if i == statsTopPairs {
				break
			}
			lines = append(lines, fmt.Sprintf("   %s %d", cell("#"+pair.A+" + #"+pair.B, 28), pair.Count))
		}
	}

	c := stats.Comments
	lines = append(lines, "", section.Render("COMMENTS"),
		fmt.Sprintf("   total %d · mean %.2f · sd %.2f", c.Total, c.Mean, c.StdDev),
		fmt.Sprintf("   busiest %s (%.0f)", c.Busiest, c.Max))

	lines = append(lines, "", section.Render("ASSIGNEES"))
	for _, a := range stats.Assignees {
		lines = append(lines, fmt.Sprintf("   %s %d", cell(a.Name, 18), a.Count))
	}
	if stats.Unassigned > 0 {
		lines = append(lines, muted.Render(fmt.Sprintf("   %s %d", cell("Unassigned", 18), stats.Unassigned)))
	}

	lines = append(lines, "", muted.Italic(true).Render("[s or esc to close]"))
	return t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
