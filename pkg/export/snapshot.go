// Package export renders kanban snapshots of boards to SVG or PNG files.
package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/model"
)

// SnapshotOptions describes one board snapshot
type SnapshotOptions struct {
	Path          string
	Format        string // "svg" or "png"; inferred from Path when empty
	Board         model.Board
	WorkspaceName string
	Visibility    board.Visibility
}

const (
	canvasMargin = 24
	headerHeight = 56
	columnWidth  = 220
	columnGap    = 16
	columnHeader = 36
	cardHeight   = 64
	cardGap      = 10
	cardPadding  = 10
	cardRadius   = 6
	titleChars   = 30
)

var statusHex = map[model.Status]string{
	model.StatusNew:       "#6b7280",
	model.StatusActive:    "#3b82f6",
	model.StatusStuck:     "#ef4444",
	model.StatusDone:      "#22c55e",
	model.StatusCancelled: "#9ca3af",
}

const (
	backgroundHex = "#111827"
	columnHex     = "#1f2937"
	cardHex       = "#374151"
	textHex       = "#f9fafb"
	mutedHex      = "#9ca3af"
)

// snapshotLayout is the geometry shared by both renderers
type snapshotLayout struct {
	width, height int
	title         string
	subtitle      string
	columns       []columnBox
}

type columnBox struct {
	x, y, h int
	title   string
	count   int
	status  model.Status
	cards   []cardBox
}

type cardBox struct {
	x, y   int
	id     string
	title  string
	detail string
	status model.Status
}

func layoutSnapshot(opts SnapshotOptions) snapshotLayout {
	buckets := board.PartitionByStatus(opts.Board.TopLevelItems())

	tallest := 0
	for _, b := range buckets {
		if len(b.Items) > tallest {
			tallest = len(b.Items)
		}
	}
	colHeight := columnHeader + cardGap + tallest*(cardHeight+cardGap)

	l := snapshotLayout{
		width:  2*canvasMargin + len(buckets)*columnWidth + (len(buckets)-1)*columnGap,
		height: 2*canvasMargin + headerHeight + colHeight,
		title:  opts.Board.Name,
	}
	if opts.WorkspaceName != "" {
		l.subtitle = opts.WorkspaceName + " / " + opts.Board.ID
	} else {
		l.subtitle = opts.Board.ID
	}

	for i, b := range buckets {
		col := columnBox{
			x:      canvasMargin + i*(columnWidth+columnGap),
			y:      canvasMargin + headerHeight,
			h:      colHeight,
			title:  b.Title(),
			count:  len(b.Items),
			status: b.Status,
		}
		for j, item := range b.Items {
			col.cards = append(col.cards, cardBox{
				x:      col.x + cardPadding,
				y:      col.y + columnHeader + cardGap + j*(cardHeight+cardGap),
				id:     item.ID,
				title:  truncate(item.Title, titleChars),
				detail: cardDetail(item, opts.Visibility),
				status: item.Status,
			})
		}
		l.columns = append(l.columns, col)
	}
	return l
}

func cardDetail(item model.WorkItem, vis board.Visibility) string {
	var parts []string
	if vis.Type && item.Type != "" {
		parts = append(parts, string(item.Type))
	}
	if vis.EmployeeName && item.EmployeeName != "" {
		parts = append(parts, item.EmployeeName)
	}
	if vis.DueDate && item.DueDate != "" {
		parts = append(parts, "due "+item.DueDate)
	}
	if len(item.AssignedTo) > 0 {
		var initials []string
		for _, person := range item.AssignedTo {
			initials = append(initials, model.Initials(person))
		}
		parts = append(parts, strings.Join(initials, " "))
	}
	if item.HasChildren() {
		parts = append(parts, fmt.Sprintf("+%d", len(item.Children)))
	}
	return truncate(strings.Join(parts, " · "), titleChars+4)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// SaveBoardSnapshot writes one kanban snapshot to opts.Path
func SaveBoardSnapshot(opts SnapshotOptions) error {
	if opts.Path == "" {
		return fmt.Errorf("snapshot path is required")
	}
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")
	}

	l := layoutSnapshot(opts)
	switch format {
	case "svg":
		return writeSVG(opts.Path, l)
	case "png":
		return writePNG(opts.Path, l)
	}
	return fmt.Errorf("unsupported snapshot format %q (want svg or png)", format)
}

func writeSVG(path string, l snapshotLayout) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(l.width, l.height)
	canvas.Rect(0, 0, l.width, l.height, "fill:"+backgroundHex)
	canvas.Text(canvasMargin, canvasMargin+20, l.title, "fill:"+textHex+";font-family:sans-serif;font-size:20px;font-weight:bold")
	canvas.Text(canvasMargin, canvasMargin+40, l.subtitle, "fill:"+mutedHex+";font-family:sans-serif;font-size:12px")

	for _, col := range l.columns {
		canvas.Roundrect(col.x, col.y, columnWidth, col.h, cardRadius, cardRadius, "fill:"+columnHex)
		canvas.Rect(col.x, col.y, columnWidth, 4, "fill:"+statusHex[col.status])
		canvas.Text(col.x+cardPadding, col.y+24,
			fmt.Sprintf("%s (%d)", col.title, col.count),
			"fill:"+textHex+";font-family:sans-serif;font-size:14px;font-weight:bold")

		for _, c := range col.cards {
			w := columnWidth - 2*cardPadding
			canvas.Roundrect(c.x, c.y, w, cardHeight, cardRadius, cardRadius, "fill:"+cardHex)
			canvas.Rect(c.x, c.y, 4, cardHeight, "fill:"+statusHex[c.status])
			canvas.Text(c.x+12, c.y+20, c.title, "fill:"+textHex+";font-family:sans-serif;font-size:12px")
			canvas.Text(c.x+12, c.y+38, c.id, "fill:"+mutedHex+";font-family:monospace;font-size:11px")
			canvas.Text(c.x+12, c.y+54, c.detail, "fill:"+mutedHex+";font-family:sans-serif;font-size:10px")
		}
	}
	canvas.End()
	return nil
}

func writePNG(path string, l snapshotLayout) error {
	dc := gg.NewContext(l.width, l.height)
	dc.SetColor(hexColor(backgroundHex))
	dc.Clear()

	dc.SetColor(hexColor(textHex))
	dc.DrawString(l.title, canvasMargin, canvasMargin+20)
	dc.SetColor(hexColor(mutedHex))
	dc.DrawString(l.subtitle, canvasMargin, canvasMargin+40)

	for _, col := range l.columns {
		dc.SetColor(hexColor(columnHex))
		dc.DrawRoundedRectangle(float64(col.x), float64(col.y), columnWidth, float64(col.h), cardRadius)
		dc.Fill()
		dc.SetColor(hexColor(statusHex[col.status]))
		dc.DrawRectangle(float64(col.x), float64(col.y), columnWidth, 4)
		dc.Fill()
		dc.SetColor(hexColor(textHex))
		dc.DrawString(fmt.Sprintf("%s (%d)", col.title, col.count), float64(col.x+cardPadding), float64(col.y+24))

		for _, c := range col.cards {
			w := float64(columnWidth - 2*cardPadding)
			dc.SetColor(hexColor(cardHex))
			dc.DrawRoundedRectangle(float64(c.x), float64(c.y), w, cardHeight, cardRadius)
			dc.Fill()
			dc.SetColor(hexColor(statusHex[c.status]))
			dc.DrawRectangle(float64(c.x), float64(c.y), 4, cardHeight)
			dc.Fill()
			dc.SetColor(hexColor(textHex))
			dc.DrawString(c.title, float64(c.x+12), float64(c.y+20))
			dc.SetColor(hexColor(mutedHex))
			dc.DrawString(c.id, float64(c.x+12), float64(c.y+38))
			dc.DrawString(c.detail, float64(c.x+12), float64(c.y+54))
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// hexColor parses "#rrggbb"; malformed input yields opaque black
func hexColor(hex string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
