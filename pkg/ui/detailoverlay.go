package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog"

	"github.com/workboard/wb/pkg/detail"
	"github.com/workboard/wb/pkg/fixtures"
	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/model"
)

// detailMode is what the overlay's keystrokes drive
type detailMode int

const (
	modeBrowse detailMode = iota
	modeComment
	modeDescription
)

// noneValue stands in for an unset field in the details sidebar
const noneValue = "None"

// detailOverlay shows one work item. Its state is created on open and
// thrown away on close.
type detailOverlay struct {
	state *detail.State
	theme Theme
	keys  KeyMap
	log   zerolog.Logger

	mode     detailMode
	comment  textarea.Model
	descEdit textarea.Model
	viewport viewport.Model

	md      *glamour.TermRenderer
	mdWidth int

	where  string           // "Workspace / Board / Group"
	nested []model.WorkItem // every item below the bound one

	notice string
	closed bool

	width, height int
}

func newDetailOverlay(item model.WorkItem, seed fixtures.DetailSeed, theme Theme, keys KeyMap, log zerolog.Logger) *detailOverlay {
	comment := textarea.New()
	comment.Placeholder = "Write a comment..."
	comment.CharLimit = 1000
	comment.SetHeight(3)
	comment.ShowLineNumbers = false

	desc := textarea.New()
	desc.CharLimit = 4000
	desc.SetHeight(6)
	desc.ShowLineNumbers = false

	o := &detailOverlay{
		state:    detail.Open(&item, seed),
		theme:    theme,
		keys:     keys,
		log:      log.With().Str("item", item.ID).Logger(),
		comment:  comment,
		descEdit: desc,
		viewport: viewport.New(80, 20),
	}
	o.SetSize(100, 30)
	return o
}

// locate fills in where the item lives and what hangs below it. Items
// the store does not index, such as result-set rows, keep neither.
func (o *detailOverlay) locate(store *loader.Store) {
	id := o.state.Item().ID
	ref, err := store.Locate(id)
	if err != nil {
		o.log.Debug().Err(err).Msg("item outside the board index")
		return
	}
	ws, err := store.Workspace(ref.WorkspaceID)
	if err != nil {
		return
	}
	b, err := store.Board(ref.WorkspaceID, ref.BoardID)
	if err != nil {
		return
	}
	parts := []string{ws.Name, b.Name}
	for _, g := range b.Groups {
		if g.ID == ref.GroupID {
			parts = append(parts, g.Name)
		}
	}
	parts = append(parts, store.Ancestors(id)...)
	o.where = strings.Join(parts, " / ")
	o.nested, _ = store.Descendants(id)
	o.refresh()
}

// State exposes the overlay state
func (o *detailOverlay) State() *detail.State {
	return o.state
}

// Closed reports whether the user dismissed the overlay
func (o *detailOverlay) Closed() bool {
	return o.closed
}

// Capturing reports whether keystrokes go to a text area
func (o *detailOverlay) Capturing() bool {
	return o.mode != modeBrowse
}

func (o *detailOverlay) SetSize(width, height int) {
	o.width, o.height = width, height
	inner := o.innerWidth()
	o.comment.SetWidth(max(inner-4, 20))
	o.descEdit.SetWidth(max(inner-4, 20))
	o.viewport.Width = inner
	o.viewport.Height = max(height-12, 5)
	o.refresh()
}

func (o *detailOverlay) innerWidth() int {
	return max(min(o.width-8, 100), 40)
}

func (o *detailOverlay) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case clipboardMsg:
		if msg.err != nil {
			o.log.Warn().Err(msg.err).Msg("copy to clipboard failed")
			o.notice = ""
		} else {
			o.notice = "Copied " + msg.text
		}
		return nil
	case tea.KeyMsg:
		switch o.mode {
		case modeComment:
			return o.updateComment(msg)
		case modeDescription:
			return o.updateDescription(msg)
		}
		return o.updateBrowse(msg)
	}
	return nil
}

func (o *detailOverlay) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, o.keys.Back):
		o.closed = true
	case key.Matches(msg, o.keys.Comment):
		o.mode = modeComment
		return o.comment.Focus()
	case key.Matches(msg, o.keys.Edit):
		o.mode = modeDescription
		o.descEdit.SetValue(o.state.Description())
		return o.descEdit.Focus()
	case key.Matches(msg, o.keys.Follow):
		o.state.ToggleFollow()
	case key.Matches(msg, o.keys.NextTab):
		o.state.NextTab()
		o.refresh()
	case key.Matches(msg, o.keys.PrevTab):
		tabs := detail.Tabs()
		o.state.SetTab(tabs[(int(o.state.Tab())+len(tabs)-1)%len(tabs)])
		o.refresh()
	case key.Matches(msg, o.keys.Copy):
		return copyCmd(o.state.Item().ID)
	default:
		var cmd tea.Cmd
		o.viewport, cmd = o.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (o *detailOverlay) updateComment(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc:
		o.comment.Blur()
		o.mode = modeBrowse
		return nil
	case key.Matches(msg, o.keys.Submit):
		if o.state.AddComment(o.comment.Value()) {
			o.log.Info().Msg("comment added")
			o.comment.Reset()
			o.comment.Blur()
			o.mode = modeBrowse
			o.refresh()
			o.viewport.GotoBottom()
		}
		return nil
	}
	var cmd tea.Cmd
	o.comment, cmd = o.comment.Update(msg)
	return cmd
}

func (o *detailOverlay) updateDescription(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc:
		o.descEdit.Blur()
		o.mode = modeBrowse
		return nil
	case key.Matches(msg, o.keys.Submit):
		o.state.SetDescription(o.descEdit.Value())
		o.descEdit.Blur()
		o.mode = modeBrowse
		o.refresh()
		return nil
	}
	var cmd tea.Cmd
	o.descEdit, cmd = o.descEdit.Update(msg)
	return cmd
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

// refresh re-renders the scrollable body into the viewport
func (o *detailOverlay) refresh() {
	if !o.state.Bound() {
		return
	}
	o.viewport.SetContent(o.body())
}

// markdown renders the description, falling back to wrapped plain text
func (o *detailOverlay) markdown(text string, width int) string {
	if o.md == nil || o.mdWidth != width {
		style := "dark"
		if o.theme.Plain {
			style = "notty"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			o.md = nil
			return wordwrap.String(text, width)
		}
		o.md, o.mdWidth = r, width
	}
	out, err := o.md.Render(text)
	if err != nil {
		return wordwrap.String(text, width)
	}
	return strings.Trim(out, "\n")
}

func (o *detailOverlay) body() string {
	t := o.theme
	item := o.state.Item()
	section := t.Style().Bold(true).Foreground(t.Secondary)
	muted := t.Style().Foreground(t.Subtext)
	width := o.innerWidth()

	var b strings.Builder

	b.WriteString(section.Render("DESCRIPTION"))
	b.WriteString("\n")
	b.WriteString(o.markdown(o.state.Description(), width-2))
	b.WriteString("\n\n")

	b.WriteString(section.Render("DETAILS"))
	b.WriteString("\n")
	for _, row := range o.details(item) {
		b.WriteString("  " + muted.Render(cell(row[0], 14)) + row[1] + "\n")
	}
	b.WriteString("\n")

	if notes := o.state.Notes(); len(notes) > 0 {
		b.WriteString(section.Render("NOTES"))
		b.WriteString("\n")
		for _, n := range notes {
			b.WriteString("  • " + wordwrap.String(n.Content, width-6) + "\n")
			b.WriteString(muted.Render(fmt.Sprintf("    %s · %s", n.CreatedBy, n.CreatedAt)) + "\n")
		}
		b.WriteString("\n")
	}

	if len(o.nested) > 0 {
		b.WriteString(section.Render(fmt.Sprintf("CHILD ITEMS (%d)", len(o.nested))))
		b.WriteString("\n")
		for _, c := range o.nested {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", muted.Render(cell(c.ID, 12)), cell(c.Title, max(width-30, 10)), muted.Render(c.Status.Label())))
		}
		b.WriteString("\n")
	}

	if linked := o.state.LinkedItems(); len(linked) > 0 {
		b.WriteString(section.Render("LINKED WORK ITEMS"))
		b.WriteString("\n")
		for _, l := range linked {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", muted.Render(cell(l.ID, 9)), cell(l.Title, width-30), muted.Render(l.Type+" · "+l.Status)))
		}
		b.WriteString("\n")
	}

	var tabs []string
	for _, tab := range detail.Tabs() {
		if tab == o.state.Tab() {
			tabs = append(tabs, t.Style().Bold(true).Underline(true).Foreground(t.Primary).Render(tab.String()))
		} else {
			tabs = append(tabs, muted.Render(tab.String()))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n")

	tab := o.state.Tab()
	if tab == detail.TabAll || tab == detail.TabComments {
		o.writeComments(&b, width)
	}
	if tab == detail.TabAll || tab == detail.TabHistory {
		for _, h := range o.state.History() {
			line := fmt.Sprintf("  %s %s %s", t.Style().Foreground(t.Primary).Render(h.Initials), h.User, h.Action)
			if h.Details != "" {
				line += muted.Render(" · " + h.Details)
			}
			b.WriteString(line + "\n")
			b.WriteString(muted.Render("     "+h.Timestamp) + "\n")
		}
	}
	if tab == detail.TabAll || tab == detail.TabAttachments {
		for _, a := range o.state.Attachments() {
			b.WriteString(fmt.Sprintf("  📎 %s %s\n", a.Name, muted.Render(fmt.Sprintf("(%s, %s)", a.Type, a.Size))))
			b.WriteString(muted.Render(fmt.Sprintf("     %s · %s", a.UploadedBy, a.UploadedAt)) + "\n")
		}
	}
	return b.String()
}

func (o *detailOverlay) writeComments(b *strings.Builder, width int) {
	t := o.theme
	muted := t.Style().Foreground(t.Subtext)
	initials := t.Style().Bold(true).Foreground(t.Primary)

	comments := o.state.Comments()
	if len(comments) == 0 {
		b.WriteString(muted.Italic(true).Render("  No comments yet") + "\n")
	}
	for _, c := range comments {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", initials.Render(c.Initials), c.User, muted.Render(c.Timestamp)))
		b.WriteString("     " + wordwrap.String(c.Content, width-8) + "\n")
		for _, r := range c.Replies {
			b.WriteString(fmt.Sprintf("       ↳ %s %s %s\n", initials.Render(r.Initials), r.User, muted.Render(r.Timestamp)))
			b.WriteString(fmt.Sprintf("         %s %s\n",
				t.Style().Foreground(t.Secondary).Render("@"+c.User),
				detail.StripMention(r.Content, c.User)))
		}
	}
}

// details lists the sidebar fields with their fallbacks
func (o *detailOverlay) details(item *model.WorkItem) [][2]string {
	assignee := noneValue
	if len(item.AssignedTo) > 0 {
		assignee = strings.Join(item.AssignedTo, ", ")
	}
	tp := noneValue
	if item.Type != "" {
		tp = string(item.Type)
	}
	due := noneValue
	if item.DueDate != "" {
		due = item.DueDate
	}
	tags := noneValue
	if len(item.Tags) > 0 {
		tags = strings.Join(item.Tags, ", ")
	}
	return [][2]string{
		{"Assigned to", assignee},
		{"State", item.Status.Label()},
		{"Type", tp},
		{"Due date", due},
		{"Tags", tags},
	}
}

func (o *detailOverlay) View() string {
	if !o.state.Bound() {
		return ""
	}
	t := o.theme
	item := o.state.Item()
	muted := t.Style().Foreground(t.Subtext)

	var b strings.Builder
	title := t.Style().Bold(true).Foreground(t.Primary).Render(item.Title)
	b.WriteString(title + "  " + muted.Render(item.ID) + "  " + RenderStatusBadge(t, item.Status))
	b.WriteString("\n")

	follow := "☆ Follow"
	if o.state.Following() {
		follow = "★ Following"
	}
	b.WriteString(muted.Render(follow))
	if o.where != "" {
		b.WriteString(muted.Render("  ·  " + o.where))
	}
	if o.notice != "" {
		b.WriteString("  " + t.Style().Foreground(t.Success).Render(o.notice))
	}
	b.WriteString("\n")
	b.WriteString(RenderDivider(t, o.innerWidth()))
	b.WriteString("\n")

	switch o.mode {
	case modeDescription:
		b.WriteString(t.Style().Bold(true).Render("Edit description"))
		b.WriteString("\n")
		b.WriteString(o.descEdit.View())
		b.WriteString("\n")
		b.WriteString(muted.Faint(true).Render("[ctrl+s] Save  [esc] Cancel"))
	case modeComment:
		b.WriteString(o.viewport.View())
		b.WriteString("\n")
		b.WriteString(o.comment.View())
		b.WriteString("\n")
		b.WriteString(muted.Faint(true).Render("[ctrl+s] Send  [esc] Cancel"))
	default:
		b.WriteString(o.viewport.View())
		b.WriteString("\n")
		b.WriteString(muted.Faint(true).Render("c comment · e edit · f follow · tab activity · y copy id · esc close"))
	}

	return t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Width(o.innerWidth() + 2).
		Render(b.String())
}
