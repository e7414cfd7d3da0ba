package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/workboard/wb/pkg/forms"
)

// formKind picks which create form the overlay hosts
type formKind int

const (
	createBoard formKind = iota
	createWorkspace
)

func (k formKind) title() string {
	if k == createWorkspace {
		return "Create new workspace"
	}
	return "Create new board"
}

var errNameRequired = errors.New("name is required")

// formOverlay hosts a huh form bound to the forms package state.
// Completing it only logs the creation intent.
type formOverlay struct {
	kind  formKind
	theme Theme
	log   zerolog.Logger

	board     forms.BoardForm
	workspace forms.WorkspaceForm
	groups    string

	form      *huh.Form
	closed    bool
	submitted bool
	width     int
}

func newFormOverlay(kind formKind, theme Theme, log zerolog.Logger, width int) *formOverlay {
	o := &formOverlay{kind: kind, theme: theme, log: log, width: width}
	o.build()
	return o
}

func (o *formOverlay) build() {
	nameRequired := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errNameRequired
		}
		return nil
	}

	var fields []huh.Field
	switch o.kind {
	case createWorkspace:
		fields = []huh.Field{
			huh.NewInput().Title("Workspace name").Value(&o.workspace.Name).Validate(nameRequired),
			huh.NewText().Title("Description").Lines(3).Value(&o.workspace.Description),
			memberSearch(&o.workspace.Members),
			memberSelect(&o.workspace.Members),
		}
	default:
		fields = []huh.Field{
			huh.NewInput().Title("Board name").Value(&o.board.Name).Validate(nameRequired),
			huh.NewText().Title("Description").Lines(3).Value(&o.board.Description),
			memberSearch(&o.board.Members),
			memberSelect(&o.board.Members),
			huh.NewInput().Title("Groups").Description("comma separated").Value(&o.groups),
		}
	}

	theme := huh.ThemeCharm()
	if o.theme.Plain {
		theme = huh.ThemeBase()
	}
	o.form = huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(theme).
		WithShowHelp(true).
		WithWidth(max(min(o.width-8, 70), 30))
}

// memberSearch narrows the member list below it
func memberSearch(p *forms.MemberPicker) *huh.Input {
	return huh.NewInput().Title("Find members").Placeholder("type a name").Value(&p.Search)
}

// memberSelect lists the picker's selection and candidates. The options
// are rebuilt whenever the search text or the selection changes.
func memberSelect(p *forms.MemberPicker) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().Title("Members").
		OptionsFunc(func() []huh.Option[string] {
			return huh.NewOptions(p.Listed()...)
		}, p).
		Value(&p.Selected).
		Height(8)
}

// Init starts the form's cursor blink
func (o *formOverlay) Init() tea.Cmd {
	return o.form.Init()
}

// Closed reports whether the overlay should be dismissed
func (o *formOverlay) Closed() bool {
	return o.closed
}

func (o *formOverlay) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		o.closed = true
		return nil
	}

	m, cmd := o.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		o.form = f
	}

	switch o.form.State {
	case huh.StateCompleted:
		if o.submit() {
			o.submitted = true
			o.closed = true
			return nil
		}
		// Rejected: rebuild so the form stays open with its values
		o.build()
		return o.form.Init()
	case huh.StateAborted:
		o.closed = true
		return nil
	}
	return cmd
}

func (o *formOverlay) submit() bool {
	if o.kind == createWorkspace {
		return o.workspace.Submit(o.log)
	}
	for _, g := range strings.Split(o.groups, ",") {
		o.board.GroupInput = g
		o.board.AddGroup()
	}
	o.board.GroupInput = ""
	if !o.board.Submit(o.log) {
		return false
	}
	o.groups = ""
	return true
}

func (o *formOverlay) View() string {
	t := o.theme
	title := t.Style().Bold(true).Foreground(t.Primary).Render(o.kind.title())
	hint := t.Style().Foreground(t.Subtext).Faint(true).Render("[esc] Cancel")
	return t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(title + "\n\n" + o.form.View() + "\n" + hint)
}
