package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/detail"
	"github.com/workboard/wb/pkg/filter"
	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/logging"
	"github.com/workboard/wb/pkg/model"
	"github.com/workboard/wb/pkg/route"
)

// appChromeLines is the height of the header, status bar and footer
const appChromeLines = 4

// fadeSlack absorbs tick jitter when deciding whether a fade is stale
const fadeSlack = 100 * time.Millisecond

// Options configures the root model
type Options struct {
	Store     *loader.Store
	Route     route.Route
	Path      string // parsed in place of Route when set
	View      board.ViewKind
	ResultSet filter.ResultSet
	Log       zerolog.Logger
	Theme     *Theme // nil uses DefaultTheme
}

// page is the contract shared by the home, workspace and board pages
type page interface {
	SetSize(width, height int)
	Update(msg tea.KeyMsg) tea.Cmd
	View() string
}

// capturer is implemented by pages with text inputs
type capturer interface {
	Capturing() bool
}

// Model is the root bubbletea model. It owns the current page and the
// overlays stacked above it.
type Model struct {
	store *loader.Store
	theme Theme
	keys  KeyMap
	log   zerolog.Logger
	view  board.ViewKind
	set   filter.ResultSet

	route    route.Route
	path     string
	page     page
	notFound error

	sidebar sidebar
	detail  *detailOverlay
	form    *formOverlay
	jump    *jumpPalette
	help    HelpOverlayModel
	helpBar help.Model

	showNotifications bool
	showProfile       bool

	status   logging.StatusMsg
	statusAt time.Time

	width, height int
}

// New builds the root model showing opts.Route
func New(opts Options) *Model {
	theme := DefaultTheme(nil)
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	store := opts.Store
	if store == nil {
		store = loader.Default()
	}
	keys := DefaultKeyMap

	m := &Model{
		store:   store,
		theme:   theme,
		keys:    keys,
		log:     opts.Log,
		view:    opts.View,
		set:     opts.ResultSet,
		sidebar: newSidebar(store.Workspaces(), theme, keys),
		help:    NewHelpOverlayModel(theme, keys),
		helpBar: help.New(),
		width:   120,
		height:  40,
	}
	if opts.Path == "" {
		m.navigate(opts.Route)
		return m
	}
	page, err := route.ParseAndResolve(store, opts.Path)
	m.show(page.Route, page, err)
	if errors.Is(err, route.ErrInvalidRoute) {
		m.path = opts.Path
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Route returns the route being shown
func (m *Model) Route() route.Route {
	return m.route
}

// navigate tears down the current page and overlays and shows r
func (m *Model) navigate(r route.Route) {
	resolved, err := route.Resolve(m.store, r)
	m.show(r, resolved, err)
}

// show builds the page for a resolved route, or records why it did not
// resolve.
func (m *Model) show(r route.Route, resolved route.Page, err error) {
	m.route = r
	m.path = r.Path()
	m.page = nil
	m.notFound = nil
	m.detail = nil
	m.showNotifications, m.showProfile = false, false
	m.sidebar.SetActive(r)

	if err != nil {
		m.notFound = err
		m.log.Debug().Err(err).Str("route", r.Path()).Msg("route not found")
		return
	}

	switch r.Kind {
	case route.Home:
		m.page = newHomePage(m.store, m.theme, m.keys)
	case route.WorkspacePage:
		m.page = newWorkspacePage(resolved.Workspace, m.theme, m.keys)
	case route.BoardPage:
		m.page = newBoardPage(m.store, resolved, m.view, m.set, m.theme, m.keys, m.log)
	}
	m.resize()
}

// contentWidth is the width left of the sidebar
func (m *Model) contentWidth() int {
	if m.width < BreakpointNarrow {
		return max(m.width, MinBoxWidth)
	}
	return max(m.width-SidebarWidth-2, MinBoxWidth)
}

func (m *Model) resize() {
	bodyHeight := max(m.height-appChromeLines, 5)
	m.sidebar.height = bodyHeight
	m.help.SetSize(m.width, m.height)
	m.helpBar.Width = m.width
	if m.page != nil {
		m.page.SetSize(m.contentWidth(), bodyHeight)
	}
	if m.detail != nil {
		m.detail.SetSize(m.width, m.height)
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case NavigateMsg:
		m.navigate(msg.Route)
		return m, nil

	case OpenDetailMsg:
		m.detail = newDetailOverlay(msg.Item, m.store.DetailSeed(), m.theme, m.keys, m.log)
		m.detail.locate(m.store)
		m.detail.SetSize(m.width, m.height)
		return m, nil

	case StoreReloadedMsg:
		m.store = msg.Store
		m.sidebar = newSidebar(m.store.Workspaces(), m.theme, m.keys)
		m.form, m.jump = nil, nil
		m.navigate(m.route)
		m.log.Info().Int("items", m.store.ItemCount()).Msg("fixtures reloaded")
		return m, nil

	case StoreReloadFailedMsg:
		m.log.Warn().Err(msg.Err).Msg("fixtures reload failed")
		return m, nil

	case logging.StatusMsg:
		m.status = msg
		m.statusAt = time.Now()
		return m, logging.FadeAfterDelay()

	case logging.StatusFadeMsg:
		// A newer record restarted the clock; its own fade will clear it
		if time.Since(m.statusAt) >= logging.StatusFadeDelay-fadeSlack {
			m.status = logging.StatusMsg{}
		}
		return m, nil

	case clipboardMsg:
		if m.detail != nil {
			return m, m.detail.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// Blink and other widget messages
	switch {
	case m.form != nil:
		return m, m.form.Update(msg)
	case m.detail != nil:
		return m, m.detail.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	if m.form != nil {
		cmd := m.form.Update(msg)
		if m.form.Closed() {
			m.form = nil
		}
		return cmd
	}
	if m.jump != nil {
		cmd := m.jump.Update(msg)
		if m.jump.Closed() {
			m.jump = nil
		}
		return cmd
	}
	if m.detail != nil {
		cmd := m.detail.Update(msg)
		if m.detail.Closed() {
			m.detail = nil
		}
		return cmd
	}
	if m.help.IsVisible() {
		m.help, _ = m.help.Update(msg)
		return nil
	}
	if m.sidebar.Focused() {
		return m.sidebar.Update(msg)
	}
	if m.page != nil && m.pageCapturing() {
		return m.page.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return nil
	case key.Matches(msg, m.keys.Sidebar):
		m.sidebar.SetFocus(true)
		return nil
	case key.Matches(msg, m.keys.Jump):
		m.jump = newJumpPalette(m.store.Workspaces(), m.theme)
		return nil
	case key.Matches(msg, m.keys.Notifications):
		m.showNotifications = !m.showNotifications
		m.showProfile = false
		return nil
	case key.Matches(msg, m.keys.Profile):
		m.showProfile = !m.showProfile
		m.showNotifications = false
		return nil
	case key.Matches(msg, m.keys.NewBoard):
		m.form = newFormOverlay(createBoard, m.theme, m.log, m.width)
		return m.form.Init()
	case key.Matches(msg, m.keys.NewWorkspace):
		m.form = newFormOverlay(createWorkspace, m.theme, m.log, m.width)
		return m.form.Init()
	case key.Matches(msg, m.keys.Home):
		m.navigate(route.HomeRoute())
		return nil
	case key.Matches(msg, m.keys.Back) && (m.showNotifications || m.showProfile):
		m.showNotifications, m.showProfile = false, false
		return nil
	}

	if m.page != nil {
		return m.page.Update(msg)
	}
	return nil
}

func (m *Model) pageCapturing() bool {
	if c, ok := m.page.(capturer); ok && c.Capturing() {
		return true
	}
	if b, ok := m.page.(*boardPage); ok && b.Overlaid() {
		return true
	}
	return false
}

// View implements tea.Model
func (m *Model) View() string {
	var overlay string
	switch {
	case m.form != nil:
		overlay = m.form.View()
	case m.jump != nil:
		overlay = m.jump.View()
	case m.detail != nil:
		overlay = m.detail.View()
	case m.help.IsVisible():
		overlay = m.help.View()
	}

	var body string
	if overlay != "" {
		body = lipgloss.Place(m.width, max(m.height-appChromeLines, 5), lipgloss.Center, lipgloss.Center, overlay)
	} else if m.width < BreakpointNarrow && !m.sidebar.Focused() {
		body = m.content()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), " ", m.content())
	}

	parts := []string{m.header()}
	if dropdown := m.dropdown(); dropdown != "" && overlay == "" {
		parts = append(parts, dropdown)
	}
	parts = append(parts, body, m.statusLine(), m.helpBar.ShortHelpView(m.keys.ShortHelp()))
	return strings.Join(parts, "\n")
}

// content renders the current page or the not-found page
func (m *Model) content() string {
	if m.notFound != nil {
		return renderNotFound(m.theme, m.path, m.notFound)
	}
	if m.page == nil {
		return ""
	}
	return m.page.View()
}

func renderNotFound(t Theme, path string, err error) string {
	lines := []string{
		t.Style().Bold(true).Foreground(t.Danger).Render("Not found"),
		"",
		t.Style().Foreground(t.Subtext).Render(path),
		t.Style().Foreground(t.Subtext).Render(err.Error()),
		"",
		t.Style().Faint(true).Render("Press g to go home"),
	}
	return t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Danger).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) header() string {
	t := m.theme
	brand := t.Style().Bold(true).Foreground(t.Primary).Render("wb")
	crumb := t.Style().Foreground(t.Subtext).Render(m.path)

	bell := fmt.Sprintf("🔔 %d", len(m.store.Feed()))
	if m.showNotifications {
		bell = t.Style().Bold(true).Foreground(t.Primary).Render(bell)
	}
	profile := RenderInitials(t, []string{detail.LocalUser}, 1)
	right := bell + "  " + profile

	gap := max(m.width-lipgloss.Width(brand)-lipgloss.Width(crumb)-lipgloss.Width(right)-3, 1)
	return brand + "  " + crumb + strings.Repeat(" ", gap) + right
}

// dropdown renders the open header menu, if any
func (m *Model) dropdown() string {
	t := m.theme
	muted := t.Style().Foreground(t.Subtext)
	var lines []string

	switch {
	case m.showNotifications:
		lines = append(lines, t.Style().Bold(true).Render(fmt.Sprintf("Notifications (%d)", len(m.store.Feed()))))
		for _, f := range m.store.Feed() {
			lines = append(lines, renderFeedLine(t, f))
		}
		if len(m.store.Feed()) == 0 {
			lines = append(lines, muted.Italic(true).Render("Nothing new"))
		}
	case m.showProfile:
		lines = append(lines,
			t.Style().Bold(true).Render(detail.LocalUser),
			muted.Render("Profile"),
			muted.Render("Settings"),
			muted.Render("Sign out"))
	default:
		return ""
	}

	box := t.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, box)
}

func renderFeedLine(t Theme, f model.FeedItem) string {
	muted := t.Style().Foreground(t.Subtext)
	return fmt.Sprintf("%s %s on %s %s",
		t.Style().Bold(true).Render(f.User),
		muted.Render("commented"),
		f.WorkItemName,
		muted.Render("· "+f.BoardName+" · "+f.Date))
}

func (m *Model) statusLine() string {
	if m.status.Summary == "" {
		return ""
	}
	t := m.theme
	color := t.Subtext
	switch {
	case m.status.Level >= zerolog.ErrorLevel:
		color = t.Danger
	case m.status.Level == zerolog.WarnLevel:
		color = t.Warning
	}
	return t.Style().Foreground(color).Render(clip(m.status.Summary, max(m.width-1, 10)))
}
