package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/logging"
	"github.com/workboard/wb/pkg/route"
)

func newTestModel(r route.Route) *Model {
	theme := testTheme()
	return New(Options{
		Store: loader.Default(),
		Route: r,
		View:  board.ViewTable,
		Log:   zerolog.Nop(),
		Theme: &theme,
	})
}

// send runs msg through the model, dropping any command
func send(m *Model, msg tea.Msg) {
	m.Update(msg)
}

// follow runs msg and feeds back the navigation or detail message its
// command produces. Only use it where the command returns immediately.
func follow(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return
	}
	switch next := cmd().(type) {
	case NavigateMsg, OpenDetailMsg:
		m.Update(next)
	}
}

func TestAppNotFoundRoute(t *testing.T) {
	tests := []struct {
		name  string
		route route.Route
	}{
		{"unknown workspace", route.ForWorkspace("nope")},
		{"unknown board", route.ForBoard("softdev", "nope")},
		{"board in other workspace", route.ForBoard("hr", "veis")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(tt.route)
			if !route.IsNotFound(m.notFound) {
				t.Fatalf("expected not found, got %v", m.notFound)
			}
			if !strings.Contains(m.View(), "Not found") {
				t.Error("expected the not-found page")
			}

			send(m, keyMsg("g"))
			if m.notFound != nil || m.Route().Kind != route.Home {
				t.Errorf("g should go home, at %s", m.Route().Path())
			}
		})
	}
}

func TestAppNavigateFromWorkspace(t *testing.T) {
	m := newTestModel(route.ForWorkspace("softdev"))
	follow(m, keyMsg("enter"))

	if m.Route().Kind != route.BoardPage {
		t.Fatalf("expected a board page, at %s", m.Route().Path())
	}
	if _, ok := m.page.(*boardPage); !ok {
		t.Errorf("expected *boardPage, got %T", m.page)
	}
}

func TestAppDetailOverlayLifecycle(t *testing.T) {
	m := newTestModel(route.ForBoard("softdev", "veis"))

	send(m, keyMsg("down"))
	follow(m, keyMsg("enter"))
	if m.detail == nil {
		t.Fatal("enter on a row should open the detail overlay")
	}
	if m.detail.State().Item().ID != "VEIS-101" {
		t.Errorf("bound to %s", m.detail.State().Item().ID)
	}
	if !strings.HasPrefix(m.detail.where, "Softdev / VEIS / ") {
		t.Errorf("unexpected location %q", m.detail.where)
	}
	if len(m.detail.nested) == 0 || !strings.Contains(m.detail.body(), "CHILD ITEMS") {
		t.Error("expected the nested items of VEIS-101")
	}

	// Keys go to the overlay first: q must not quit
	_, cmd := m.Update(keyMsg("q"))
	if cmd != nil || m.detail == nil {
		t.Error("q inside the overlay should be ignored")
	}

	send(m, keyMsg("esc"))
	if m.detail != nil {
		t.Error("esc should close the overlay")
	}
}

func TestAppNavigationDropsPageState(t *testing.T) {
	m := newTestModel(route.ForBoard("softdev", "veis"))
	bp := m.page.(*boardPage)
	bp.state.Expansion.Toggle("VEIS-101")

	send(m, NavigateMsg{Route: route.ForBoard("softdev", "veis")})
	fresh := m.page.(*boardPage)
	if fresh.state.Expansion.IsExpanded("VEIS-101") {
		t.Error("navigation should start from fresh page state")
	}
}

func TestAppStoreReload(t *testing.T) {
	m := newTestModel(route.ForBoard("softdev", "veis"))
	send(m, OpenDetailMsg{Item: m.page.(*boardPage).board.Groups[0].WorkItems[0]})

	send(m, StoreReloadedMsg{Store: loader.Default()})
	if m.detail != nil {
		t.Error("reload should drop the overlay")
	}
	if m.Route() != route.ForBoard("softdev", "veis") || m.page == nil {
		t.Error("reload should keep the route")
	}
}

func TestAppStatusFade(t *testing.T) {
	m := newTestModel(route.HomeRoute())

	_, cmd := m.Update(logging.StatusMsg{Summary: "disk full", Level: zerolog.WarnLevel})
	if cmd == nil {
		t.Error("a status message should schedule its fade")
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Error("status bar should show the message")
	}

	// A fade scheduled by an older message must not clear a fresh one
	m.Update(logging.StatusFadeMsg{})
	if m.status.Summary == "" {
		t.Error("fresh status cleared early")
	}

	m.statusAt = time.Now().Add(-logging.StatusFadeDelay)
	m.Update(logging.StatusFadeMsg{})
	if m.status.Summary != "" {
		t.Error("expired status not cleared")
	}
}

func TestAppGlobalToggles(t *testing.T) {
	m := newTestModel(route.HomeRoute())

	send(m, keyMsg("i"))
	if !m.showNotifications || !strings.Contains(m.View(), "Notifications") {
		t.Error("i should open the notifications menu")
	}
	send(m, keyMsg("p"))
	if m.showNotifications || !m.showProfile {
		t.Error("p should swap to the profile menu")
	}
	send(m, keyMsg("esc"))
	if m.showProfile {
		t.Error("esc should close the menu")
	}

	send(m, keyMsg("?"))
	if !m.help.IsVisible() {
		t.Error("? should show help")
	}
	send(m, keyMsg("j"))
	if m.help.IsVisible() {
		t.Error("any key should close help")
	}

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should produce tea.QuitMsg")
	}
}

func TestAppCaptureShieldsGlobals(t *testing.T) {
	m := newTestModel(route.ForBoard("softdev", "veis"))

	send(m, keyMsg("/"))
	send(m, keyMsg("q"))
	if m.Route().Kind != route.BoardPage {
		t.Fatal("typing in search must not leave the page")
	}
	if got := m.page.(*boardPage).search.Value(); got != "q" {
		t.Errorf("expected search text %q, got %q", "q", got)
	}
}

func TestAppForms(t *testing.T) {
	m := newTestModel(route.HomeRoute())

	send(m, keyMsg("n"))
	if m.form == nil || m.form.kind != createBoard {
		t.Fatal("n should open the create board form")
	}
	send(m, keyMsg("esc"))
	if m.form != nil {
		t.Error("esc should cancel the form")
	}

	send(m, keyMsg("N"))
	if m.form == nil || m.form.kind != createWorkspace {
		t.Fatal("N should open the create workspace form")
	}
}

func TestFormOverlaySubmit(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	o := newFormOverlay(createBoard, testTheme(), log, 100)
	if o.submit() {
		t.Error("blank name should not submit")
	}
	if buf.Len() != 0 {
		t.Error("rejected submit should not log")
	}

	o.board.Name = "Roadmap"
	o.groups = " Q1, Q2,Q1 ,"
	if !o.submit() {
		t.Fatal("expected submit")
	}
	out := buf.String()
	if !strings.Contains(out, `"create board"`) || !strings.Contains(out, `"groups":["Q1","Q2"]`) {
		t.Errorf("unexpected log record %s", out)
	}
	if o.board.Name != "" || o.groups != "" {
		t.Error("submit should reset the form")
	}
}

func TestSidebarTree(t *testing.T) {
	s := newSidebar(loader.Default().Workspaces(), testTheme(), DefaultKeyMap)

	labels := func() []string {
		var out []string
		for _, e := range s.entries() {
			out = append(out, e.label)
		}
		return out
	}
	got := strings.Join(labels(), ",")
	if got != "Softdev,AzDoc,VEIS,HR" {
		t.Fatalf("unexpected initial tree %s", got)
	}

	s.SetFocus(true)
	for i := 0; i < 3; i++ {
		s.Update(keyMsg("down"))
	}
	s.Update(keyMsg(" "))
	if got := strings.Join(labels(), ","); got != "Softdev,AzDoc,VEIS,HR,Recruitment,Onboarding" {
		t.Errorf("expected HR expanded, got %s", got)
	}

	cmd := s.Update(keyMsg("enter"))
	msg, ok := cmd().(NavigateMsg)
	if !ok || msg.Route != route.ForWorkspace("hr") {
		t.Errorf("expected navigation to hr, got %#v", msg)
	}
	if s.Focused() {
		t.Error("navigating should release focus")
	}
}

func TestJumpPalette(t *testing.T) {
	p := newJumpPalette(loader.Default().Workspaces(), testTheme())
	if len(p.filtered) != 4 {
		t.Fatalf("expected 4 boards, got %d", len(p.filtered))
	}

	typeText(func(k tea.KeyMsg) { p.Update(k) }, "recru")
	if len(p.filtered) == 0 || p.filtered[0].label != "HR / Recruitment" {
		t.Fatalf("unexpected matches %+v", p.filtered)
	}

	cmd := p.Update(keyMsg("enter"))
	msg, ok := cmd().(NavigateMsg)
	if !ok || msg.Route != route.ForBoard("hr", "recruitment") {
		t.Errorf("expected recruitment, got %#v", msg)
	}
	if !p.Closed() {
		t.Error("enter should close the palette")
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, Options{
		Store: loader.Default(),
		Route: route.ForBoard("softdev", "veis"),
		View:  board.ViewKanban,
		Log:   zerolog.Nop(),
	}, 160)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"VEIS", "Kanban", "VEIS-201"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("output to a non-terminal should carry no escape codes")
	}

	buf.Reset()
	err = Print(&buf, Options{Store: loader.Default(), Route: route.ForWorkspace("nope"), Log: zerolog.Nop()}, 80)
	if !route.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if !strings.Contains(buf.String(), "Not found") {
		t.Error("expected the not-found page")
	}
}

func TestAppStartsFromPath(t *testing.T) {
	theme := testTheme()
	open := func(path string) *Model {
		return New(Options{Store: loader.Default(), Path: path, Log: zerolog.Nop(), Theme: &theme})
	}

	m := open("/workspace/hr/board/recruitment")
	if m.notFound != nil || m.Route() != route.ForBoard("hr", "recruitment") {
		t.Fatalf("expected the recruitment board, got %v at %s", m.notFound, m.Route().Path())
	}

	m = open("/workspace/softdev/board/ghost")
	if !route.IsNotFound(m.notFound) || m.Route() != route.ForBoard("softdev", "ghost") {
		t.Errorf("unresolved board should keep its route, got %v at %s", m.notFound, m.Route().Path())
	}

	m = open("/nowhere/at/all")
	if !errors.Is(m.notFound, route.ErrInvalidRoute) || m.path != "/nowhere/at/all" {
		t.Errorf("malformed path should be shown as typed, got %v at %q", m.notFound, m.path)
	}
}
