package detail

import (
	"testing"

	"github.com/workboard/wb/pkg/fixtures"
	"github.com/workboard/wb/pkg/model"
)

func item() *model.WorkItem {
	return &model.WorkItem{ID: "VEIS-102", Title: "Design dashboard UI", Status: model.StatusStuck}
}

func TestOpenDefaults(t *testing.T) {
	s := Open(item(), fixtures.Detail())

	if !s.Bound() || s.Item().ID != "VEIS-102" {
		t.Fatal("overlay should be bound to VEIS-102")
	}
	if s.Description() != fixtures.PlaceholderDescription {
		t.Errorf("description = %q", s.Description())
	}
	if s.Tab() != TabComments {
		t.Errorf("default tab = %s, want Comments", s.Tab())
	}
	if s.Following() {
		t.Error("follow should default to false")
	}
	if len(s.Comments()) != 1 || s.Comments()[0].ID != "c1" {
		t.Errorf("unexpected seed comments %+v", s.Comments())
	}
	if len(s.Attachments()) != 2 || len(s.Notes()) != 2 || len(s.LinkedItems()) != 3 || len(s.History()) != 5 {
		t.Error("read-only panels not seeded")
	}
}

func TestOpenNilIsUnbound(t *testing.T) {
	s := Open(nil, fixtures.Detail())
	if s.Bound() || s.Item() != nil {
		t.Fatal("nil item should leave the overlay unbound")
	}
	if s.AddComment("hello") {
		t.Error("unbound overlay should ignore comments")
	}
}

func TestAddComment(t *testing.T) {
	s := Open(item(), fixtures.Detail())

	for _, blank := range []string{"", "   ", "\n\t"} {
		if s.AddComment(blank) {
			t.Errorf("AddComment(%q) should be a no-op", blank)
		}
	}
	if len(s.Comments()) != 1 {
		t.Fatalf("blank comments were added: %d", len(s.Comments()))
	}

	if !s.AddComment("  looks good ") {
		t.Fatal("AddComment should accept non-blank text")
	}
	comments := s.Comments()
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	got := comments[1]
	want := model.Comment{ID: "c2", User: "You", Initials: "YO", Content: "  looks good ", Timestamp: "Just now"}
	if got.ID != want.ID || got.User != want.User || got.Initials != want.Initials ||
		got.Content != want.Content || got.Timestamp != want.Timestamp {
		t.Errorf("appended comment = %+v, want %+v", got, want)
	}

	s.AddComment("second")
	if s.Comments()[2].ID != "c3" {
		t.Errorf("third comment ID = %s, want c3", s.Comments()[2].ID)
	}
}

func TestReopenLosesLocalState(t *testing.T) {
	seed := fixtures.Detail()

	s := Open(item(), seed)
	s.AddComment("ephemeral")
	s.SetDescription("edited")
	s.ToggleFollow()
	s.SetTab(TabHistory)

	reopened := Open(item(), seed)
	if len(reopened.Comments()) != 1 {
		t.Errorf("reopened overlay kept %d comments", len(reopened.Comments()))
	}
	if reopened.Description() != fixtures.PlaceholderDescription {
		t.Error("reopened overlay kept the edited description")
	}
	if reopened.Following() || reopened.Tab() != TabComments {
		t.Error("reopened overlay kept follow or tab state")
	}
	if len(seed.Comments) != 1 {
		t.Error("AddComment leaked into the seed")
	}
}

func TestTabs(t *testing.T) {
	s := Open(item(), fixtures.Detail())
	s.SetTab(TabAttachments)
	if s.Tab() != TabAttachments {
		t.Fatal("SetTab failed")
	}
	s.NextTab()
	if s.Tab() != TabAll {
		t.Errorf("NextTab should wrap to All, got %s", s.Tab())
	}
	s.SetTab(Tab(9))
	if s.Tab() != TabAll {
		t.Error("unknown tab should be ignored")
	}
}

func TestStripMention(t *testing.T) {
	if got := StripMention("@Camal Zeynalli aleykum salam", "Camal Zeynalli"); got != "aleykum salam" {
		t.Errorf("StripMention = %q", got)
	}
	if got := StripMention("plain", "Camal Zeynalli"); got != "plain" {
		t.Errorf("StripMention should leave other text alone, got %q", got)
	}
}
