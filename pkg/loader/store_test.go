package loader_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/workboard/wb/pkg/fixtures"
	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/model"
)

func TestDefaultStoreShape(t *testing.T) {
	store := loader.Default()

	workspaces := store.Workspaces()
	if len(workspaces) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(workspaces))
	}
	if workspaces[0].ID != "softdev" || workspaces[1].ID != "hr" {
		t.Errorf("unexpected workspace order: %s, %s", workspaces[0].ID, workspaces[1].ID)
	}

	// Every board points back at its containing workspace
	for _, ws := range workspaces {
		for _, b := range ws.Boards {
			if b.WorkspaceID != ws.ID {
				t.Errorf("board %s: WorkspaceID = %s, want %s", b.ID, b.WorkspaceID, ws.ID)
			}
		}
	}

	if got := len(store.Boards()); got != 4 {
		t.Errorf("expected 4 boards, got %d", got)
	}
	if got := len(store.Feed()); got != 2 {
		t.Errorf("expected 2 feed items, got %d", got)
	}
	if got := len(store.AssignedToday()); got != 3 {
		t.Errorf("expected 3 assigned tasks, got %d", got)
	}
	// 24 top-level items across four boards plus two children of VEIS-101
	if got := store.ItemCount(); got != 26 {
		t.Errorf("ItemCount() = %d, want 26", got)
	}
}

func TestStoreLookups(t *testing.T) {
	store := loader.Default()

	tests := []struct {
		name     string
		ws       string
		board    string
		wantErr  bool
		wantKind string
	}{
		{"known board", "softdev", "veis", false, ""},
		{"hr board", "hr", "onboarding", false, ""},
		{"unknown workspace", "nope", "veis", true, "workspace"},
		{"unknown board", "softdev", "nope", true, "board"},
		{"board in other workspace", "hr", "veis", true, "board"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := store.Board(tt.ws, tt.board)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Board(%s, %s) error: %v", tt.ws, tt.board, err)
				}
				if b.ID != tt.board {
					t.Errorf("Board ID = %s, want %s", b.ID, tt.board)
				}
				return
			}
			if !errors.Is(err, loader.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			var nf *loader.NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("expected *NotFoundError, got %T", err)
			}
			if nf.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", nf.Kind, tt.wantKind)
			}
		})
	}

	if _, err := store.Workspace("hr"); err != nil {
		t.Errorf("Workspace(hr) error: %v", err)
	}
	if _, err := store.Workspace("missing"); !errors.Is(err, loader.ErrNotFound) {
		t.Errorf("Workspace(missing) = %v, want ErrNotFound", err)
	}
}

func TestStoreItemAndLocate(t *testing.T) {
	store := loader.Default()

	item, err := store.Item("VEIS-101-2")
	if err != nil {
		t.Fatalf("Item(VEIS-101-2) error: %v", err)
	}
	if item.Title != "Create login API" {
		t.Errorf("unexpected title %q", item.Title)
	}

	loc, err := store.Locate("VEIS-101-2")
	if err != nil {
		t.Fatalf("Locate error: %v", err)
	}
	if loc.WorkspaceID != "softdev" || loc.BoardID != "veis" || loc.GroupID != "sprint1" {
		t.Errorf("unexpected location %+v", loc)
	}
	if loc.ParentID != "VEIS-101" || loc.Depth != 1 {
		t.Errorf("expected parent VEIS-101 at depth 1, got %s at %d", loc.ParentID, loc.Depth)
	}

	if got := store.Ancestors("VEIS-101-2"); len(got) != 1 || got[0] != "VEIS-101" {
		t.Errorf("Ancestors(VEIS-101-2) = %v", got)
	}
	if got := store.Ancestors("VEIS-101"); len(got) != 0 {
		t.Errorf("a top-level item has no ancestors, got %v", got)
	}
	if got := store.Ancestors("GHOST-1"); got != nil {
		t.Errorf("Ancestors(GHOST-1) = %v", got)
	}

	desc, err := store.Descendants("VEIS-101")
	if err != nil {
		t.Fatalf("Descendants error: %v", err)
	}
	if len(desc) != 2 || desc[0].ID != "VEIS-101-1" || desc[1].ID != "VEIS-101-2" {
		t.Errorf("unexpected descendants %v", desc)
	}

	if _, err := store.Item("GHOST-1"); !errors.Is(err, loader.ErrNotFound) {
		t.Errorf("Item(GHOST-1) = %v, want ErrNotFound", err)
	}
}

func TestStoreAccessorsReturnCopies(t *testing.T) {
	store := loader.Default()

	b, _ := store.Board("softdev", "veis")
	b.Groups[0].WorkItems[0].Title = "mutated"
	b.Groups[0].WorkItems[0].Children[0].Status = model.StatusCancelled

	again, _ := store.Board("softdev", "veis")
	if again.Groups[0].WorkItems[0].Title == "mutated" {
		t.Error("board mutation leaked into store")
	}
	if again.Groups[0].WorkItems[0].Children[0].Status != model.StatusDone {
		t.Error("child mutation leaked into store")
	}

	set, _ := store.ResultSet("following")
	set[0].Tags[0] = "mutated"
	set2, _ := store.ResultSet("following")
	if set2[0].Tags[0] == "mutated" {
		t.Error("result set mutation leaked into store")
	}
}

func TestNewStoreDoesNotAliasCorpus(t *testing.T) {
	corpus := fixtures.Default()
	store, err := loader.NewStore(corpus)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	corpus.Workspaces[0].Name = "changed"
	ws, _ := store.Workspace("softdev")
	if ws.Name != "Softdev" {
		t.Errorf("store aliased the corpus: name = %s", ws.Name)
	}
}

func TestNewStoreValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *fixtures.Corpus)
		want   string
	}{
		{
			name: "dangling workspace reference",
			mutate: func(c *fixtures.Corpus) {
				c.Workspaces[0].Boards[0].WorkspaceID = "hr"
			},
			want: "workspace reference",
		},
		{
			name: "duplicate board",
			mutate: func(c *fixtures.Corpus) {
				c.Workspaces[0].Boards[1].ID = c.Workspaces[0].Boards[0].ID
			},
			want: "duplicate board",
		},
		{
			name: "duplicate item across boards",
			mutate: func(c *fixtures.Corpus) {
				c.Workspaces[1].Boards[0].Groups[0].WorkItems[0].ID = "VEIS-101"
			},
			want: "duplicate work item",
		},
		{
			name: "child repeats ancestor",
			mutate: func(c *fixtures.Corpus) {
				veis := &c.Workspaces[0].Boards[1]
				veis.Groups[0].WorkItems[0].Children[0].ID = "VEIS-101"
			},
			want: "own ancestor",
		},
		{
			name: "invalid status",
			mutate: func(c *fixtures.Corpus) {
				c.Workspaces[1].Boards[1].Groups[0].WorkItems[0].Status = "blocked"
			},
			want: "invalid status",
		},
		{
			name: "invalid type in result set",
			mutate: func(c *fixtures.Corpus) {
				c.ResultSets["mentioned"][0].Type = "Story"
			},
			want: "invalid work item type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corpus := fixtures.Default()
			tt.mutate(&corpus)

			_, err := loader.NewStore(corpus)
			if !errors.Is(err, loader.ErrInvalidCorpus) {
				t.Fatalf("expected ErrInvalidCorpus, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
