package route

import (
	"errors"
	"testing"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/loader"
)

func TestParse(t *testing.T) {
	tests := []struct {
		path    string
		want    Route
		wantErr bool
	}{
		{"/", HomeRoute(), false},
		{"", HomeRoute(), false},
		{"/workspace/softdev", ForWorkspace("softdev"), false},
		{"/workspace/softdev/", ForWorkspace("softdev"), false},
		{"/workspace/hr/board/onboarding", ForBoard("hr", "onboarding"), false},
		{"/workspace", Route{}, true},
		{"/workspace//board/x", Route{}, true},
		{"/workspace/hr/boards/x", Route{}, true},
		{"/boards/x", Route{}, true},
		{"/workspace/hr/board/x/extra", Route{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Parse(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRoute) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidRoute", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, r := range []Route{HomeRoute(), ForWorkspace("hr"), ForBoard("softdev", "veis")} {
		got, err := Parse(r.Path())
		if err != nil || got != r {
			t.Errorf("Parse(%q) = %+v, %v", r.Path(), got, err)
		}
	}
}

func TestResolve(t *testing.T) {
	store := loader.Default()

	tests := []struct {
		name     string
		path     string
		wantVis  board.Visibility
		notFound bool
	}{
		{"home", "/", board.Visibility{}, false},
		{"workspace", "/workspace/hr", board.Visibility{}, false},
		{"softdev board", "/workspace/softdev/board/veis", board.Visibility{Tags: true, Type: true}, false},
		{"hr board", "/workspace/hr/board/recruitment", board.Visibility{EmployeeName: true, DueDate: true}, false},
		{"unknown workspace", "/workspace/nope", board.Visibility{}, true},
		{"unknown board", "/workspace/softdev/board/nope", board.Visibility{}, true},
		{"board under wrong workspace", "/workspace/hr/board/veis", board.Visibility{}, true},
		{"malformed", "/teams/1", board.Visibility{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParseAndResolve(store, tt.path)
			if tt.notFound {
				if !IsNotFound(err) {
					t.Fatalf("expected not-found error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve %s: %v", tt.path, err)
			}
			if page.Visibility != tt.wantVis {
				t.Errorf("Visibility = %+v, want %+v", page.Visibility, tt.wantVis)
			}
		})
	}
}

func TestResolveNotFoundCarriesKind(t *testing.T) {
	page, err := ParseAndResolve(loader.Default(), "/workspace/softdev/board/ghost")
	if page.Route != ForBoard("softdev", "ghost") {
		t.Errorf("unresolved page should keep its route, got %+v", page.Route)
	}
	var nf *loader.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *loader.NotFoundError, got %T", err)
	}
	if nf.Kind != "board" || nf.ID != "ghost" {
		t.Errorf("unexpected error %+v", nf)
	}
}
