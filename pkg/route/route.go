// Package route parses the viewer's three URL-style paths and resolves them
// against the fixture store.
package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/model"
)

// ErrInvalidRoute is returned for paths that match none of the known shapes
var ErrInvalidRoute = errors.New("invalid route")

// Kind names the page a route shows
type Kind int

const (
	Home Kind = iota
	WorkspacePage
	BoardPage
)

func (k Kind) String() string {
	switch k {
	case Home:
		return "home"
	case WorkspacePage:
		return "workspace"
	case BoardPage:
		return "board"
	}
	return "unknown"
}

// Route is a parsed path
type Route struct {
	Kind        Kind
	WorkspaceID string
	BoardID     string
}

// Path renders the route back to its canonical path
func (r Route) Path() string {
	switch r.Kind {
	case WorkspacePage:
		return "/workspace/" + r.WorkspaceID
	case BoardPage:
		return "/workspace/" + r.WorkspaceID + "/board/" + r.BoardID
	}
	return "/"
}

// HomeRoute is "/"
func HomeRoute() Route { return Route{Kind: Home} }

// ForWorkspace builds the route of a workspace page
func ForWorkspace(workspaceID string) Route {
	return Route{Kind: WorkspacePage, WorkspaceID: workspaceID}
}

// ForBoard builds the route of a board page
func ForBoard(workspaceID, boardID string) Route {
	return Route{Kind: BoardPage, WorkspaceID: workspaceID, BoardID: boardID}
}

// Parse accepts "/", "/workspace/{id}" and "/workspace/{id}/board/{boardId}".
// A trailing slash is tolerated; an empty path means home.
func Parse(path string) (Route, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return HomeRoute(), nil
	}

	parts := strings.Split(trimmed, "/")
	for _, p := range parts {
		if p == "" {
			return Route{}, fmt.Errorf("%w: %q has an empty segment", ErrInvalidRoute, path)
		}
	}

	switch {
	case len(parts) == 2 && parts[0] == "workspace":
		return ForWorkspace(parts[1]), nil
	case len(parts) == 4 && parts[0] == "workspace" && parts[2] == "board":
		return ForBoard(parts[1], parts[3]), nil
	}
	return Route{}, fmt.Errorf("%w: %q", ErrInvalidRoute, path)
}

// Page is a resolved route: the entities the page renders
type Page struct {
	Route      Route
	Workspace  model.Workspace
	Board      model.Board
	Visibility board.Visibility
}

// Resolve looks up the entities a route names. Unknown IDs produce an
// error matching loader.ErrNotFound.
func Resolve(store *loader.Store, r Route) (Page, error) {
	page := Page{Route: r}

	switch r.Kind {
	case Home:
		return page, nil
	case WorkspacePage:
		ws, err := store.Workspace(r.WorkspaceID)
		if err != nil {
			return Page{}, err
		}
		page.Workspace = ws
		return page, nil
	case BoardPage:
		ws, err := store.Workspace(r.WorkspaceID)
		if err != nil {
			return Page{}, err
		}
		b, err := store.Board(r.WorkspaceID, r.BoardID)
		if err != nil {
			return Page{}, err
		}
		page.Workspace = ws
		page.Board = b
		page.Visibility = board.VisibilityFor(ws.ID)
		return page, nil
	}
	return Page{}, fmt.Errorf("%w: unknown kind %d", ErrInvalidRoute, r.Kind)
}

// ParseAndResolve combines Parse and Resolve. When the path parses but
// does not resolve, the returned Page still carries the parsed Route.
func ParseAndResolve(store *loader.Store, path string) (Page, error) {
	r, err := Parse(path)
	if err != nil {
		return Page{}, err
	}
	page, err := Resolve(store, r)
	if err != nil {
		return Page{Route: r}, err
	}
	return page, nil
}

// IsNotFound reports whether err should render the not-found page
func IsNotFound(err error) bool {
	return errors.Is(err, loader.ErrNotFound) || errors.Is(err, ErrInvalidRoute)
}
