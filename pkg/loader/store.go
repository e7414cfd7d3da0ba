// Package loader builds the read-only fixture store the viewer renders from.
//
// A Store is constructed once from a fixtures.Corpus, validated, and then
// injected into the UI. Nothing writes back to it; every accessor hands out
// copies so callers cannot disturb the snapshot.
package loader

import (
	"github.com/workboard/wb/pkg/fixtures"
	"github.com/workboard/wb/pkg/model"
)

// Store is the validated, immutable fixture graph
type Store struct {
	workspaces    []model.Workspace
	feed          []model.FeedItem
	assignedToday []model.AssignedTask
	resultSets    map[string][]model.WorkItem
	detail        fixtures.DetailSeed
	index         *ItemIndex
}

// NewStore validates the corpus and builds a store from a private copy of it
func NewStore(corpus fixtures.Corpus) (*Store, error) {
	s := &Store{
		workspaces:    make([]model.Workspace, len(corpus.Workspaces)),
		feed:          append([]model.FeedItem(nil), corpus.Feed...),
		assignedToday: append([]model.AssignedTask(nil), corpus.AssignedToday...),
		resultSets:    make(map[string][]model.WorkItem, len(corpus.ResultSets)),
		detail:        corpus.Detail.Clone(),
	}
	for i, ws := range corpus.Workspaces {
		s.workspaces[i] = ws.Clone()
	}
	for id, items := range corpus.ResultSets {
		s.resultSets[id] = cloneItems(items)
	}
	if s.detail.Description == "" {
		s.detail.Description = fixtures.PlaceholderDescription
	}

	if err := validateWorkspaces(s.workspaces); err != nil {
		return nil, err
	}
	if err := validateResultSets(s.resultSets); err != nil {
		return nil, err
	}

	index, err := buildIndex(s.workspaces)
	if err != nil {
		return nil, err
	}
	s.index = index

	return s, nil
}

// Default builds a store over the built-in corpus. The built-in corpus is
// covered by tests, so a validation failure here is a programming error.
func Default() *Store {
	s, err := NewStore(fixtures.Default())
	if err != nil {
		panic("loader: built-in corpus is invalid: " + err.Error())
	}
	return s
}

func validateWorkspaces(workspaces []model.Workspace) error {
	wsIDs := make(map[string]bool)
	for _, ws := range workspaces {
		if ws.ID == "" {
			return invalid("workspace ID cannot be empty")
		}
		if wsIDs[ws.ID] {
			return invalid("duplicate workspace ID %s", ws.ID)
		}
		wsIDs[ws.ID] = true

		boardIDs := make(map[string]bool)
		for _, board := range ws.Boards {
			if board.ID == "" {
				return invalid("workspace %s: board ID cannot be empty", ws.ID)
			}
			if board.WorkspaceID != ws.ID {
				return invalid("board %s: workspace reference %q does not match containing workspace %q",
					board.ID, board.WorkspaceID, ws.ID)
			}
			if boardIDs[board.ID] {
				return invalid("workspace %s: duplicate board ID %s", ws.ID, board.ID)
			}
			boardIDs[board.ID] = true

			groupIDs := make(map[string]bool)
			for _, group := range board.Groups {
				if groupIDs[group.ID] {
					return invalid("board %s: duplicate group ID %s", board.ID, group.ID)
				}
				groupIDs[group.ID] = true
			}
		}
	}
	return nil
}

func validateResultSets(sets map[string][]model.WorkItem) error {
	for name, items := range sets {
		seen := make(map[string]bool, len(items))
		for i := range items {
			if err := items[i].Validate(); err != nil {
				return invalid("result set %s: %v", name, err)
			}
			if seen[items[i].ID] {
				return invalid("result set %s: duplicate work item ID %s", name, items[i].ID)
			}
			seen[items[i].ID] = true
		}
	}
	return nil
}

func cloneItems(items []model.WorkItem) []model.WorkItem {
	if items == nil {
		return nil
	}
	out := make([]model.WorkItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// Workspaces returns every workspace with its boards, in corpus order
func (s *Store) Workspaces() []model.Workspace {
	out := make([]model.Workspace, len(s.workspaces))
	for i, ws := range s.workspaces {
		out[i] = ws.Clone()
	}
	return out
}

// Workspace looks up a workspace by ID
func (s *Store) Workspace(id string) (model.Workspace, error) {
	for _, ws := range s.workspaces {
		if ws.ID == id {
			return ws.Clone(), nil
		}
	}
	return model.Workspace{}, notFound("workspace", id)
}

// Board looks up a board by workspace and board ID. A board ID that exists
// only in another workspace is reported as not found.
func (s *Store) Board(workspaceID, boardID string) (model.Board, error) {
	for _, ws := range s.workspaces {
		if ws.ID != workspaceID {
			continue
		}
		for _, board := range ws.Boards {
			if board.ID == boardID {
				return board.Clone(), nil
			}
		}
		return model.Board{}, notFound("board", boardID)
	}
	return model.Board{}, notFound("workspace", workspaceID)
}

// Boards returns every board across all workspaces in corpus order
func (s *Store) Boards() []model.Board {
	var out []model.Board
	for _, ws := range s.workspaces {
		for _, board := range ws.Boards {
			out = append(out, board.Clone())
		}
	}
	return out
}

// Feed returns the inbox entries
func (s *Store) Feed() []model.FeedItem {
	return append([]model.FeedItem(nil), s.feed...)
}

// AssignedToday returns the tasks assigned to the current user today
func (s *Store) AssignedToday() []model.AssignedTask {
	return append([]model.AssignedTask(nil), s.assignedToday...)
}

// ResultSet returns the items of one named Work Items result set
func (s *Store) ResultSet(id string) ([]model.WorkItem, error) {
	items, ok := s.resultSets[id]
	if !ok {
		return nil, notFound("result set", id)
	}
	return cloneItems(items), nil
}

// DetailSeed returns the activity data a detail overlay starts from
func (s *Store) DetailSeed() fixtures.DetailSeed {
	return s.detail.Clone()
}

// Item looks up any board work item, top-level or nested, by ID
func (s *Store) Item(id string) (model.WorkItem, error) {
	ref, ok := s.index.Lookup(id)
	if !ok {
		return model.WorkItem{}, notFound("work item", id)
	}
	return ref.Item.Clone(), nil
}

// Locate returns where an item lives: workspace, board, group and parent
func (s *Store) Locate(id string) (ItemRef, error) {
	ref, ok := s.index.Lookup(id)
	if !ok {
		return ItemRef{}, notFound("work item", id)
	}
	loc := *ref
	loc.Item = nil
	return loc, nil
}

// Ancestors returns the IDs of the items above id, top-level first. A
// top-level or unknown item has none.
func (s *Store) Ancestors(id string) []string {
	path := s.index.Path(id)
	if len(path) == 0 {
		return nil
	}
	return path[:len(path)-1]
}

// Descendants returns copies of every item nested below id, breadth first
func (s *Store) Descendants(id string) ([]model.WorkItem, error) {
	ptrs, err := s.index.Descendants(id)
	if err != nil {
		return nil, err
	}
	out := make([]model.WorkItem, len(ptrs))
	for i, p := range ptrs {
		out[i] = p.Clone()
	}
	return out, nil
}

// ItemCount returns the number of board work items, nested ones included
func (s *Store) ItemCount() int {
	return s.index.Len()
}
