package loader

import (
	"github.com/workboard/wb/pkg/model"
)

// ItemRef locates one work item inside the fixture graph
type ItemRef struct {
	Item        *model.WorkItem
	WorkspaceID string
	BoardID     string
	GroupID     string
	ParentID    string // empty for top-level items
	Depth       int
}

// ItemIndex is a flat arena over every work item of every board, top-level
// and nested, keyed by ID for O(1) lookup.
type ItemIndex struct {
	refs  map[string]*ItemRef
	order []string // depth-first encounter order
}

// buildIndex walks every board and records each item. A repeated ID
// anywhere in the graph is rejected, which also rules out a child that
// repeats one of its ancestors.
func buildIndex(workspaces []model.Workspace) (*ItemIndex, error) {
	idx := &ItemIndex{refs: make(map[string]*ItemRef)}

	var visit func(item *model.WorkItem, ref ItemRef) error
	visit = func(item *model.WorkItem, ref ItemRef) error {
		if err := item.Validate(); err != nil {
			return invalid("board %s: %v", ref.BoardID, err)
		}
		if prev, exists := idx.refs[item.ID]; exists {
			if prev.BoardID == ref.BoardID && isAncestor(idx, ref.ParentID, item.ID) {
				return invalid("work item %s is its own ancestor", item.ID)
			}
			return invalid("duplicate work item ID %s (boards %s and %s)", item.ID, prev.BoardID, ref.BoardID)
		}
		ref.Item = item
		idx.refs[item.ID] = &ref
		idx.order = append(idx.order, item.ID)

		for i := range item.Children {
			child := ref
			child.ParentID = item.ID
			child.Depth = ref.Depth + 1
			if err := visit(&item.Children[i], child); err != nil {
				return err
			}
		}
		return nil
	}

	for wi := range workspaces {
		ws := &workspaces[wi]
		for bi := range ws.Boards {
			board := &ws.Boards[bi]
			for gi := range board.Groups {
				group := &board.Groups[gi]
				for ii := range group.WorkItems {
					ref := ItemRef{WorkspaceID: ws.ID, BoardID: board.ID, GroupID: group.ID}
					if err := visit(&group.WorkItems[ii], ref); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return idx, nil
}

func isAncestor(idx *ItemIndex, startID, targetID string) bool {
	for id := startID; id != ""; {
		if id == targetID {
			return true
		}
		ref, ok := idx.refs[id]
		if !ok {
			return false
		}
		id = ref.ParentID
	}
	return false
}

// Lookup returns the reference for an item ID
func (x *ItemIndex) Lookup(id string) (*ItemRef, bool) {
	ref, ok := x.refs[id]
	return ref, ok
}

// Len returns the number of indexed items
func (x *ItemIndex) Len() int {
	return len(x.refs)
}

// Descendants returns every item below rootID in breadth-first order
func (x *ItemIndex) Descendants(rootID string) ([]*model.WorkItem, error) {
	root, ok := x.refs[rootID]
	if !ok {
		return nil, notFound("work item", rootID)
	}

	descendants := make([]*model.WorkItem, 0)
	queue := []*model.WorkItem{root.Item}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for i := range current.Children {
			child := &current.Children[i]
			descendants = append(descendants, child)
			queue = append(queue, child)
		}
	}
	return descendants, nil
}

// Path returns the chain of item IDs from the top-level ancestor down to id
func (x *ItemIndex) Path(id string) []string {
	var path []string
	for cur := id; cur != ""; {
		ref, ok := x.refs[cur]
		if !ok {
			break
		}
		path = append([]string{cur}, path...)
		cur = ref.ParentID
	}
	return path
}
