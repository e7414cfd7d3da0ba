package board

import "github.com/workboard/wb/pkg/model"

// Expansion records which rows are expanded, keyed by work item ID.
// A missing key means collapsed.
type Expansion map[string]bool

// IsExpanded reports whether the item's children are shown
func (e Expansion) IsExpanded(id string) bool {
	return e[id]
}

// Toggle flips the expansion of one item
func (e Expansion) Toggle(id string) {
	if e[id] {
		delete(e, id)
		return
	}
	e[id] = true
}

// Collapse records which groups are folded, keyed by group ID
type Collapse map[string]bool

// IsCollapsed reports whether the group hides its rows
func (c Collapse) IsCollapsed(groupID string) bool {
	return c[groupID]
}

// Toggle flips one group's collapse state
func (c Collapse) Toggle(groupID string) {
	if c[groupID] {
		delete(c, groupID)
		return
	}
	c[groupID] = true
}

// Row is one visible line of the table view
type Row struct {
	Item        model.WorkItem
	Depth       int
	HasChildren bool
	ChildCount  int
	Expanded    bool
}

// FlattenRows turns an item forest into the rows currently visible.
// Children follow their parent at depth+1 only while the parent is
// expanded; an item without children never reports itself expanded.
func FlattenRows(items []model.WorkItem, expansion Expansion, depth int) []Row {
	var rows []Row
	for _, item := range items {
		hasChildren := item.HasChildren()
		expanded := hasChildren && expansion.IsExpanded(item.ID)
		rows = append(rows, Row{
			Item:        item,
			Depth:       depth,
			HasChildren: hasChildren,
			ChildCount:  len(item.Children),
			Expanded:    expanded,
		})
		if expanded {
			rows = append(rows, FlattenRows(item.Children, expansion, depth+1)...)
		}
	}
	return rows
}
