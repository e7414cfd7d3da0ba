// Package board holds the presentation logic of a board page: which view is
// showing, which rows are visible, how kanban columns are partitioned and
// which optional columns are drawn. Everything here is pure and UI-agnostic.
package board

import (
	"fmt"
)

// ViewKind is one of the three ways a board can be shown
type ViewKind int

const (
	ViewTable ViewKind = iota
	ViewKanban
	ViewWorkItems
)

// ViewKinds returns every view in tab order
func ViewKinds() []ViewKind {
	return []ViewKind{ViewTable, ViewKanban, ViewWorkItems}
}

func (v ViewKind) String() string {
	switch v {
	case ViewTable:
		return "table"
	case ViewKanban:
		return "kanban"
	case ViewWorkItems:
		return "workitems"
	}
	return fmt.Sprintf("ViewKind(%d)", int(v))
}

// Title returns the tab caption
func (v ViewKind) Title() string {
	switch v {
	case ViewTable:
		return "Main table"
	case ViewKanban:
		return "Kanban"
	case ViewWorkItems:
		return "Work Items"
	}
	return v.String()
}

// ParseViewKind accepts the names produced by String
func ParseViewKind(s string) (ViewKind, error) {
	for _, v := range ViewKinds() {
		if v.String() == s {
			return v, nil
		}
	}
	return ViewTable, fmt.Errorf("unknown view %q (want table, kanban or workitems)", s)
}

// Selector tracks the active view of a board page
type Selector struct {
	current ViewKind
}

// NewSelector starts on the given view
func NewSelector(initial ViewKind) Selector {
	return Selector{current: initial}
}

// Current returns the active view
func (s Selector) Current() ViewKind {
	return s.current
}

// Select switches to v. Unknown values are ignored.
func (s *Selector) Select(v ViewKind) {
	switch v {
	case ViewTable, ViewKanban, ViewWorkItems:
		s.current = v
	}
}

// Next cycles to the following tab
func (s *Selector) Next() {
	s.current = (s.current + 1) % ViewKind(len(ViewKinds()))
}

// Prev cycles to the preceding tab
func (s *Selector) Prev() {
	n := ViewKind(len(ViewKinds()))
	s.current = (s.current + n - 1) % n
}

// Visibility selects the optional table and card columns
type Visibility struct {
	Tags         bool
	Type         bool
	EmployeeName bool
	DueDate      bool
}

// VisibilityFor is the fixed per-workspace column lookup. Any workspace
// other than "softdev" and "hr" shows none of the optional columns.
func VisibilityFor(workspaceID string) Visibility {
	switch workspaceID {
	case "softdev":
		return Visibility{Tags: true, Type: true}
	case "hr":
		return Visibility{EmployeeName: true, DueDate: true}
	}
	return Visibility{}
}
