// Package filter implements the Work Items view's result sets and its six
// per-column substring predicates.
package filter

import (
	"strings"

	"github.com/workboard/wb/pkg/model"
)

// EmptyStateMessage is the row shown when no item passes the predicates
const EmptyStateMessage = "No work items found matching your filters"

// ResultSet names one of the fixed item collections of the Work Items view
type ResultSet string

const (
	SetFollowing         ResultSet = "following"
	SetMentioned         ResultSet = "mentioned"
	SetRecentlyViewed    ResultSet = "recently-viewed"
	SetRecentlyCreated   ResultSet = "recently-created"
	SetRecentlyUpdated   ResultSet = "recently-updated"
	SetRecentlyCompleted ResultSet = "recently-completed"
	SetAssignedToMe      ResultSet = "assigned-to-me"
)

// DefaultResultSet is selected when the view is first shown
const DefaultResultSet = SetRecentlyUpdated

// ResultSets returns every result set in menu order
func ResultSets() []ResultSet {
	return []ResultSet{
		SetFollowing,
		SetMentioned,
		SetRecentlyViewed,
		SetRecentlyCreated,
		SetRecentlyUpdated,
		SetRecentlyCompleted,
		SetAssignedToMe,
	}
}

// ParseResultSet validates a result set name
func ParseResultSet(s string) (ResultSet, bool) {
	for _, rs := range ResultSets() {
		if string(rs) == s {
			return rs, true
		}
	}
	return "", false
}

// Label returns the menu label of the set
func (r ResultSet) Label() string {
	switch r {
	case SetFollowing:
		return "Following"
	case SetMentioned:
		return "Mentioned"
	case SetRecentlyViewed:
		return "Recently viewed"
	case SetRecentlyCreated:
		return "Recently created"
	case SetRecentlyUpdated:
		return "Recently updated"
	case SetRecentlyCompleted:
		return "Recently completed"
	case SetAssignedToMe:
		return "Assigned to me"
	}
	return string(r)
}

// Next returns the set after r in menu order, wrapping around
func (r ResultSet) Next() ResultSet {
	sets := ResultSets()
	for i, rs := range sets {
		if rs == r {
			return sets[(i+1)%len(sets)]
		}
	}
	return DefaultResultSet
}

// Prev returns the set before r in menu order, wrapping around
func (r ResultSet) Prev() ResultSet {
	sets := ResultSets()
	for i, rs := range sets {
		if rs == r {
			return sets[(i+len(sets)-1)%len(sets)]
		}
	}
	return DefaultResultSet
}

// Column identifies one filterable grid column
type Column int

const (
	ColumnID Column = iota
	ColumnTitle
	ColumnAssignedTo
	ColumnState
	ColumnTags
	ColumnCreatedBy
	columnCount
)

// Columns returns the filterable columns in grid order
func Columns() []Column {
	return []Column{ColumnID, ColumnTitle, ColumnAssignedTo, ColumnState, ColumnTags, ColumnCreatedBy}
}

func (c Column) String() string {
	switch c {
	case ColumnID:
		return "ID"
	case ColumnTitle:
		return "Title"
	case ColumnAssignedTo:
		return "Assigned To"
	case ColumnState:
		return "State"
	case ColumnTags:
		return "Tags"
	case ColumnCreatedBy:
		return "Created By"
	}
	return "?"
}

// Source supplies the items of a named result set
type Source interface {
	ResultSet(id string) ([]model.WorkItem, error)
}

// Result is the outcome of applying the predicates to the selected set
type Result struct {
	Set   ResultSet
	Items []model.WorkItem
	Empty bool
}

// Engine holds the selected result set and the six column predicates.
// The zero value is not usable; create one with NewEngine.
type Engine struct {
	source   Source
	selected ResultSet
	text     [columnCount]string
}

// NewEngine creates an engine with the default set selected and every
// predicate empty.
func NewEngine(source Source) *Engine {
	return &Engine{source: source, selected: DefaultResultSet}
}

// Selected returns the active result set
func (e *Engine) Selected() ResultSet {
	return e.selected
}

// Select switches the active result set. Predicate text is kept.
func (e *Engine) Select(set ResultSet) {
	e.selected = set
}

// Set replaces the predicate text of one column
func (e *Engine) Set(col Column, text string) {
	if col < 0 || col >= columnCount {
		return
	}
	e.text[col] = text
}

// Text returns the predicate text of one column
func (e *Engine) Text(col Column) string {
	if col < 0 || col >= columnCount {
		return ""
	}
	return e.text[col]
}

// Clear empties one column's predicate
func (e *Engine) Clear(col Column) {
	e.Set(col, "")
}

// ClearAll empties all six predicates
func (e *Engine) ClearAll() {
	e.text = [columnCount]string{}
}

// HasActive reports whether any predicate is non-empty
func (e *Engine) HasActive() bool {
	for _, t := range e.text {
		if t != "" {
			return true
		}
	}
	return false
}

// Results applies the predicates to the selected set. Item order is the
// set's own order. A set missing from the source yields an empty result.
func (e *Engine) Results() Result {
	items, err := e.source.ResultSet(string(e.selected))
	if err != nil {
		items = nil
	}

	var matched []model.WorkItem
	for _, item := range items {
		if e.Matches(item) {
			matched = append(matched, item)
		}
	}
	return Result{Set: e.selected, Items: matched, Empty: len(matched) == 0}
}

// Matches reports whether an item passes all six predicates
func (e *Engine) Matches(item model.WorkItem) bool {
	return match(item, e.text)
}

// match applies the six column predicates, indexed by Column, to an item.
// Comparison is case-insensitive substring containment. An item with no
// tags passes any tags predicate.
func match(item model.WorkItem, text [columnCount]string) bool {
	if q := text[ColumnID]; q != "" && !contains(item.ID, q) {
		return false
	}
	if q := text[ColumnTitle]; q != "" && !contains(item.Title, q) {
		return false
	}
	if q := text[ColumnAssignedTo]; q != "" && !anyContains(item.AssignedTo, q) {
		return false
	}
	if q := text[ColumnState]; q != "" && !contains(item.Status.Label(), q) {
		return false
	}
	if q := text[ColumnTags]; q != "" && len(item.Tags) > 0 && !anyContains(item.Tags, q) {
		return false
	}
	if q := text[ColumnCreatedBy]; q != "" && !contains(item.CreatedBy, q) {
		return false
	}
	return true
}

func contains(field, query string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}

func anyContains(fields []string, query string) bool {
	for _, f := range fields {
		if contains(f, query) {
			return true
		}
	}
	return false
}
