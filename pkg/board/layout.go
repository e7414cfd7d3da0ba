package board

import (
	"github.com/workboard/wb/pkg/filter"
	"github.com/workboard/wb/pkg/model"
)

// TableColumn identifies one column of the table view
type TableColumn int

const (
	ColItem TableColumn = iota
	ColPerson
	ColEmployee
	ColType
	ColTags
	ColStatus
	ColDueDate
	ColComments
)

func (c TableColumn) String() string {
	switch c {
	case ColItem:
		return "Item"
	case ColPerson:
		return "Person"
	case ColEmployee:
		return "Employee Name"
	case ColType:
		return "Type"
	case ColTags:
		return "Tags"
	case ColStatus:
		return "Status"
	case ColDueDate:
		return "Due Date"
	case ColComments:
		return "Comments"
	}
	return "?"
}

// Columns returns the table columns drawn for vis, left to right
func Columns(vis Visibility) []TableColumn {
	cols := []TableColumn{ColItem, ColPerson}
	if vis.EmployeeName {
		cols = append(cols, ColEmployee)
	}
	if vis.Type {
		cols = append(cols, ColType)
	}
	if vis.Tags {
		cols = append(cols, ColTags)
	}
	cols = append(cols, ColStatus)
	if vis.DueDate {
		cols = append(cols, ColDueDate)
	}
	return append(cols, ColComments)
}

// Bucket is one kanban column
type Bucket struct {
	Status model.Status
	Items  []model.WorkItem
}

// Title returns the column heading
func (b Bucket) Title() string {
	return b.Status.ColumnTitle()
}

// PartitionByStatus splits items into five buckets in the fixed status
// order. Within a bucket items keep their input order. Children are not
// visited.
func PartitionByStatus(items []model.WorkItem) []Bucket {
	statuses := model.Statuses()
	buckets := make([]Bucket, len(statuses))
	pos := make(map[model.Status]int, len(statuses))
	for i, s := range statuses {
		buckets[i] = Bucket{Status: s}
		pos[s] = i
	}
	for _, item := range items {
		i, ok := pos[item.Status]
		if !ok {
			continue
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}
	return buckets
}

// State is the view state owned by the board page, above the view switch
type State struct {
	Expansion Expansion
	Collapse  Collapse
	Filter    *filter.Engine
}

// Layout is the tagged result of Render; exactly one of the concrete
// layout types below.
type Layout interface {
	Kind() ViewKind
}

// GroupSection is one group of the table view
type GroupSection struct {
	Group     model.Group
	Index     int
	Collapsed bool
	Rows      []Row // empty while collapsed
}

// TableLayout is the grouped, expandable table
type TableLayout struct {
	Columns  []TableColumn
	Sections []GroupSection
}

func (TableLayout) Kind() ViewKind { return ViewTable }

// KanbanLayout is the five-column status board
type KanbanLayout struct {
	Visibility Visibility
	Buckets    []Bucket
}

func (KanbanLayout) Kind() ViewKind { return ViewKanban }

// WorkItemsLayout is the filterable grid over a named result set
type WorkItemsLayout struct {
	Result    filter.Result
	HasActive bool
}

func (WorkItemsLayout) Kind() ViewKind { return ViewWorkItems }

// Render builds the layout for the selected view
func Render(kind ViewKind, b model.Board, vis Visibility, state State) Layout {
	switch kind {
	case ViewKanban:
		return renderKanban(b, vis)
	case ViewWorkItems:
		return renderWorkItems(state.Filter)
	default:
		return renderTable(b, vis, state)
	}
}

func renderTable(b model.Board, vis Visibility, state State) TableLayout {
	layout := TableLayout{Columns: Columns(vis)}
	for i, g := range b.Groups {
		section := GroupSection{Group: g, Index: i, Collapsed: state.Collapse.IsCollapsed(g.ID)}
		if !section.Collapsed {
			section.Rows = FlattenRows(g.WorkItems, state.Expansion, 0)
		}
		layout.Sections = append(layout.Sections, section)
	}
	return layout
}

func renderKanban(b model.Board, vis Visibility) KanbanLayout {
	return KanbanLayout{Visibility: vis, Buckets: PartitionByStatus(b.TopLevelItems())}
}

func renderWorkItems(engine *filter.Engine) WorkItemsLayout {
	if engine == nil {
		return WorkItemsLayout{Result: filter.Result{Empty: true}}
	}
	return WorkItemsLayout{Result: engine.Results(), HasActive: engine.HasActive()}
}
