package model

import (
	"fmt"
	"strings"
)

// WorkItem represents a trackable unit of work on a board
type WorkItem struct {
	ID            string       `json:"id" yaml:"id"`
	Title         string       `json:"title" yaml:"title"`
	AssignedTo    []string     `json:"assignedTo" yaml:"assignedTo"`
	Tags          []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Status        Status       `json:"status" yaml:"status"`
	CommentsCount int          `json:"commentsCount" yaml:"commentsCount"`
	Type          WorkItemType `json:"workItemType,omitempty" yaml:"workItemType,omitempty"`
	EmployeeName  string       `json:"employeeName,omitempty" yaml:"employeeName,omitempty"`
	DueDate       string       `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	CreatedBy     string       `json:"createdBy,omitempty" yaml:"createdBy,omitempty"`
	ActivityDate  string       `json:"activityDate,omitempty" yaml:"activityDate,omitempty"`
	Children      []WorkItem   `json:"children,omitempty" yaml:"children,omitempty"`
}

// HasChildren reports whether the item owns at least one child item
func (w WorkItem) HasChildren() bool {
	return len(w.Children) > 0
}

// Clone creates a deep copy of the work item and its children
func (w WorkItem) Clone() WorkItem {
	clone := w

	if w.AssignedTo != nil {
		clone.AssignedTo = make([]string, len(w.AssignedTo))
		copy(clone.AssignedTo, w.AssignedTo)
	}
	if w.Tags != nil {
		clone.Tags = make([]string, len(w.Tags))
		copy(clone.Tags, w.Tags)
	}
	if w.Children != nil {
		clone.Children = make([]WorkItem, len(w.Children))
		for idx, child := range w.Children {
			clone.Children[idx] = child.Clone()
		}
	}

	return clone
}

// Validate checks if the work item data is logically valid.
// Children are not visited; callers walking the tree validate each node.
func (w *WorkItem) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("work item ID cannot be empty")
	}
	if w.Title == "" {
		return fmt.Errorf("work item %s: title cannot be empty", w.ID)
	}
	if !w.Status.IsValid() {
		return fmt.Errorf("work item %s: invalid status: %q", w.ID, w.Status)
	}
	if w.Type != "" && !w.Type.IsValid() {
		return fmt.Errorf("work item %s: invalid work item type: %q", w.ID, w.Type)
	}
	if w.CommentsCount < 0 {
		return fmt.Errorf("work item %s: comments count cannot be negative", w.ID)
	}
	return nil
}

// Status represents the workflow stage of a work item
type Status string

const (
	StatusNew       Status = "new"
	StatusActive    Status = "active"
	StatusStuck     Status = "stuck"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

// Statuses returns every status in display order
func Statuses() []Status {
	return []Status{StatusNew, StatusActive, StatusStuck, StatusDone, StatusCancelled}
}

// IsValid returns true if the status is a recognized value
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusActive, StatusStuck, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Label returns the human-readable label used by the work items grid.
// Done items read as "Resolved".
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusActive:
		return "Active"
	case StatusStuck:
		return "Stuck"
	case StatusDone:
		return "Resolved"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// ColumnTitle returns the kanban column heading for the status
func (s Status) ColumnTitle() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusActive:
		return "Working on it"
	case StatusStuck:
		return "Stuck"
	case StatusDone:
		return "Done"
	case StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// IsClosed returns true for terminal states
func (s Status) IsClosed() bool {
	return s == StatusDone || s == StatusCancelled
}

// WorkItemType categorizes the kind of work
type WorkItemType string

const (
	TypeTask    WorkItemType = "Task"
	TypeBug     WorkItemType = "Bug"
	TypeFeature WorkItemType = "Feature"
	TypeEpic    WorkItemType = "Epic"
)

// IsValid returns true if the work item type is a recognized value
func (t WorkItemType) IsValid() bool {
	switch t {
	case TypeTask, TypeBug, TypeFeature, TypeEpic:
		return true
	}
	return false
}

// Group is a named partition of work items within a board, e.g. a sprint
type Group struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	WorkItems []WorkItem `json:"workItems" yaml:"workItems"`
}

// Clone creates a deep copy of the group
func (g Group) Clone() Group {
	clone := g
	if g.WorkItems != nil {
		clone.WorkItems = make([]WorkItem, len(g.WorkItems))
		for idx, item := range g.WorkItems {
			clone.WorkItems[idx] = item.Clone()
		}
	}
	return clone
}

// Board is a tracked collection of groups scoped to one workspace
type Board struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Image       string  `json:"image" yaml:"image"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	WorkspaceID string  `json:"workspaceId" yaml:"workspaceId"`
	Groups      []Group `json:"groups" yaml:"groups"`
}

// Clone creates a deep copy of the board
func (b Board) Clone() Board {
	clone := b
	if b.Groups != nil {
		clone.Groups = make([]Group, len(b.Groups))
		for idx, group := range b.Groups {
			clone.Groups[idx] = group.Clone()
		}
	}
	return clone
}

// TopLevelItems returns the top-level work items of every group in
// group order. Children are not included.
func (b Board) TopLevelItems() []WorkItem {
	var items []WorkItem
	for _, group := range b.Groups {
		items = append(items, group.WorkItems...)
	}
	return items
}

// Workspace is the top-level container grouping related boards and members
type Workspace struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	CreatedDate string   `json:"createdDate" yaml:"createdDate"`
	Owner       string   `json:"owner" yaml:"owner"`
	Members     []string `json:"members" yaml:"members"`
	Boards      []Board  `json:"boards" yaml:"boards"`
}

// Clone creates a deep copy of the workspace
func (w Workspace) Clone() Workspace {
	clone := w
	if w.Members != nil {
		clone.Members = make([]string, len(w.Members))
		copy(clone.Members, w.Members)
	}
	if w.Boards != nil {
		clone.Boards = make([]Board, len(w.Boards))
		for idx, board := range w.Boards {
			clone.Boards[idx] = board.Clone()
		}
	}
	return clone
}

// FeedItem is an inbox entry: somebody commented on a work item
type FeedItem struct {
	ID           string `json:"id" yaml:"id"`
	User         string `json:"user" yaml:"user"`
	UserAvatar   string `json:"userAvatar" yaml:"userAvatar"`
	WorkItemID   string `json:"workItemId" yaml:"workItemId"`
	WorkItemName string `json:"workItemName" yaml:"workItemName"`
	BoardName    string `json:"boardName" yaml:"boardName"`
	Comment      string `json:"comment" yaml:"comment"`
	Date         string `json:"date" yaml:"date"`
}

// AssignedTask is a task handed to the current user today
type AssignedTask struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	AssignedBy string `json:"assignedBy" yaml:"assignedBy"`
	BoardName  string `json:"boardName" yaml:"boardName"`
	DueDate    string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
}

// Initials returns the first letter of each space-separated word of a name,
// e.g. "Sarah Johnson" -> "SJ".
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return b.String()
}
