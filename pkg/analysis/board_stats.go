// Package analysis computes summary statistics over a board for the stats
// panel and the plain-text report.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/workboard/wb/pkg/board"
	"github.com/workboard/wb/pkg/model"
)

// StatusCount is the number of top-level items in one status
type StatusCount struct {
	Status model.Status `json:"status"`
	Count  int          `json:"count"`
}

// GroupStats summarizes one group
type GroupStats struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Items  int    `json:"items"`  // top-level items
	Closed int    `json:"closed"` // done or cancelled
}

// CommentStats describes the comment load across every item on the board
type CommentStats struct {
	Total   int     `json:"total"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Max     float64 `json:"max"`
	Busiest string  `json:"busiest"` // ID of the item with the most comments
}

// AssigneeLoad is how many items one person is assigned to
type AssigneeLoad struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BoardStats is the full summary of a board
type BoardStats struct {
	BoardID    string         `json:"board_id"`
	TopLevel   int            `json:"top_level"`
	AllItems   int            `json:"all_items"` // children included
	ByStatus   []StatusCount  `json:"by_status"` // kanban order
	Groups     []GroupStats   `json:"groups"`
	Tags       TagExtraction  `json:"tags"`
	TagPairs   []TagPair      `json:"tag_pairs"`
	Comments   CommentStats   `json:"comments"`
	Assignees  []AssigneeLoad `json:"assignees"`
	Unassigned int            `json:"unassigned"`
	Completion float64        `json:"completion"` // share of top-level items that are closed
}

// ComputeBoardStats summarizes a board. Status counts and completion use
// the top-level items, matching the kanban; tag, comment and assignee
// figures include nested items.
func ComputeBoardStats(b model.Board) BoardStats {
	top := b.TopLevelItems()
	all := flatten(top)

	result := BoardStats{
		BoardID:  b.ID,
		TopLevel: len(top),
		AllItems: len(all),
		Tags:     ExtractTags(all),
		TagPairs: TopTagPairs(all),
	}

	closed := 0
	for _, bucket := range board.PartitionByStatus(top) {
		result.ByStatus = append(result.ByStatus, StatusCount{Status: bucket.Status, Count: len(bucket.Items)})
		if bucket.Status.IsClosed() {
			closed += len(bucket.Items)
		}
	}
	if len(top) > 0 {
		result.Completion = float64(closed) / float64(len(top))
	}

	for _, g := range b.Groups {
		gs := GroupStats{ID: g.ID, Name: g.Name, Items: len(g.WorkItems)}
		for _, item := range g.WorkItems {
			if item.Status.IsClosed() {
				gs.Closed++
			}
		}
		result.Groups = append(result.Groups, gs)
	}

	result.Comments = commentStats(all)
	result.Assignees, result.Unassigned = assigneeLoad(all)
	return result
}

// StatusCount returns the count for one status
func (s BoardStats) StatusCount(status model.Status) int {
	for _, sc := range s.ByStatus {
		if sc.Status == status {
			return sc.Count
		}
	}
	return 0
}

func flatten(items []model.WorkItem) []model.WorkItem {
	var out []model.WorkItem
	for _, item := range items {
		out = append(out, item)
		out = append(out, flatten(item.Children)...)
	}
	return out
}

func commentStats(items []model.WorkItem) CommentStats {
	if len(items) == 0 {
		return CommentStats{}
	}

	counts := make([]float64, len(items))
	var cs CommentStats
	for i, item := range items {
		counts[i] = float64(item.CommentsCount)
		cs.Total += item.CommentsCount
	}

	cs.Mean = stat.Mean(counts, nil)
	if len(counts) > 1 {
		cs.StdDev = stat.StdDev(counts, nil)
	}
	maxIdx := floats.MaxIdx(counts)
	cs.Max = counts[maxIdx]
	cs.Busiest = items[maxIdx].ID
	return cs
}

func assigneeLoad(items []model.WorkItem) ([]AssigneeLoad, int) {
	counts := make(map[string]int)
	unassigned := 0
	for _, item := range items {
		if len(item.AssignedTo) == 0 {
			unassigned++
			continue
		}
		for _, person := range item.AssignedTo {
			counts[person]++
		}
	}

	loads := make([]AssigneeLoad, 0, len(counts))
	for name, n := range counts {
		loads = append(loads, AssigneeLoad{Name: name, Count: n})
	}
	sort.Slice(loads, func(i, j int) bool {
		if loads[i].Count != loads[j].Count {
			return loads[i].Count > loads[j].Count
		}
		return loads[i].Name < loads[j].Name
	})
	return loads, unassigned
}
