package analysis

import (
	"math"
	"testing"

	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/model"
)

func mustBoard(t *testing.T, ws, id string) model.Board {
	t.Helper()
	b, err := loader.Default().Board(ws, id)
	if err != nil {
		t.Fatalf("Board(%s, %s): %v", ws, id, err)
	}
	return b
}

func TestComputeBoardStatsVEIS(t *testing.T) {
	stats := ComputeBoardStats(mustBoard(t, "softdev", "veis"))

	if stats.TopLevel != 6 || stats.AllItems != 8 {
		t.Errorf("TopLevel/AllItems = %d/%d, want 6/8", stats.TopLevel, stats.AllItems)
	}

	wantStatus := map[model.Status]int{
		model.StatusNew:       4,
		model.StatusActive:    1,
		model.StatusStuck:     1,
		model.StatusDone:      0,
		model.StatusCancelled: 0,
	}
	for status, want := range wantStatus {
		if got := stats.StatusCount(status); got != want {
			t.Errorf("StatusCount(%s) = %d, want %d", status, got, want)
		}
	}
	if len(stats.ByStatus) != 5 || stats.ByStatus[0].Status != model.StatusNew {
		t.Error("ByStatus should follow kanban order")
	}
	if stats.Completion != 0 {
		t.Errorf("Completion = %v, want 0", stats.Completion)
	}

	if stats.Comments.Total != 14 {
		t.Errorf("Comments.Total = %d, want 14", stats.Comments.Total)
	}
	if math.Abs(stats.Comments.Mean-1.75) > 1e-9 {
		t.Errorf("Comments.Mean = %v, want 1.75", stats.Comments.Mean)
	}
	if stats.Comments.Max != 5 || stats.Comments.Busiest != "VEIS-101" {
		t.Errorf("busiest = %s with %v", stats.Comments.Busiest, stats.Comments.Max)
	}
	if stats.Comments.StdDev <= 0 {
		t.Error("StdDev should be positive")
	}

	wantLoad := []AssigneeLoad{{"Mike Chen", 3}, {"Sarah Johnson", 3}, {"John Smith", 2}, {"Emily Davis", 1}}
	if len(stats.Assignees) != len(wantLoad) {
		t.Fatalf("Assignees = %v", stats.Assignees)
	}
	for i, want := range wantLoad {
		if stats.Assignees[i] != want {
			t.Errorf("Assignees[%d] = %v, want %v", i, stats.Assignees[i], want)
		}
	}
	if stats.Unassigned != 1 {
		t.Errorf("Unassigned = %d, want 1", stats.Unassigned)
	}

	if len(stats.Groups) != 3 || stats.Groups[0].Name != "Sprint 1" || stats.Groups[0].Items != 2 {
		t.Errorf("unexpected groups %+v", stats.Groups)
	}
	if stats.Tags.TopTags[0] != "backend" || stats.Tags.Stats["backend"].Total != 6 {
		t.Errorf("backend should lead the tags: %v", stats.Tags.TopTags)
	}
}

func TestComputeBoardStatsCompletion(t *testing.T) {
	stats := ComputeBoardStats(mustBoard(t, "softdev", "azdoc"))
	if math.Abs(stats.Completion-1.0/6.0) > 1e-9 {
		t.Errorf("Completion = %v, want 1/6", stats.Completion)
	}

	hr := ComputeBoardStats(mustBoard(t, "hr", "recruitment"))
	if hr.Tags.Untagged != 6 || len(hr.Tags.Tags) != 0 {
		t.Errorf("recruitment items carry no tags: %+v", hr.Tags)
	}
	if hr.StatusCount(model.StatusDone) != 2 {
		t.Errorf("recruitment done = %d, want 2", hr.StatusCount(model.StatusDone))
	}
}

func TestComputeBoardStatsEmpty(t *testing.T) {
	stats := ComputeBoardStats(model.Board{ID: "empty"})
	if stats.TopLevel != 0 || stats.Completion != 0 || stats.Comments.Total != 0 {
		t.Errorf("empty board stats = %+v", stats)
	}
	if len(stats.ByStatus) != 5 {
		t.Error("empty board should still report five statuses")
	}
}

func TestExtractTags(t *testing.T) {
	items := []model.WorkItem{
		{ID: "1", Tags: []string{"a", "b", "a"}, Status: model.StatusNew, Type: model.TypeBug},
		{ID: "2", Tags: []string{"b", ""}, Status: model.StatusDone},
		{ID: "3", Status: model.StatusNew},
	}
	res := ExtractTags(items)

	if res.ItemCount != 3 || res.Untagged != 1 {
		t.Errorf("ItemCount/Untagged = %d/%d", res.ItemCount, res.Untagged)
	}
	if len(res.Tags) != 2 || res.Tags[0] != "a" || res.Tags[1] != "b" {
		t.Errorf("Tags = %v", res.Tags)
	}
	if res.TopTags[0] != "b" {
		t.Errorf("TopTags = %v, want b first", res.TopTags)
	}
	a := res.Stats["a"]
	if a.Total != 1 || a.ByType[model.TypeBug] != 1 {
		t.Errorf("duplicate tag on one item should count once: %+v", a)
	}
	b := res.Stats["b"]
	if b.Open != 1 || b.Closed != 1 {
		t.Errorf("b open/closed = %d/%d", b.Open, b.Closed)
	}

	empty := ExtractTags(nil)
	if empty.Tags == nil || empty.TopTags == nil || len(empty.Stats) != 0 {
		t.Error("empty extraction should return initialized collections")
	}
}

func TestTagCooccurrence(t *testing.T) {
	items := []model.WorkItem{
		{ID: "1", Tags: []string{"backend", "api"}},
		{ID: "2", Tags: []string{"backend", "api", "security"}},
		{ID: "3", Tags: []string{"frontend"}},
	}
	cooc := TagCooccurrence(items)
	if cooc["backend"]["api"] != 2 || cooc["api"]["backend"] != 2 {
		t.Errorf("backend/api = %d", cooc["backend"]["api"])
	}
	if cooc["security"]["backend"] != 1 {
		t.Errorf("security/backend = %d", cooc["security"]["backend"])
	}
	if _, ok := cooc["frontend"]; ok {
		t.Error("a lone tag has no co-occurrences")
	}

	pairs := TopTagPairs(items)
	want := []TagPair{{"api", "backend", 2}, {"api", "security", 1}, {"backend", "security", 1}}
	if len(pairs) != len(want) {
		t.Fatalf("TopTagPairs = %+v", pairs)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, pairs[i], want[i])
		}
	}
}

func TestComputeBoardStatsTagPairs(t *testing.T) {
	stats := ComputeBoardStats(mustBoard(t, "softdev", "veis"))
	if len(stats.TagPairs) != 7 {
		t.Fatalf("expected 7 tag pairs, got %+v", stats.TagPairs)
	}
	if first := stats.TagPairs[0]; first.A != "api" || first.B != "backend" || first.Count != 1 {
		t.Errorf("first pair = %+v", first)
	}
}
