package filter

import (
	"errors"
	"testing"

	"github.com/workboard/wb/pkg/loader"
	"github.com/workboard/wb/pkg/model"
)

type mapSource map[string][]model.WorkItem

func (m mapSource) ResultSet(id string) ([]model.WorkItem, error) {
	items, ok := m[id]
	if !ok {
		return nil, errors.New("missing")
	}
	return items, nil
}

func testSource() mapSource {
	return mapSource{
		string(SetRecentlyUpdated): {
			{ID: "100", Title: "Fix login", AssignedTo: []string{"Ann Lee"}, Tags: []string{"auth"}, Status: model.StatusActive, CreatedBy: "Bo"},
			{ID: "101", Title: "Ship docs", AssignedTo: []string{"Cy Dunn", "Ann Lee"}, Status: model.StatusDone},
			{ID: "200", Title: "Untagged login work", AssignedTo: []string{}, Status: model.StatusNew, CreatedBy: "Ann"},
		},
		string(SetFollowing): {
			{ID: "300", Title: "Other set", AssignedTo: []string{"Zed"}, Tags: []string{"x"}, Status: model.StatusStuck},
		},
	}
}

func ids(items []model.WorkItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEngineDefaults(t *testing.T) {
	e := NewEngine(testSource())
	if e.Selected() != SetRecentlyUpdated {
		t.Errorf("default set = %s, want %s", e.Selected(), SetRecentlyUpdated)
	}
	if e.HasActive() {
		t.Error("new engine should have no active predicates")
	}
	res := e.Results()
	if got := ids(res.Items); !equalIDs(got, []string{"100", "101", "200"}) {
		t.Errorf("unfiltered results = %v", got)
	}
	if res.Empty {
		t.Error("unfiltered result should not be empty")
	}
}

func TestEnginePredicates(t *testing.T) {
	tests := []struct {
		name string
		col  Column
		text string
		want []string
	}{
		{"id substring", ColumnID, "10", []string{"100", "101"}},
		{"title case-insensitive", ColumnTitle, "LOGIN", []string{"100", "200"}},
		{"any assignee", ColumnAssignedTo, "ann", []string{"100", "101"}},
		{"done reads as resolved", ColumnState, "resolv", []string{"101"}},
		{"done does not match done", ColumnState, "done", nil},
		{"untagged items pass tags", ColumnTags, "auth", []string{"100", "101", "200"}},
		{"tags exclude tagged mismatch", ColumnTags, "zzz", []string{"101", "200"}},
		{"missing creator never matches", ColumnCreatedBy, "bo", []string{"100"}},
		{"creator substring", ColumnCreatedBy, "an", []string{"200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(testSource())
			e.Set(tt.col, tt.text)
			got := ids(e.Results().Items)
			if !equalIDs(got, tt.want) {
				t.Errorf("Set(%s, %q) results = %v, want %v", tt.col, tt.text, got, tt.want)
			}
		})
	}
}

func TestEnginePredicatesCombine(t *testing.T) {
	e := NewEngine(testSource())
	e.Set(ColumnAssignedTo, "ann")
	e.Set(ColumnState, "active")
	if got := ids(e.Results().Items); !equalIDs(got, []string{"100"}) {
		t.Errorf("combined results = %v, want [100]", got)
	}
}

func TestEngineClear(t *testing.T) {
	e := NewEngine(testSource())
	e.Set(ColumnID, "1")
	e.Set(ColumnTitle, "fix")
	if !e.HasActive() {
		t.Fatal("expected active predicates")
	}

	e.Clear(ColumnTitle)
	if e.Text(ColumnTitle) != "" || e.Text(ColumnID) != "1" {
		t.Error("Clear should reset only the named column")
	}
	if !e.HasActive() {
		t.Error("ID predicate should still be active")
	}

	e.Set(ColumnTags, "x")
	e.ClearAll()
	for _, col := range Columns() {
		if e.Text(col) != "" {
			t.Errorf("ClearAll left %s = %q", col, e.Text(col))
		}
	}
	if e.HasActive() {
		t.Error("HasActive should be false after ClearAll")
	}
}

func TestEngineEmptyResult(t *testing.T) {
	e := NewEngine(testSource())
	e.Set(ColumnID, "nothing-matches")
	res := e.Results()
	if !res.Empty || len(res.Items) != 0 {
		t.Errorf("expected empty result, got %v", ids(res.Items))
	}
}

func TestEngineSelectKeepsPredicates(t *testing.T) {
	e := NewEngine(testSource())
	e.Set(ColumnAssignedTo, "zed")
	if !e.Results().Empty {
		t.Fatal("no recently-updated item is assigned to zed")
	}

	e.Select(SetFollowing)
	res := e.Results()
	if res.Set != SetFollowing {
		t.Errorf("Result.Set = %s, want %s", res.Set, SetFollowing)
	}
	if got := ids(res.Items); !equalIDs(got, []string{"300"}) {
		t.Errorf("following results = %v, want [300]", got)
	}
	if e.Text(ColumnAssignedTo) != "zed" {
		t.Error("Select should not reset predicates")
	}

	// A set with no items in the source is just empty
	e.Select(SetMentioned)
	if !e.Results().Empty {
		t.Error("missing set should produce an empty result")
	}
}

func TestResultSetMenu(t *testing.T) {
	sets := ResultSets()
	if len(sets) != 7 {
		t.Fatalf("expected 7 result sets, got %d", len(sets))
	}
	labels := []string{"Following", "Mentioned", "Recently viewed", "Recently created", "Recently updated", "Recently completed", "Assigned to me"}
	for i, rs := range sets {
		if rs.Label() != labels[i] {
			t.Errorf("%s label = %q, want %q", rs, rs.Label(), labels[i])
		}
	}

	if SetAssignedToMe.Next() != SetFollowing {
		t.Error("Next should wrap to the first set")
	}
	if SetFollowing.Prev() != SetAssignedToMe {
		t.Error("Prev should wrap to the last set")
	}

	if rs, ok := ParseResultSet("mentioned"); !ok || rs != SetMentioned {
		t.Errorf("ParseResultSet(mentioned) = %s, %v", rs, ok)
	}
	if _, ok := ParseResultSet("starred"); ok {
		t.Error("ParseResultSet should reject unknown names")
	}
}

func TestEngineOverBuiltInStore(t *testing.T) {
	store := loader.Default()
	e := NewEngine(store)

	for _, rs := range ResultSets() {
		e.Select(rs)
		if got := len(e.Results().Items); got != 5 {
			t.Errorf("%s: expected 5 items, got %d", rs, got)
		}
	}

	e.Select(SetRecentlyCompleted)
	e.Set(ColumnState, "Resolved")
	if got := len(e.Results().Items); got != 5 {
		t.Errorf("all recently completed items are resolved, got %d", got)
	}
}
