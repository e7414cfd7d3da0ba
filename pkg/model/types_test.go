package model

import "testing"

func TestStatusLabels(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		column string
		closed bool
	}{
		{StatusNew, "New", "New", false},
		{StatusActive, "Active", "Working on it", false},
		{StatusStuck, "Stuck", "Stuck", false},
		{StatusDone, "Resolved", "Done", true},
		{StatusCancelled, "Cancelled", "Cancelled", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if !tt.status.IsValid() {
				t.Errorf("%s should be valid", tt.status)
			}
			if got := tt.status.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.status.ColumnTitle(); got != tt.column {
				t.Errorf("ColumnTitle() = %q, want %q", got, tt.column)
			}
			if got := tt.status.IsClosed(); got != tt.closed {
				t.Errorf("IsClosed() = %v, want %v", got, tt.closed)
			}
		})
	}

	if Status("blocked").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestStatusesOrder(t *testing.T) {
	want := []Status{StatusNew, StatusActive, StatusStuck, StatusDone, StatusCancelled}
	got := Statuses()
	if len(got) != len(want) {
		t.Fatalf("expected %d statuses, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Statuses()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWorkItemCloneIsDeep(t *testing.T) {
	orig := WorkItem{
		ID:         "A-1",
		Title:      "Parent",
		AssignedTo: []string{"Ann"},
		Tags:       []string{"x"},
		Status:     StatusNew,
		Children: []WorkItem{
			{ID: "A-1-1", Title: "Child", AssignedTo: []string{"Bo"}, Status: StatusActive},
		},
	}

	clone := orig.Clone()
	clone.AssignedTo[0] = "changed"
	clone.Tags[0] = "changed"
	clone.Children[0].AssignedTo[0] = "changed"

	if orig.AssignedTo[0] != "Ann" || orig.Tags[0] != "x" || orig.Children[0].AssignedTo[0] != "Bo" {
		t.Error("Clone shares backing arrays with the original")
	}
	if !orig.HasChildren() || clone.Children[0].HasChildren() {
		t.Error("HasChildren mismatch")
	}
}

func TestWorkItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    WorkItem
		wantErr bool
	}{
		{"valid", WorkItem{ID: "A", Title: "t", Status: StatusNew}, false},
		{"valid with type", WorkItem{ID: "A", Title: "t", Status: StatusDone, Type: TypeBug}, false},
		{"empty id", WorkItem{Title: "t", Status: StatusNew}, true},
		{"empty title", WorkItem{ID: "A", Status: StatusNew}, true},
		{"bad status", WorkItem{ID: "A", Title: "t", Status: "open"}, true},
		{"bad type", WorkItem{ID: "A", Title: "t", Status: StatusNew, Type: "Story"}, true},
		{"negative comments", WorkItem{ID: "A", Title: "t", Status: StatusNew, CommentsCount: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBoardTopLevelItems(t *testing.T) {
	b := Board{Groups: []Group{
		{ID: "g1", WorkItems: []WorkItem{{ID: "1", Children: []WorkItem{{ID: "1a"}}}, {ID: "2"}}},
		{ID: "g2", WorkItems: []WorkItem{{ID: "3"}}},
	}}
	items := b.TopLevelItems()
	if len(items) != 3 {
		t.Fatalf("expected 3 top-level items, got %d", len(items))
	}
	for i, want := range []string{"1", "2", "3"} {
		if items[i].ID != want {
			t.Errorf("items[%d] = %s, want %s", i, items[i].ID, want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Sarah Johnson":  "SJ",
		"Camal Zeynalli": "CZ",
		"You":            "Y",
		"":               "",
		"  Ann   Lee  ":  "AL",
	}
	for in, want := range tests {
		if got := Initials(in); got != want {
			t.Errorf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}
