package forms

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestBoardFormSubmit(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	f := &BoardForm{Name: "   "}
	if f.CanSubmit() || f.Submit(log) {
		t.Fatal("blank name must not submit")
	}
	if buf.Len() != 0 {
		t.Error("blank submit should not log")
	}

	f.Name = "Roadmap"
	f.Description = "Q3"
	f.Members.Selected = []string{"Mike Chen"}
	f.GroupInput = "Sprint 1"
	f.AddGroup()

	if !f.Submit(log) {
		t.Fatal("Submit should succeed with a name")
	}
	out := buf.String()
	for _, want := range []string{`"message":"create board"`, `"name":"Roadmap"`, `"Mike Chen"`, `"Sprint 1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %s missing %s", out, want)
		}
	}
	if f.Name != "" || len(f.Groups) != 0 || len(f.Members.Selected) != 0 {
		t.Error("form should reset after submit")
	}
}

func TestBoardFormGroups(t *testing.T) {
	f := &BoardForm{}

	tests := []struct {
		input string
		added bool
	}{
		{"  Sprint 1 ", true},
		{"Sprint 1", false},
		{"   ", false},
		{"Backlog", true},
	}
	for _, tt := range tests {
		f.GroupInput = tt.input
		if got := f.AddGroup(); got != tt.added {
			t.Errorf("AddGroup(%q) = %v, want %v", tt.input, got, tt.added)
		}
	}
	if len(f.Groups) != 2 || f.Groups[0] != "Sprint 1" || f.Groups[1] != "Backlog" {
		t.Errorf("Groups = %v", f.Groups)
	}
	if f.GroupInput != "" {
		t.Error("AddGroup should clear the input")
	}
}

func TestMemberPicker(t *testing.T) {
	var p MemberPicker
	if got := len(p.Candidates()); got != len(AvailableMembers) {
		t.Fatalf("empty search should list all members, got %d", got)
	}

	p.Search = "SON"
	got := p.Candidates()
	want := []string{"Sarah Johnson", "Lisa Anderson", "Tom Wilson", "Alex Thompson"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Candidates(SON) = %v, want %v", got, want)
	}

	p.Selected = []string{"Sarah Johnson"}
	p.Search = "son"
	if got := p.Candidates(); len(got) != 3 || got[0] != "Lisa Anderson" {
		t.Errorf("selected members should be excluded, got %v", got)
	}

	listed := p.Listed()
	if len(listed) != 4 || listed[0] != "Sarah Johnson" || listed[1] != "Lisa Anderson" {
		t.Errorf("Listed should keep selected members ahead of candidates, got %v", listed)
	}
	p.Search = "zz"
	if listed := p.Listed(); len(listed) != 1 {
		t.Errorf("a search with no candidates should still list the selection, got %v", listed)
	}
}

func TestWorkspaceFormSubmit(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	f := &WorkspaceForm{}
	if f.Submit(log) {
		t.Fatal("empty name must not submit")
	}
	f.Name = "Design"
	if !f.Submit(log) {
		t.Fatal("Submit should succeed")
	}
	if !strings.Contains(buf.String(), "create workspace") {
		t.Errorf("missing intent log: %s", buf.String())
	}
	if f.Name != "" {
		t.Error("form should reset")
	}
}
