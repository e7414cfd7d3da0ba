// Package forms holds the state of the "create board" and "create
// workspace" forms. Submitting only records the intent in the log; no
// entity is created.
package forms

import (
	"strings"

	"github.com/rs/zerolog"
)

// AvailableMembers is the fixed directory offered by the member picker
var AvailableMembers = []string{
	"John Smith",
	"Sarah Johnson",
	"Mike Chen",
	"Emily Davis",
	"Lisa Anderson",
	"Tom Wilson",
	"Rachel Green",
	"Alex Thompson",
	"Jordan Lee",
	"Sam Martinez",
}

// MemberPicker is the searchable member multi-select shared by both
// forms. Search narrows the unselected members; Selected keeps pick order.
type MemberPicker struct {
	Search   string
	Selected []string
}

// Candidates returns the members matching Search (case-insensitive
// substring) that are not selected yet, in directory order.
func (p *MemberPicker) Candidates() []string {
	query := strings.ToLower(p.Search)
	var out []string
	for _, m := range AvailableMembers {
		if p.isSelected(m) {
			continue
		}
		if strings.Contains(strings.ToLower(m), query) {
			out = append(out, m)
		}
	}
	return out
}

// Listed is what the picker shows: selected members first, then the
// candidates for the current search.
func (p *MemberPicker) Listed() []string {
	out := append([]string(nil), p.Selected...)
	return append(out, p.Candidates()...)
}

func (p *MemberPicker) isSelected(member string) bool {
	for _, m := range p.Selected {
		if m == member {
			return true
		}
	}
	return false
}

// BoardForm is the state of the create board form
type BoardForm struct {
	Name        string
	Description string
	Members     MemberPicker
	Groups      []string
	GroupInput  string
}

// CanSubmit reports whether the create button is enabled
func (f *BoardForm) CanSubmit() bool {
	return strings.TrimSpace(f.Name) != ""
}

// AddGroup appends the trimmed group input unless it is blank or already
// listed, then clears the input.
func (f *BoardForm) AddGroup() bool {
	group := strings.TrimSpace(f.GroupInput)
	if group == "" {
		return false
	}
	for _, g := range f.Groups {
		if g == group {
			return false
		}
	}
	f.Groups = append(f.Groups, group)
	f.GroupInput = ""
	return true
}

// Submit logs the creation intent and resets the form. With a blank name
// it does nothing and returns false.
func (f *BoardForm) Submit(log zerolog.Logger) bool {
	if !f.CanSubmit() {
		return false
	}
	log.Info().
		Str("name", f.Name).
		Str("description", f.Description).
		Strs("members", f.Members.Selected).
		Strs("groups", f.Groups).
		Msg("create board")
	*f = BoardForm{}
	return true
}

// WorkspaceForm is the state of the create workspace form
type WorkspaceForm struct {
	Name        string
	Description string
	Members     MemberPicker
}

// CanSubmit reports whether the create button is enabled
func (f *WorkspaceForm) CanSubmit() bool {
	return strings.TrimSpace(f.Name) != ""
}

// Submit logs the creation intent and resets the form. With a blank name
// it does nothing and returns false.
func (f *WorkspaceForm) Submit(log zerolog.Logger) bool {
	if !f.CanSubmit() {
		return false
	}
	log.Info().
		Str("name", f.Name).
		Str("description", f.Description).
		Strs("members", f.Members.Selected).
		Msg("create workspace")
	*f = WorkspaceForm{}
	return true
}
