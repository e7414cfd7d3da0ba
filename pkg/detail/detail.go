// Package detail holds the state of the work item detail overlay. The state
// lives only while the overlay is open: nothing is written back to the
// store, and reopening an item starts again from the seed.
package detail

import (
	"fmt"
	"strings"

	"github.com/workboard/wb/pkg/fixtures"
	"github.com/workboard/wb/pkg/model"
)

// Author fields stamped on comments added from the overlay
const (
	LocalUser     = "You"
	LocalInitials = "YO"
	JustNow       = "Just now"
)

// Tab selects the activity panel
type Tab int

const (
	TabAll Tab = iota
	TabComments
	TabHistory
	TabAttachments
)

// Tabs returns every tab in display order
func Tabs() []Tab {
	return []Tab{TabAll, TabComments, TabHistory, TabAttachments}
}

func (t Tab) String() string {
	switch t {
	case TabAll:
		return "All"
	case TabComments:
		return "Comments"
	case TabHistory:
		return "History"
	case TabAttachments:
		return "Attachments"
	}
	return "?"
}

// State is the overlay bound to at most one work item
type State struct {
	item        *model.WorkItem
	description string
	comments    []model.Comment
	attachments []model.Attachment
	notes       []model.Note
	linked      []model.LinkedWorkItem
	history     []model.HistoryEntry
	tab         Tab
	following   bool
}

// Open binds the overlay to item, starting from a fresh copy of seed.
// A nil item yields an unbound overlay.
func Open(item *model.WorkItem, seed fixtures.DetailSeed) *State {
	if item == nil {
		return &State{}
	}
	bound := item.Clone()
	s := seed.Clone()
	desc := s.Description
	if desc == "" {
		desc = fixtures.PlaceholderDescription
	}
	return &State{
		item:        &bound,
		description: desc,
		comments:    s.Comments,
		attachments: s.Attachments,
		notes:       s.Notes,
		linked:      s.LinkedItems,
		history:     s.History,
		tab:         TabComments,
	}
}

// Bound reports whether the overlay has an item
func (s *State) Bound() bool {
	return s != nil && s.item != nil
}

// Item returns the bound item, or nil
func (s *State) Item() *model.WorkItem {
	if !s.Bound() {
		return nil
	}
	return s.item
}

// Description returns the description buffer
func (s *State) Description() string { return s.description }

// SetDescription replaces the description buffer
func (s *State) SetDescription(text string) {
	if !s.Bound() {
		return
	}
	s.description = text
}

// Comments returns the comment list in insertion order
func (s *State) Comments() []model.Comment { return s.comments }

// Attachments returns the attachment list
func (s *State) Attachments() []model.Attachment { return s.attachments }

// Notes returns the notes list
func (s *State) Notes() []model.Note { return s.notes }

// LinkedItems returns the related work items
func (s *State) LinkedItems() []model.LinkedWorkItem { return s.linked }

// History returns the change log
func (s *State) History() []model.HistoryEntry { return s.history }

// Tab returns the active activity tab
func (s *State) Tab() Tab { return s.tab }

// SetTab switches the activity tab
func (s *State) SetTab(t Tab) {
	switch t {
	case TabAll, TabComments, TabHistory, TabAttachments:
		s.tab = t
	}
}

// NextTab cycles through the activity tabs
func (s *State) NextTab() {
	s.tab = (s.tab + 1) % Tab(len(Tabs()))
}

// Following reports the follow toggle
func (s *State) Following() bool { return s.following }

// ToggleFollow flips the follow toggle
func (s *State) ToggleFollow() {
	s.following = !s.following
}

// AddComment appends a comment authored by the local user. Text that is
// empty after trimming is ignored and false is returned. The stored content
// keeps the text as typed.
func (s *State) AddComment(text string) bool {
	if !s.Bound() || strings.TrimSpace(text) == "" {
		return false
	}
	s.comments = append(s.comments, model.Comment{
		ID:        fmt.Sprintf("c%d", len(s.comments)+1),
		User:      LocalUser,
		Initials:  LocalInitials,
		Content:   text,
		Timestamp: JustNow,
	})
	return true
}

// StripMention removes a leading "@Name " mention from reply content when
// it names the parent comment's author.
func StripMention(content, author string) string {
	return strings.TrimPrefix(content, "@"+author+" ")
}
