package fixtures

import "github.com/workboard/wb/pkg/model"

// PlaceholderDescription is shown in the description editor of every opened
// work item; the model carries no description of its own.
const PlaceholderDescription = "Implement a feature for users to view their donation history."

// DetailSeed is the fixed activity data every detail overlay starts from
type DetailSeed struct {
	Description string                 `json:"description" yaml:"description"`
	Comments    []model.Comment        `json:"comments" yaml:"comments"`
	Attachments []model.Attachment     `json:"attachments" yaml:"attachments"`
	Notes       []model.Note           `json:"notes" yaml:"notes"`
	LinkedItems []model.LinkedWorkItem `json:"linkedItems" yaml:"linkedItems"`
	History     []model.HistoryEntry   `json:"history" yaml:"history"`
}

// Clone creates a deep copy of the seed
func (s DetailSeed) Clone() DetailSeed {
	clone := s
	if s.Comments != nil {
		clone.Comments = make([]model.Comment, len(s.Comments))
		for idx, comment := range s.Comments {
			clone.Comments[idx] = comment.Clone()
		}
	}
	clone.Attachments = append([]model.Attachment(nil), s.Attachments...)
	clone.Notes = append([]model.Note(nil), s.Notes...)
	clone.LinkedItems = append([]model.LinkedWorkItem(nil), s.LinkedItems...)
	clone.History = append([]model.HistoryEntry(nil), s.History...)
	return clone
}

// Detail returns the built-in detail seed
func Detail() DetailSeed {
	return DetailSeed{
		Description: PlaceholderDescription,
		Comments: []model.Comment{
			{
				ID:        "c1",
				User:      "Camal Zeynalli",
				Initials:  "CZ",
				Content:   "Salam",
				Timestamp: "13 minutes ago",
				Replies: []model.Comment{
					{
						ID:        "c1-r1",
						User:      "Camal Zeynalli",
						Initials:  "CZ",
						Content:   "@Camal Zeynalli aleykum salam",
						Timestamp: "13 minutes ago",
					},
				},
			},
		},
		Attachments: []model.Attachment{
			{ID: "a1", Name: "design-mockup.fig", Type: "Figma", Size: "2.4 MB", UploadedBy: "Sarah Johnson", UploadedAt: "2025-01-15"},
			{ID: "a2", Name: "requirements.pdf", Type: "PDF", Size: "856 KB", UploadedBy: "Mike Chen", UploadedAt: "2025-01-14"},
		},
		Notes: []model.Note{
			{ID: "n1", Content: "Need to coordinate with backend team for API changes", CreatedBy: "Emily Davis", CreatedAt: "2025-01-16"},
			{ID: "n2", Content: "Consider mobile responsiveness in the design", CreatedBy: "John Smith", CreatedAt: "2025-01-15"},
		},
		LinkedItems: []model.LinkedWorkItem{
			{ID: "WI-4521", Title: "Update API documentation", Type: "Task", Status: "In Progress"},
			{ID: "WI-4498", Title: "Fix authentication bug", Type: "Bug", Status: "Done"},
			{ID: "WI-4567", Title: "Add unit tests for new features", Type: "Task", Status: "To Do"},
		},
		History: []model.HistoryEntry{
			{ID: "h1", User: "Sarah Johnson", Initials: "SJ", Action: "changed status from", Timestamp: "2 hours ago", Details: "To Do → In Progress"},
			{ID: "h2", User: "Mike Chen", Initials: "MC", Action: "assigned to", Timestamp: "5 hours ago", Details: "Camal Zeynalli"},
			{ID: "h3", User: "Emily Davis", Initials: "ED", Action: "changed priority from", Timestamp: "1 day ago", Details: "None → High"},
			{ID: "h4", User: "John Smith", Initials: "JS", Action: "added tag", Timestamp: "2 days ago", Details: "Backend"},
			{ID: "h5", User: "Camal Zeynalli", Initials: "CZ", Action: "created this work item", Timestamp: "3 days ago"},
		},
	}
}
