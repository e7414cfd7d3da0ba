package model

// Comment is a discussion entry shown in the work item detail overlay
type Comment struct {
	ID        string    `json:"id" yaml:"id"`
	User      string    `json:"user" yaml:"user"`
	Initials  string    `json:"userInitials" yaml:"userInitials"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp string    `json:"timestamp" yaml:"timestamp"`
	Replies   []Comment `json:"replies,omitempty" yaml:"replies,omitempty"`
}

// Clone creates a deep copy of the comment and its replies
func (c Comment) Clone() Comment {
	clone := c
	if c.Replies != nil {
		clone.Replies = make([]Comment, len(c.Replies))
		for idx, reply := range c.Replies {
			clone.Replies[idx] = reply.Clone()
		}
	}
	return clone
}

// Attachment describes a file attached to a work item
type Attachment struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Size       string `json:"size" yaml:"size"`
	UploadedBy string `json:"uploadedBy" yaml:"uploadedBy"`
	UploadedAt string `json:"uploadedAt" yaml:"uploadedAt"`
}

// Note is a short free-text remark on a work item
type Note struct {
	ID        string `json:"id" yaml:"id"`
	Content   string `json:"content" yaml:"content"`
	CreatedBy string `json:"createdBy" yaml:"createdBy"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// LinkedWorkItem references a related work item by display fields only
type LinkedWorkItem struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Type   string `json:"type" yaml:"type"`
	Status string `json:"status" yaml:"status"`
}

// HistoryEntry is one line of a work item's change log
type HistoryEntry struct {
	ID        string `json:"id" yaml:"id"`
	User      string `json:"user" yaml:"user"`
	Initials  string `json:"userInitials" yaml:"userInitials"`
	Action    string `json:"action" yaml:"action"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Details   string `json:"details,omitempty" yaml:"details,omitempty"`
}
