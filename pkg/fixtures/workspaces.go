// Package fixtures holds the built-in corpus the viewer starts with when no
// fixtures file is configured. Every function returns freshly built values,
// so callers may keep or modify what they receive without affecting others.
package fixtures

import "github.com/workboard/wb/pkg/model"

// Corpus is the complete fixture graph handed to the store
type Corpus struct {
	Workspaces    []model.Workspace           `json:"workspaces" yaml:"workspaces"`
	Feed          []model.FeedItem            `json:"feed" yaml:"feed"`
	AssignedToday []model.AssignedTask        `json:"assignedToday" yaml:"assignedToday"`
	ResultSets    map[string][]model.WorkItem `json:"resultSets" yaml:"resultSets"`
	Detail        DetailSeed                  `json:"detail" yaml:"detail"`
}

// Default builds the built-in corpus
func Default() Corpus {
	return Corpus{
		Workspaces:    Workspaces(),
		Feed:          Feed(),
		AssignedToday: AssignedToday(),
		ResultSets:    ResultSets(),
		Detail:        Detail(),
	}
}

// Workspaces returns the two built-in workspaces with their boards attached
func Workspaces() []model.Workspace {
	softdev := model.Workspace{
		ID:          "softdev",
		Name:        "Softdev",
		Image:       "/software-development-icon.jpg",
		Description: "Software development workspace for all engineering projects",
		CreatedDate: "2024-01-15",
		Owner:       "John Smith",
		Members:     []string{"John Smith", "Sarah Johnson", "Mike Chen", "Emily Davis"},
	}
	hr := model.Workspace{
		ID:          "hr",
		Name:        "HR",
		Image:       "/human-resources-icon.jpg",
		Description: "Human Resources workspace for recruitment and onboarding",
		CreatedDate: "2024-02-01",
		Owner:       "Lisa Anderson",
		Members:     []string{"Lisa Anderson", "Tom Wilson", "Rachel Green"},
	}

	softdev.Boards = []model.Board{AzDocBoard(), VEISBoard()}
	hr.Boards = []model.Board{RecruitmentBoard(), OnboardingBoard()}

	return []model.Workspace{softdev, hr}
}

// VEISBoard is the main softdev development board. VEIS-101 owns two children.
func VEISBoard() model.Board {
	return model.Board{
		ID:          "veis",
		Name:        "VEIS",
		Image:       "/project-board.jpg",
		Description: "Veteran Employment Information System - Main development board",
		WorkspaceID: "softdev",
		Groups: []model.Group{
			{
				ID:   "sprint1",
				Name: "Sprint 1",
				WorkItems: []model.WorkItem{
					{
						ID:            "VEIS-101",
						Title:         "Implement user authentication",
						AssignedTo:    []string{"Sarah Johnson", "Mike Chen"},
						Tags:          []string{"backend", "security"},
						Status:        model.StatusActive,
						CommentsCount: 5,
						Type:          model.TypeFeature,
						Children: []model.WorkItem{
							{
								ID:            "VEIS-101-1",
								Title:         "Setup JWT tokens",
								AssignedTo:    []string{"Mike Chen"},
								Tags:          []string{"backend"},
								Status:        model.StatusDone,
								CommentsCount: 2,
								Type:          model.TypeTask,
							},
							{
								ID:            "VEIS-101-2",
								Title:         "Create login API",
								AssignedTo:    []string{"Sarah Johnson"},
								Tags:          []string{"backend", "api"},
								Status:        model.StatusActive,
								CommentsCount: 1,
								Type:          model.TypeTask,
							},
						},
					},
					{
						ID:            "VEIS-102",
						Title:         "Design dashboard UI",
						AssignedTo:    []string{"Emily Davis"},
						Tags:          []string{"frontend", "ui"},
						Status:        model.StatusStuck,
						CommentsCount: 3,
						Type:          model.TypeTask,
					},
				},
			},
			{
				ID:   "sprint2",
				Name: "Sprint 2",
				WorkItems: []model.WorkItem{
					{
						ID:            "VEIS-201",
						Title:         "Add data export functionality",
						AssignedTo:    []string{"John Smith"},
						Tags:          []string{"feature", "backend"},
						Status:        model.StatusNew,
						CommentsCount: 1,
						Type:          model.TypeFeature,
					},
					{
						ID:            "VEIS-202",
						Title:         "Optimize database queries",
						AssignedTo:    []string{"Mike Chen", "John Smith"},
						Tags:          []string{"performance", "backend"},
						Status:        model.StatusNew,
						CommentsCount: 0,
						Type:          model.TypeTask,
					},
				},
			},
			{
				ID:   "backlog",
				Name: "Backlog",
				WorkItems: []model.WorkItem{
					{
						ID:            "VEIS-301",
						Title:         "Mobile app development",
						AssignedTo:    []string{"Sarah Johnson"},
						Tags:          []string{"mobile", "frontend"},
						Status:        model.StatusNew,
						CommentsCount: 2,
						Type:          model.TypeEpic,
					},
					{
						ID:            "VEIS-302",
						Title:         "Integration with third-party APIs",
						AssignedTo:    []string{},
						Tags:          []string{"integration", "backend"},
						Status:        model.StatusNew,
						CommentsCount: 0,
						Type:          model.TypeFeature,
					},
				},
			},
		},
	}
}

// AzDocBoard is the softdev documentation portal board
func AzDocBoard() model.Board {
	return model.Board{
		ID:          "azdoc",
		Name:        "AzDoc",
		Image:       "/documentation-project.jpg",
		Description: "Azure Documentation Portal - Technical documentation and guides",
		WorkspaceID: "softdev",
		Groups: []model.Group{
			{
				ID:   "mvp",
				Name: "MVP",
				WorkItems: []model.WorkItem{
					{
						ID:            "AZDOC-101",
						Title:         "Create API documentation",
						AssignedTo:    []string{"Emily Davis"},
						Tags:          []string{"documentation", "api"},
						Status:        model.StatusActive,
						CommentsCount: 4,
						Type:          model.TypeTask,
					},
					{
						ID:            "AZDOC-102",
						Title:         "Setup documentation portal",
						AssignedTo:    []string{"John Smith", "Emily Davis"},
						Tags:          []string{"infrastructure", "documentation"},
						Status:        model.StatusDone,
						CommentsCount: 7,
						Type:          model.TypeTask,
					},
				},
			},
			{
				ID:   "v1",
				Name: "V1",
				WorkItems: []model.WorkItem{
					{
						ID:            "AZDOC-201",
						Title:         "Add code examples",
						AssignedTo:    []string{"Sarah Johnson"},
						Tags:          []string{"documentation", "examples"},
						Status:        model.StatusNew,
						CommentsCount: 1,
						Type:          model.TypeTask,
					},
					{
						ID:            "AZDOC-202",
						Title:         "Create video tutorials",
						AssignedTo:    []string{"Mike Chen"},
						Tags:          []string{"documentation", "video"},
						Status:        model.StatusNew,
						CommentsCount: 0,
						Type:          model.TypeFeature,
					},
				},
			},
			{
				ID:   "v2",
				Name: "V2",
				WorkItems: []model.WorkItem{
					{
						ID:            "AZDOC-301",
						Title:         "Implement search functionality",
						AssignedTo:    []string{"John Smith"},
						Tags:          []string{"feature", "search"},
						Status:        model.StatusNew,
						CommentsCount: 2,
						Type:          model.TypeFeature,
					},
					{
						ID:            "AZDOC-302",
						Title:         "Add multilingual support",
						AssignedTo:    []string{},
						Tags:          []string{"feature", "i18n"},
						Status:        model.StatusNew,
						CommentsCount: 0,
						Type:          model.TypeFeature,
					},
				},
			},
		},
	}
}

// RecruitmentBoard tracks candidates through interviews and offers
func RecruitmentBoard() model.Board {
	return model.Board{
		ID:          "recruitment",
		Name:        "Recruitment",
		Image:       "/recruitment-hiring.jpg",
		Description: "Candidate recruitment and interview tracking",
		WorkspaceID: "hr",
		Groups: []model.Group{
			{
				ID:   "interview",
				Name: "Interview",
				WorkItems: []model.WorkItem{
					hrItem("REC-101", "Senior Developer Interview", model.StatusActive, 3, "Alex Thompson", "2025-11-10", "Lisa Anderson"),
					hrItem("REC-102", "Product Manager Screening", model.StatusActive, 1, "Jordan Lee", "2025-11-08", "Tom Wilson"),
				},
			},
			{
				ID:   "offer-sent",
				Name: "Offer sent",
				WorkItems: []model.WorkItem{
					hrItem("REC-201", "UX Designer Offer", model.StatusStuck, 5, "Sam Martinez", "2025-11-15", "Lisa Anderson", "Rachel Green"),
					hrItem("REC-202", "Data Analyst Offer", model.StatusActive, 2, "Casey Brown", "2025-11-12", "Tom Wilson"),
				},
			},
			{
				ID:   "hired",
				Name: "Hired",
				WorkItems: []model.WorkItem{
					hrItem("REC-301", "Frontend Developer", model.StatusDone, 8, "Morgan Taylor", "2025-11-05", "Rachel Green"),
					hrItem("REC-302", "DevOps Engineer", model.StatusDone, 6, "Riley Johnson", "2025-11-03", "Lisa Anderson"),
				},
			},
		},
	}
}

// OnboardingBoard tracks new employee setup
func OnboardingBoard() model.Board {
	return model.Board{
		ID:          "onboarding",
		Name:        "Onboarding",
		Image:       "/employee-onboarding.jpg",
		Description: "New employee onboarding and setup process",
		WorkspaceID: "hr",
		Groups: []model.Group{
			{
				ID:   "it-setup",
				Name: "IT setup",
				WorkItems: []model.WorkItem{
					hrItem("ONB-101", "Setup laptop and accounts", model.StatusActive, 2, "Morgan Taylor", "2025-11-06", "Tom Wilson"),
					hrItem("ONB-102", "Configure development environment", model.StatusNew, 0, "Riley Johnson", "2025-11-07", "Tom Wilson"),
				},
			},
			{
				ID:   "orientation",
				Name: "Orientation",
				WorkItems: []model.WorkItem{
					hrItem("ONB-201", "Company culture presentation", model.StatusDone, 4, "Morgan Taylor", "2025-11-04", "Lisa Anderson"),
					hrItem("ONB-202", "Team introduction meeting", model.StatusActive, 1, "Riley Johnson", "2025-11-05", "Rachel Green"),
				},
			},
			{
				ID:   "setup",
				Name: "Setup",
				WorkItems: []model.WorkItem{
					hrItem("ONB-301", "Benefits enrollment", model.StatusNew, 0, "Morgan Taylor", "2025-11-10", "Rachel Green"),
					hrItem("ONB-302", "Complete HR paperwork", model.StatusNew, 1, "Riley Johnson", "2025-11-08", "Lisa Anderson"),
				},
			},
		},
	}
}

// hrItem builds an HR work item: no tags or type, but an employee and due date
func hrItem(id, title string, status model.Status, comments int, employee, due string, assignees ...string) model.WorkItem {
	return model.WorkItem{
		ID:            id,
		Title:         title,
		AssignedTo:    assignees,
		Status:        status,
		CommentsCount: comments,
		EmployeeName:  employee,
		DueDate:       due,
	}
}

// Feed returns the inbox entries shown on the home view
func Feed() []model.FeedItem {
	return []model.FeedItem{
		{
			ID:           "feed-1",
			User:         "Roy Mann",
			UserAvatar:   "/diverse-user-avatars.png",
			WorkItemID:   "VEIS-101",
			WorkItemName: "Implement user authentication",
			BoardName:    "VEIS",
			Comment:      "Great progress on the JWT implementation!",
			Date:         "2025-11-02",
		},
		{
			ID:           "feed-2",
			User:         "Sarah Johnson",
			UserAvatar:   "/female-user-avatar.png",
			WorkItemID:   "AZDOC-101",
			WorkItemName: "Create API documentation",
			BoardName:    "AzDoc",
			Comment:      "Can you review the API endpoints section?",
			Date:         "2025-11-01",
		},
	}
}

// AssignedToday returns the tasks assigned to the current user today
func AssignedToday() []model.AssignedTask {
	return []model.AssignedTask{
		{ID: "VEIS-102", Title: "Design dashboard UI", AssignedBy: "John Smith", BoardName: "VEIS"},
		{ID: "AZDOC-101", Title: "Create API documentation", AssignedBy: "Mike Chen", BoardName: "AzDoc"},
		{ID: "ONB-101", Title: "Setup laptop and accounts", AssignedBy: "Lisa Anderson", BoardName: "Onboarding", DueDate: "2025-11-06"},
	}
}
