package fixtures

import "github.com/workboard/wb/pkg/model"

// ResultSets returns the named result sets of the Work Items view keyed by
// set ID. Each set is independent; an item ID may only appear once per set.
func ResultSets() map[string][]model.WorkItem {
	return map[string][]model.WorkItem{
		"following": {
			resultItem("52341", "Implement real-time collaboration features", "Alex Thompson", model.StatusActive, 8, model.TypeFeature, "Sarah Mitchell", "2025-01-15T14:30:00Z", "feature", "realtime", "collaboration"),
			resultItem("52298", "Optimize database query performance for reports", "Jordan Lee", model.StatusActive, 5, model.TypeTask, "Michael Chen", "2025-01-14T09:15:00Z", "performance", "database", "optimization"),
			resultItem("52187", "Fix memory leak in dashboard component", "Emma Wilson", model.StatusStuck, 12, model.TypeBug, "David Park", "2025-01-13T16:45:00Z", "bugfix", "memory", "critical"),
			resultItem("52045", "Add multi-language support for UI", "Carlos Rodriguez", model.StatusActive, 3, model.TypeFeature, "Lisa Anderson", "2025-01-12T11:20:00Z", "i18n", "localization", "UI"),
			resultItem("51923", "Update authentication flow with 2FA", "Nina Patel", model.StatusDone, 7, model.TypeFeature, "Robert Kim", "2025-01-11T13:00:00Z", "security", "auth", "2FA"),
		},
		"mentioned": {
			resultItem("52456", "Review API documentation for v3 release", "Marcus Johnson", model.StatusNew, 2, model.TypeTask, "Jennifer White", "2025-01-16T10:30:00Z", "documentation", "API", "review"),
			resultItem("52389", "Implement webhook notification system", "Sophia Martinez", model.StatusActive, 6, model.TypeFeature, "Thomas Brown", "2025-01-15T15:45:00Z", "webhooks", "notifications", "backend"),
			resultItem("52267", "Fix broken links in help documentation", "Oliver Davis", model.StatusDone, 1, model.TypeBug, "Amanda Garcia", "2025-01-14T08:20:00Z", "documentation", "bugfix"),
			resultItem("52134", "Add export functionality for analytics data", "Isabella Taylor", model.StatusActive, 9, model.TypeFeature, "Kevin Zhang", "2025-01-13T14:10:00Z", "analytics", "export", "feature"),
			resultItem("52012", "Refactor user permissions module", "Ethan Moore", model.StatusActive, 4, model.TypeTask, "Rachel Green", "2025-01-12T09:55:00Z", "refactoring", "permissions", "backend"),
		},
		"recently-viewed": {
			resultItem("52578", "Design new onboarding flow for mobile app", "Ava Robinson", model.StatusActive, 11, model.TypeFeature, "Daniel Scott", "2025-01-17T11:25:00Z", "design", "mobile", "UX"),
			resultItem("52501", "Investigate slow page load times", "Liam Anderson", model.StatusActive, 7, model.TypeBug, "Olivia Harris", "2025-01-16T13:40:00Z", "performance", "investigation"),
			resultItem("52423", "Implement dark mode for settings page", "Mia Thompson", model.StatusDone, 3, model.TypeFeature, "Noah Wilson", "2025-01-15T10:15:00Z", "UI", "dark-mode", "settings"),
			resultItem("52345", "Add unit tests for payment processing", "James Martinez", model.StatusActive, 5, model.TypeTask, "Emma Johnson", "2025-01-14T16:30:00Z", "testing", "payments", "quality"),
			resultItem("52289", "Update third-party dependencies", "Charlotte Lee", model.StatusNew, 0, model.TypeTask, "William Brown", "2025-01-13T12:05:00Z", "maintenance", "dependencies"),
		},
		"recently-created": {
			resultItem("52689", "Create admin dashboard for user management", "Benjamin Clark", model.StatusNew, 0, model.TypeFeature, "Sophia Davis", "2025-01-18T09:00:00Z", "admin", "dashboard", "users"),
			resultItem("52688", "Fix calendar sync issues with Google Calendar", "Amelia Rodriguez", model.StatusNew, 1, model.TypeBug, "Lucas Miller", "2025-01-18T08:45:00Z", "bugfix", "calendar", "integration"),
			resultItem("52687", "Implement file upload with drag and drop", "Harper Garcia", model.StatusNew, 2, model.TypeFeature, "Mason Wilson", "2025-01-18T08:30:00Z", "feature", "upload", "UI"),
			resultItem("52686", "Add search filters for project list", "Evelyn Martinez", model.StatusNew, 0, model.TypeTask, "Logan Anderson", "2025-01-18T08:15:00Z", "search", "filters", "enhancement"),
			resultItem("52685", "Create API endpoint for bulk operations", "Abigail Taylor", model.StatusNew, 3, model.TypeFeature, "Jackson Thomas", "2025-01-18T08:00:00Z", "API", "backend", "bulk"),
		},
		"recently-updated": {
			resultItem("52612", "Migrate legacy codebase to TypeScript", "Sebastian Moore", model.StatusActive, 15, model.TypeTask, "Aria Jackson", "2025-01-17T16:20:00Z", "migration", "typescript", "refactoring"),
			resultItem("52534", "Fix responsive layout issues on tablet", "Henry White", model.StatusActive, 8, model.TypeBug, "Scarlett Harris", "2025-01-17T14:50:00Z", "bugfix", "responsive", "CSS"),
			resultItem("52467", "Add email notification preferences", "Victoria Martin", model.StatusActive, 6, model.TypeFeature, "Alexander Thompson", "2025-01-17T12:35:00Z", "notifications", "email", "settings"),
			resultItem("52398", "Optimize image compression pipeline", "Grace Garcia", model.StatusStuck, 10, model.TypeTask, "Samuel Lee", "2025-01-17T10:10:00Z", "optimization", "images", "performance"),
			resultItem("52321", "Implement rate limiting for API endpoints", "Chloe Rodriguez", model.StatusActive, 4, model.TypeFeature, "Daniel Martinez", "2025-01-16T17:45:00Z", "security", "API", "rate-limiting"),
		},
		"recently-completed": {
			resultItem("52256", "Setup CI/CD pipeline for staging environment", "Matthew Wilson", model.StatusDone, 9, model.TypeTask, "Zoe Anderson", "2025-01-15T18:00:00Z", "DevOps", "CI/CD", "infrastructure"),
			resultItem("52178", "Fix authentication token expiration bug", "Ella Thomas", model.StatusDone, 6, model.TypeBug, "Ryan Taylor", "2025-01-14T15:30:00Z", "bugfix", "auth", "security"),
			resultItem("52089", "Add pagination to search results", "Jack Moore", model.StatusDone, 3, model.TypeFeature, "Hannah Jackson", "2025-01-13T11:45:00Z", "feature", "search", "pagination"),
			resultItem("51967", "Update privacy policy and terms of service", "Lily White", model.StatusDone, 2, model.TypeTask, "Owen Harris", "2025-01-12T14:20:00Z", "legal", "documentation"),
			resultItem("51845", "Implement password strength validator", "Aiden Martin", model.StatusDone, 5, model.TypeFeature, "Nora Thompson", "2025-01-11T09:30:00Z", "security", "validation", "auth"),
		},
		"assigned-to-me": {
			resultItem("52701", "Review code changes for sprint 24", "You", model.StatusActive, 4, model.TypeTask, "Emily Garcia", "2025-01-18T10:30:00Z", "review", "code-review"),
			resultItem("52645", "Fix dropdown menu positioning bug", "You", model.StatusActive, 2, model.TypeBug, "Christopher Lee", "2025-01-17T13:15:00Z", "bugfix", "UI", "dropdown"),
			resultItem("52589", "Implement user activity tracking", "You", model.StatusNew, 0, model.TypeFeature, "Madison Rodriguez", "2025-01-16T11:50:00Z", "analytics", "tracking", "feature"),
			resultItem("52512", "Update component library documentation", "You", model.StatusActive, 7, model.TypeTask, "Elijah Martinez", "2025-01-15T09:25:00Z", "documentation", "components"),
			resultItem("52434", "Optimize bundle size for production build", "You", model.StatusStuck, 11, model.TypeTask, "Avery Wilson", "2025-01-14T14:40:00Z", "optimization", "performance", "build"),
		}}
}

func resultItem(id, title, assignee string, status model.Status, comments int, typ model.WorkItemType, createdBy, activity string, tags ...string) model.WorkItem {
	return model.WorkItem{
		ID:            id,
		Title:         title,
		AssignedTo:    []string{assignee},
		Tags:          tags,
		Status:        status,
		CommentsCount: comments,
		Type:          typ,
		CreatedBy:     createdBy,
		ActivityDate:  activity,
	}
}
