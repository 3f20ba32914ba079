package application

import "careerpath/internal/domain"

// Re-export domain types for use by adapters
type (
	Project         = domain.Project
	Task            = domain.Task
	Domain          = domain.Domain
	Progress        = domain.Progress
	ProgressSummary = domain.ProgressSummary
	ProjectRef      = domain.ProjectRef
)

// Storage keys shared by every surface
const (
	ProgressKeyPrefix   = "project_progress_"
	ProjectKeyPrefix    = "project_"
	KeySelectedProject  = "selectedProjectId"
	KeyGeneratedDomains = "generatedDomains"
	KeyIkigaiSummary    = "ikigaiSummary"
)

// ProgressKey is the durable-storage key of a project's task checklist
func ProgressKey(projectID string) string {
	return ProgressKeyPrefix + projectID
}

// ProjectKey is the session-storage key of a resolved project
func ProjectKey(fullID string) string {
	return ProjectKeyPrefix + fullID
}
