package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "projectID" -> "project ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"projectID":     "project ID",
		"taskID":        "task ID",
		"domainID":      "domain ID",
		"ikigaiSummary": "ikigai summary",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateTaskID checks that a task belongs to the given project.
// Projects without tasks accept any id.
func ValidateTaskID(p *Project, taskID string) error {
	if err := ValidateRequired("taskID", taskID); err != nil {
		return err
	}
	if p == nil || len(p.Tasks) == 0 {
		return nil
	}
	for _, t := range p.Tasks {
		if t.ID == taskID {
			return nil
		}
	}
	return &ValidationError{
		Field:   "taskID",
		Message: fmt.Sprintf("project %s has no task %s", p.ID, taskID),
	}
}
