package domain

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// IDSeparator joins the tokens of a composite project id
	IDSeparator = "_"

	// projectToken marks the start of the project-number part in ids like "robotics_project_2"
	projectToken = "project"

	// DefaultDomain is used for projects whose id carries no domain
	DefaultDomain = "general"
)

// ProjectRef is the parsed form of a composite project id
type ProjectRef struct {
	DomainID      string // e.g., "robotics_automation"
	HasDomain     bool
	ProjectNumber string // e.g., "project_2"
}

// ParseProjectID splits a composite id into domain and project-number parts.
// It never fails; malformed input yields a best-effort result.
//
//	"robotics_automation_project_2" -> {robotics_automation, project_2}
//	"web_dev_3"                     -> {web_dev, 3}
//	"project42"                     -> {no domain, project42}
func ParseProjectID(fullID string) ProjectRef {
	if !strings.Contains(fullID, IDSeparator) {
		return ProjectRef{ProjectNumber: fullID}
	}

	parts := strings.Split(fullID, IDSeparator)
	n := len(parts)

	if n >= 3 && parts[n-2] == projectToken {
		return ProjectRef{
			DomainID:      strings.Join(parts[:n-2], IDSeparator),
			HasDomain:     true,
			ProjectNumber: projectToken + IDSeparator + parts[n-1],
		}
	}

	return ProjectRef{
		DomainID:      strings.Join(parts[:n-1], IDSeparator),
		HasDomain:     true,
		ProjectNumber: parts[n-1],
	}
}

// String formats the ref back into a composite id
func (r ProjectRef) String() string {
	return FormatProjectID(r.DomainID, r.ProjectNumber)
}

// FormatProjectID is the inverse of ParseProjectID for well-formed parts
func FormatProjectID(domainID, projectNumber string) string {
	if domainID == "" {
		return projectNumber
	}
	return domainID + IDSeparator + projectNumber
}

// Candidates lists the ids a domain listing may use for this project,
// most specific match first.
func (r ProjectRef) Candidates(fullID string) []string {
	return []string{r.ProjectNumber, r.String(), fullID}
}

// HumanizeID turns an underscore-separated id into a title
//
//	"deep_learning_basics" -> "Deep Learning Basics"
func HumanizeID(id string) string {
	if id == "" {
		return "Project"
	}

	words := strings.Split(id, IDSeparator)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// TaskID returns the id used for the nth (1-based) generated task
func TaskID(n int) string {
	return "task-" + strconv.Itoa(n)
}
