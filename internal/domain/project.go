package domain

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Difficulty is the advertised effort level of a project
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty maps free text onto a known difficulty, defaulting to intermediate
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyBeginner:
		return DifficultyBeginner
	case DifficultyAdvanced:
		return DifficultyAdvanced
	default:
		return DifficultyIntermediate
	}
}

// ResourceLink is an external learning reference attached to a project
type ResourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Task is a single checklist step of a project
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"` // display order only, not an index
}

// Project is a structured learning unit with ordered tasks
type Project struct {
	ID             string         `json:"id"`
	Domain         string         `json:"domain"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Difficulty     Difficulty     `json:"difficulty"`
	Tasks          []Task         `json:"tasks"`
	SkillsRequired []string       `json:"skills_required"`
	ResourceLinks  []ResourceLink `json:"resource_links"`
	EstimatedHours float64        `json:"estimated_hours,omitempty"`
}

// UnmarshalJSON accepts both the backend's snake_case payload and the
// camelCase shape older clients cached.
func (p *Project) UnmarshalJSON(data []byte) error {
	type alias Project
	var raw struct {
		alias
		SkillsRequiredCamel []string       `json:"skillsRequired"`
		ResourceLinksCamel  []ResourceLink `json:"resourceLinks"`
		EstimatedHoursCamel *float64       `json:"estimatedHours"`
		EstimatedHoursFloat *float64       `json:"estimated_hours"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Project(raw.alias)
	if len(p.SkillsRequired) == 0 {
		p.SkillsRequired = raw.SkillsRequiredCamel
	}
	if len(p.ResourceLinks) == 0 {
		p.ResourceLinks = raw.ResourceLinksCamel
	}
	switch {
	case raw.EstimatedHoursFloat != nil:
		p.EstimatedHours = *raw.EstimatedHoursFloat
	case raw.EstimatedHoursCamel != nil:
		p.EstimatedHours = *raw.EstimatedHoursCamel
	}
	return nil
}

// Hours formats the estimate without trailing zeros, e.g. "12.5" or "20".
func (p *Project) Hours() string {
	return strconv.FormatFloat(p.EstimatedHours, 'f', -1, 64)
}

// SortedTasks returns a copy of the tasks ordered for display
func (p *Project) SortedTasks() []Task {
	tasks := slices.Clone(p.Tasks)
	slices.SortStableFunc(tasks, func(a, b Task) int {
		return a.Order - b.Order
	})
	return tasks
}

// Normalize folds a project into its canonical shape.
// fallbackID is used when the payload carries no id of its own.
func (p Project) Normalize(fallbackID string) Project {
	if p.ID == "" {
		p.ID = fallbackID
	}
	if p.Domain == "" {
		ref := ParseProjectID(p.ID)
		if ref.HasDomain {
			p.Domain = ref.DomainID
		} else {
			p.Domain = DefaultDomain
		}
	}
	if p.Title == "" {
		p.Title = HumanizeID(p.ID)
	}
	p.Difficulty = ParseDifficulty(string(p.Difficulty))

	tasks := make([]Task, 0, len(p.Tasks))
	for i, t := range p.Tasks {
		if t.ID == "" {
			t.ID = TaskID(i + 1)
		}
		if t.Order == 0 {
			t.Order = i + 1
		}
		tasks = append(tasks, t)
	}
	p.Tasks = tasks

	if p.SkillsRequired == nil {
		p.SkillsRequired = []string{}
	}
	if p.ResourceLinks == nil {
		p.ResourceLinks = []ResourceLink{}
	}
	return p
}

// Domain is a career or subject-matter category generated from an ikigai summary
type Domain struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Icon           string   `json:"icon,omitempty"`
	Color          string   `json:"color,omitempty"`
	RequiredSkills []string `json:"required_skills"`
	JobTitles      []string `json:"job_titles"`
}
