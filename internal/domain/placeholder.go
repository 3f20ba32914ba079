package domain

import "fmt"

// placeholderTasks is the fixed checklist attached to synthesized projects
var placeholderTasks = []Task{
	{Title: "Research and Planning", Description: "Research the domain and plan your approach."},
	{Title: "Core Implementation", Description: "Implement the main functionality of your project."},
	{Title: "Testing and Refinement", Description: "Test your implementation and refine as needed."},
	{Title: "Documentation", Description: "Document your project thoroughly."},
	{Title: "Presentation", Description: "Prepare a presentation of your completed project."},
}

const placeholderHours = 20

// PlaceholderProject builds the default project shown when nothing could be resolved
func PlaceholderProject(id string) Project {
	ref := ParseProjectID(id)

	domainID := DefaultDomain
	domainName := "General"
	if ref.HasDomain && ref.DomainID != "" {
		domainID = ref.DomainID
		domainName = HumanizeID(ref.DomainID)
	}

	tasks := make([]Task, len(placeholderTasks))
	for i, t := range placeholderTasks {
		t.ID = TaskID(i + 1)
		t.Order = i + 1
		tasks[i] = t
	}

	return Project{
		ID:             id,
		Domain:         domainID,
		Title:          HumanizeID(id),
		Description:    fmt.Sprintf("This project helps you build skills in %s through practical tasks.", domainName),
		Difficulty:     DifficultyIntermediate,
		Tasks:          tasks,
		SkillsRequired: []string{"Problem Solving", "Critical Thinking"},
		ResourceLinks: []ResourceLink{
			{Title: "Learning Resources", URL: "https://example.com/resources"},
			{Title: "Best Practices", URL: "https://example.com/best-practices"},
		},
		EstimatedHours: placeholderHours,
	}
}
