package domain

import (
	"fmt"
	"hash/fnv"
	"strings"
)

var postTemplates = []string{
	`Just completed the "%[1]s" task in my %[2]s project! #coding #learning #CareerAI`,
	`Made progress on %[2]s today by finishing the %[1]s task! Feeling accomplished. #programming #CareerAI`,
	`Milestone achieved: Completed %[1]s in my %[2]s project. One step closer to the finish line! #developer #CareerAI`,
	`Just checked off %[1]s from my %[2]s to-do list. Making steady progress! #coding #CareerAI`,
}

// ComposeProgressPost writes the share text for a finished task.
// The template is picked from the task title so the same task always
// produces the same post.
func ComposeProgressPost(projectTitle, taskTitle string) string {
	if taskTitle == "" {
		if projectTitle == "" {
			return "Just completed a task in my project! #CareerAI"
		}
		return fmt.Sprintf("Just completed a task in my %s! #CareerAI", projectTitle)
	}
	if projectTitle == "" {
		projectTitle = "current"
	}

	h := fnv.New32a()
	h.Write([]byte(taskTitle))
	tmpl := postTemplates[h.Sum32()%uint32(len(postTemplates))]

	return fmt.Sprintf(tmpl, taskTitle, projectTitle)
}

// ProgressLine renders a one-line text progress bar, e.g. "[####------] 40% (2/5)"
func ProgressLine(summary ProgressSummary, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := summary.Percent * width / 100
	return fmt.Sprintf("[%s%s] %d%% (%d/%d)",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		summary.Percent, summary.Completed, summary.Total)
}
