package domain

import "math"

// Progress maps task ids to their completion flag.
// A task without an entry is incomplete.
type Progress map[string]bool

// Completed counts the tasks marked done
func (p Progress) Completed() int {
	n := 0
	for _, done := range p {
		if done {
			n++
		}
	}
	return n
}

// Percent returns completion as a whole percentage of totalTasks.
// Every true entry counts, whether or not totalTasks includes its task.
func (p Progress) Percent(totalTasks int) int {
	return CompletionPercent(p.Completed(), totalTasks)
}

// CompletionPercent rounds completed/total to the nearest whole percent
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	if completed > total {
		completed = total
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// ProgressSummary describes how far along a project is
type ProgressSummary struct {
	Completed int
	Total     int
	Percent   int
	Next      *Task // first incomplete task in display order, nil when done
}

// Summarize computes a project's progress summary.
// Only entries for tasks that belong to the project count, so stale ids
// left over from an older task list are ignored. Progress.Percent counts
// every true entry and can disagree when such ids are present; the
// surfaces all render from Summarize.
func Summarize(p Project, progress Progress) ProgressSummary {
	summary := ProgressSummary{Total: len(p.Tasks)}

	for _, t := range p.SortedTasks() {
		if progress[t.ID] {
			summary.Completed++
			continue
		}
		if summary.Next == nil {
			next := t
			summary.Next = &next
		}
	}

	summary.Percent = CompletionPercent(summary.Completed, summary.Total)
	return summary
}
