package domain

import (
	"strings"
	"testing"
)

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"two of five", 2, 5, 40},
		{"none", 0, 5, 0},
		{"all", 5, 5, 100},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"no tasks", 3, 0, 0},
		{"clamped", 9, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPercent(tt.completed, tt.total); got != tt.want {
				t.Errorf("CompletionPercent(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestProgress_Completed(t *testing.T) {
	p := Progress{"task-1": true, "task-2": false, "task-3": true}

	if got := p.Completed(); got != 2 {
		t.Errorf("Completed() = %d, want 2", got)
	}
	if got := p.Percent(5); got != 40 {
		t.Errorf("Percent(5) = %d, want 40", got)
	}
}

func TestSummarize(t *testing.T) {
	project := PlaceholderProject("web_dev_project_1")
	progress := Progress{
		"task-1":  true,
		"task-2":  true,
		"orphan":  true, // not part of the project
		"task-3":  false,
		"task-99": true,
	}

	s := Summarize(project, progress)

	if s.Completed != 2 || s.Total != 5 || s.Percent != 40 {
		t.Errorf("summary = %+v", s)
	}
	if s.Next == nil || s.Next.ID != "task-3" {
		t.Errorf("Next = %+v, want task-3", s.Next)
	}
}

func TestSummarize_IgnoresEntriesPercentCounts(t *testing.T) {
	project := PlaceholderProject("web_dev_project_1")
	progress := Progress{"task-1": true, "task-old": true}

	if got := progress.Percent(len(project.Tasks)); got != 40 {
		t.Errorf("Percent = %d, want 40 (raw count)", got)
	}
	if s := Summarize(project, progress); s.Completed != 1 || s.Percent != 20 {
		t.Errorf("summary = %+v, want 1 done at 20%%", s)
	}
}

func TestSummarize_AllDone(t *testing.T) {
	project := PlaceholderProject("web_dev_project_1")
	progress := Progress{}
	for _, task := range project.Tasks {
		progress[task.ID] = true
	}

	s := Summarize(project, progress)

	if s.Percent != 100 || s.Next != nil {
		t.Errorf("summary = %+v", s)
	}
}

func TestComposeProgressPost(t *testing.T) {
	post := ComposeProgressPost("Warehouse Robot", "Core Implementation")

	if !strings.Contains(post, "Warehouse Robot") || !strings.Contains(post, "Core Implementation") {
		t.Errorf("post missing titles: %q", post)
	}
	if !strings.Contains(post, "#CareerAI") {
		t.Errorf("post missing hashtag: %q", post)
	}
	if again := ComposeProgressPost("Warehouse Robot", "Core Implementation"); again != post {
		t.Errorf("post not stable: %q vs %q", post, again)
	}
}

func TestComposeProgressPost_Empty(t *testing.T) {
	tests := []struct {
		project string
		task    string
		want    string
	}{
		{"Robot", "", "Just completed a task in my Robot! #CareerAI"},
		{"", "", "Just completed a task in my project! #CareerAI"},
	}

	for _, tt := range tests {
		if got := ComposeProgressPost(tt.project, tt.task); got != tt.want {
			t.Errorf("ComposeProgressPost(%q, %q) = %q, want %q", tt.project, tt.task, got, tt.want)
		}
	}
}

func TestProgressLine(t *testing.T) {
	got := ProgressLine(ProgressSummary{Completed: 2, Total: 5, Percent: 40}, 10)

	want := "[####------] 40% (2/5)"
	if got != want {
		t.Errorf("ProgressLine() = %q, want %q", got, want)
	}
}
