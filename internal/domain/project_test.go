package domain

import (
	"encoding/json"
	"testing"
)

func TestProject_UnmarshalJSON_SnakeCase(t *testing.T) {
	payload := `{
		"id": "robotics_automation_project_2",
		"title": "Warehouse Robot",
		"difficulty": "advanced",
		"tasks": [{"id": "t1", "title": "Sketch", "order": 1}],
		"skills_required": ["ROS", "Python"],
		"resource_links": [{"title": "ROS docs", "url": "https://docs.ros.org"}],
		"estimated_hours": 12.5
	}`

	var p Project
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if p.ID != "robotics_automation_project_2" {
		t.Errorf("ID = %q", p.ID)
	}
	if len(p.SkillsRequired) != 2 || p.SkillsRequired[0] != "ROS" {
		t.Errorf("SkillsRequired = %v", p.SkillsRequired)
	}
	if len(p.ResourceLinks) != 1 || p.ResourceLinks[0].URL != "https://docs.ros.org" {
		t.Errorf("ResourceLinks = %v", p.ResourceLinks)
	}
	if p.EstimatedHours != 12.5 {
		t.Errorf("EstimatedHours = %v, want 12.5", p.EstimatedHours)
	}
	if got := p.Hours(); got != "12.5" {
		t.Errorf("Hours() = %q, want 12.5", got)
	}
}

func TestProject_UnmarshalJSON_CamelCase(t *testing.T) {
	payload := `{"id": "x", "skillsRequired": ["Go"], "resourceLinks": [{"title": "a", "url": "b"}], "estimatedHours": 8}`

	var p Project
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(p.SkillsRequired) != 1 || p.SkillsRequired[0] != "Go" {
		t.Errorf("SkillsRequired = %v", p.SkillsRequired)
	}
	if len(p.ResourceLinks) != 1 {
		t.Errorf("ResourceLinks = %v", p.ResourceLinks)
	}
	if p.EstimatedHours != 8 {
		t.Errorf("EstimatedHours = %v, want 8", p.EstimatedHours)
	}
}

func TestProject_FractionalHoursSurviveRoundTrip(t *testing.T) {
	in := Project{ID: "x", EstimatedHours: 2.5}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out Project
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if out.EstimatedHours != 2.5 {
		t.Errorf("EstimatedHours = %v, want 2.5", out.EstimatedHours)
	}
	if got := out.Hours(); got != "2.5" {
		t.Errorf("Hours() = %q, want 2.5", got)
	}
}

func TestProject_MarshalRoundTrip(t *testing.T) {
	in := PlaceholderProject("web_dev_project_1")

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out Project
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if out.ID != in.ID || out.Title != in.Title || len(out.Tasks) != len(in.Tasks) {
		t.Errorf("round trip mismatch: got %+v", out)
	}
	if out.EstimatedHours != in.EstimatedHours {
		t.Errorf("EstimatedHours = %v, want %v", out.EstimatedHours, in.EstimatedHours)
	}
}

func TestProject_Normalize(t *testing.T) {
	p := Project{
		Difficulty: "Beginner",
		Tasks: []Task{
			{Title: "First"},
			{ID: "custom", Title: "Second", Order: 7},
		},
	}

	got := p.Normalize("data_science_project_4")

	if got.ID != "data_science_project_4" {
		t.Errorf("ID = %q", got.ID)
	}
	if got.Domain != "data_science" {
		t.Errorf("Domain = %q, want data_science", got.Domain)
	}
	if got.Title != "Data Science Project 4" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Difficulty != DifficultyBeginner {
		t.Errorf("Difficulty = %q", got.Difficulty)
	}
	if got.Tasks[0].ID != "task-1" || got.Tasks[0].Order != 1 {
		t.Errorf("first task = %+v", got.Tasks[0])
	}
	if got.Tasks[1].ID != "custom" || got.Tasks[1].Order != 7 {
		t.Errorf("second task = %+v", got.Tasks[1])
	}
	if got.SkillsRequired == nil || got.ResourceLinks == nil {
		t.Error("expected empty slices instead of nil")
	}
}

func TestProject_Normalize_KeepsOwnID(t *testing.T) {
	got := Project{ID: "project42"}.Normalize("ignored_project_1")

	if got.ID != "project42" {
		t.Errorf("ID = %q, want project42", got.ID)
	}
	if got.Domain != DefaultDomain {
		t.Errorf("Domain = %q, want %q", got.Domain, DefaultDomain)
	}
}

func TestProject_SortedTasks(t *testing.T) {
	p := Project{Tasks: []Task{
		{ID: "c", Order: 3},
		{ID: "a", Order: 1},
		{ID: "b", Order: 2},
	}}

	sorted := p.SortedTasks()

	for i, want := range []string{"a", "b", "c"} {
		if sorted[i].ID != want {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].ID, want)
		}
	}
	if p.Tasks[0].ID != "c" {
		t.Error("SortedTasks modified the original slice")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"beginner", DifficultyBeginner},
		{" ADVANCED ", DifficultyAdvanced},
		{"intermediate", DifficultyIntermediate},
		{"", DifficultyIntermediate},
		{"expert", DifficultyIntermediate},
	}

	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlaceholderProject(t *testing.T) {
	p := PlaceholderProject("robotics_automation_project_2")

	if p.ID != "robotics_automation_project_2" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Domain != "robotics_automation" {
		t.Errorf("Domain = %q", p.Domain)
	}
	if p.Title != "Robotics Automation Project 2" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Description != "This project helps you build skills in Robotics Automation through practical tasks." {
		t.Errorf("Description = %q", p.Description)
	}
	if len(p.Tasks) != 5 {
		t.Fatalf("expected 5 tasks, got %d", len(p.Tasks))
	}
	for i, task := range p.Tasks {
		if task.ID != TaskID(i+1) {
			t.Errorf("task %d id = %q", i, task.ID)
		}
	}
	if p.Tasks[0].Title != "Research and Planning" || p.Tasks[4].Title != "Presentation" {
		t.Errorf("unexpected task titles: %q, %q", p.Tasks[0].Title, p.Tasks[4].Title)
	}
	if p.EstimatedHours != 20 {
		t.Errorf("EstimatedHours = %v", p.EstimatedHours)
	}
}

func TestPlaceholderProject_NoDomain(t *testing.T) {
	p := PlaceholderProject("project42")

	if p.Domain != DefaultDomain {
		t.Errorf("Domain = %q, want %q", p.Domain, DefaultDomain)
	}
	if p.Description != "This project helps you build skills in General through practical tasks." {
		t.Errorf("Description = %q", p.Description)
	}
}

func TestPlaceholderProject_TasksAreIndependent(t *testing.T) {
	a := PlaceholderProject("a_project_1")
	a.Tasks[0].Title = "changed"

	b := PlaceholderProject("b_project_1")
	if b.Tasks[0].Title != "Research and Planning" {
		t.Error("placeholder tasks share backing storage")
	}
}
