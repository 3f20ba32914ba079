package domain

import "testing"

func TestParseProjectID(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		wantDomain    string
		wantHasDomain bool
		wantNumber    string
	}{
		{
			name:          "domain with project marker",
			id:            "a_b_project_3",
			wantDomain:    "a_b",
			wantHasDomain: true,
			wantNumber:    "project_3",
		},
		{
			name:          "long domain with project marker",
			id:            "autonomous_systems_engineering_project_1",
			wantDomain:    "autonomous_systems_engineering",
			wantHasDomain: true,
			wantNumber:    "project_1",
		},
		{
			name:          "robotics example",
			id:            "robotics_automation_project_2",
			wantDomain:    "robotics_automation",
			wantHasDomain: true,
			wantNumber:    "project_2",
		},
		{
			name:       "no separator",
			id:         "project42",
			wantNumber: "project42",
		},
		{
			name:       "empty id",
			id:         "",
			wantNumber: "",
		},
		{
			name:          "no project marker",
			id:            "web_dev_3",
			wantDomain:    "web_dev",
			wantHasDomain: true,
			wantNumber:    "3",
		},
		{
			name:          "bare project marker is not a domain",
			id:            "project_1",
			wantDomain:    "project",
			wantHasDomain: true,
			wantNumber:    "1",
		},
		{
			name:          "trailing separator",
			id:            "robotics_",
			wantDomain:    "robotics",
			wantHasDomain: true,
			wantNumber:    "",
		},
		{
			name:          "only separators",
			id:            "__",
			wantDomain:    "_",
			wantHasDomain: true,
			wantNumber:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ParseProjectID(tt.id)

			if ref.DomainID != tt.wantDomain {
				t.Errorf("DomainID = %q, want %q", ref.DomainID, tt.wantDomain)
			}
			if ref.HasDomain != tt.wantHasDomain {
				t.Errorf("HasDomain = %v, want %v", ref.HasDomain, tt.wantHasDomain)
			}
			if ref.ProjectNumber != tt.wantNumber {
				t.Errorf("ProjectNumber = %q, want %q", ref.ProjectNumber, tt.wantNumber)
			}
		})
	}
}

func TestFormatProjectID_RoundTrip(t *testing.T) {
	tests := []struct {
		domainID      string
		projectNumber string
	}{
		{"robotics_automation", "project_2"},
		{"web_dev", "project_10"},
		{"a", "project_1"},
	}

	for _, tt := range tests {
		id := FormatProjectID(tt.domainID, tt.projectNumber)
		ref := ParseProjectID(id)

		if ref.DomainID != tt.domainID || ref.ProjectNumber != tt.projectNumber {
			t.Errorf("round trip of %q gave %+v", id, ref)
		}
		if ref.String() != id {
			t.Errorf("String() = %q, want %q", ref.String(), id)
		}
	}
}

func TestFormatProjectID_NoDomain(t *testing.T) {
	if got := FormatProjectID("", "project42"); got != "project42" {
		t.Errorf("FormatProjectID() = %q, want project42", got)
	}
}

func TestProjectRef_Candidates(t *testing.T) {
	ref := ParseProjectID("robotics_automation_project_2")
	got := ref.Candidates("robotics_automation_project_2")

	want := []string{"project_2", "robotics_automation_project_2", "robotics_automation_project_2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHumanizeID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"deep_learning_basics", "Deep Learning Basics"},
		{"robotics_automation_project_2", "Robotics Automation Project 2"},
		{"project42", "Project42"},
		{"", "Project"},
		{"a__b", "A  B"},
		{"émile_zola", "Émile Zola"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := HumanizeID(tt.id); got != tt.want {
				t.Errorf("HumanizeID(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
