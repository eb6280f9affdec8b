package catalog

import (
	"sort"
	"testing"

	"learnhub/internal/models"
)

func TestCourseByID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantFound bool
		wantTitle string
	}{
		{name: "known course", id: "web-dev-101", wantFound: true, wantTitle: "Web Development Fundamentals"},
		{name: "unknown course", id: "nope", wantFound: false},
		{name: "empty id", id: "", wantFound: false},
		{name: "case sensitive", id: "WEB-DEV-101", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, found := CourseByID(tt.id)
			if found != tt.wantFound {
				t.Fatalf("CourseByID(%q) found = %v, want %v", tt.id, found, tt.wantFound)
			}
			if found && c.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", c.Title, tt.wantTitle)
			}
		})
	}
}

func TestCoursesAreCopies(t *testing.T) {
	first := Courses()
	first[0].Title = "mutated"
	first[0].Materials[0].Title = "mutated"

	again := Courses()
	if again[0].Title == "mutated" || again[0].Materials[0].Title == "mutated" {
		t.Error("Courses() exposes the underlying catalog")
	}
	if len(again) != 4 {
		t.Errorf("len(Courses()) = %d, want 4", len(again))
	}
}

func TestAcademicByLevelPartitionsCatalog(t *testing.T) {
	all := AcademicCourses()
	total := 0
	for _, level := range []models.EducationLevel{models.LevelPrimary, models.LevelHighschool, models.LevelAdvanced} {
		courses := AcademicByLevel(level)
		for _, c := range courses {
			if c.EducationLevel != level {
				t.Errorf("%s returned course %s with level %s", level, c.ID, c.EducationLevel)
			}
		}
		total += len(courses)
	}
	if total != len(all) {
		t.Errorf("levels cover %d courses, catalog has %d", total, len(all))
	}
	if got := AcademicByLevel("university"); len(got) != 0 {
		t.Errorf("unknown level returned %d courses", len(got))
	}
}

func TestAcademicByCareerPath(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{path: "Medicine", want: 2},
		{path: "Business Administration", want: 2},
		{path: "medicine", want: 0},
		{path: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := AcademicByCareerPath(tt.path)
			if len(got) != tt.want {
				t.Errorf("AcademicByCareerPath(%q) returned %d, want %d", tt.path, len(got), tt.want)
			}
		})
	}
}

func TestCareerPathsDistinctSorted(t *testing.T) {
	paths := CareerPaths()
	if !sort.StringsAreSorted(paths) {
		t.Errorf("CareerPaths() not sorted: %v", paths)
	}
	seen := map[string]bool{}
	for _, p := range paths {
		if p == "" {
			t.Error("CareerPaths() contains an empty path")
		}
		if seen[p] {
			t.Errorf("CareerPaths() repeats %q", p)
		}
		seen[p] = true
	}
	if len(paths) != 11 {
		t.Errorf("len(CareerPaths()) = %d, want 11", len(paths))
	}
}

func TestProgrammingFilters(t *testing.T) {
	if got := len(ProgrammingCourses()); got != 11 {
		t.Errorf("len(ProgrammingCourses()) = %d, want 11", got)
	}
	for _, c := range ProgrammingByLanguage(models.LanguagePython) {
		if c.Language != models.LanguagePython {
			t.Errorf("python filter returned %s", c.ID)
		}
	}
	if got := len(ProgrammingByLevel(models.LevelPrimary)); got != 3 {
		t.Errorf("primary programming courses = %d, want 3", got)
	}
	if got := ProgrammingByLanguage("rust"); got == nil || len(got) != 0 {
		t.Errorf("unknown language should give an empty non-nil list, got %v", got)
	}
}
