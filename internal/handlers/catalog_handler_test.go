package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub/internal/catalog"
	"learnhub/internal/models"
)

func catalogMux() *http.ServeMux {
	h := NewCatalogHandler(nil)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/catalog/courses", h.ListCourses)
	mux.HandleFunc("GET /api/catalog/courses/{id}", h.GetCourse)
	mux.HandleFunc("GET /api/catalog/academic", h.ListAcademic)
	mux.HandleFunc("GET /api/catalog/academic/career-paths", h.CareerPaths)
	mux.HandleFunc("GET /api/catalog/programming", h.ListProgramming)
	return mux
}

func getJSON(t *testing.T, mux http.Handler, target string, v interface{}) int {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if v != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
			t.Fatalf("GET %s: %v", target, err)
		}
	}
	return rec.Code
}

func TestCatalogCourses(t *testing.T) {
	mux := catalogMux()

	var courses []models.CatalogCourse
	if code := getJSON(t, mux, "/api/catalog/courses", &courses); code != http.StatusOK || len(courses) != len(catalog.Courses()) {
		t.Fatalf("list = %d, %d courses", code, len(courses))
	}

	var course models.CatalogCourse
	if code := getJSON(t, mux, "/api/catalog/courses/"+courses[0].ID, &course); code != http.StatusOK || course.ID != courses[0].ID {
		t.Errorf("detail = %d, %+v", code, course)
	}
	if code := getJSON(t, mux, "/api/catalog/courses/does-not-exist", nil); code != http.StatusNotFound {
		t.Errorf("unknown course status = %d", code)
	}
}

func TestCatalogAcademicFilters(t *testing.T) {
	mux := catalogMux()

	var all []models.AcademicCourse
	getJSON(t, mux, "/api/catalog/academic", &all)
	if len(all) != len(catalog.AcademicCourses()) {
		t.Fatalf("unfiltered = %d courses", len(all))
	}

	var primary []models.AcademicCourse
	getJSON(t, mux, "/api/catalog/academic?level=primary", &primary)
	for _, c := range primary {
		if c.EducationLevel != models.LevelPrimary {
			t.Errorf("level filter returned %s", c.EducationLevel)
		}
	}

	var paths []string
	getJSON(t, mux, "/api/catalog/academic/career-paths", &paths)
	if len(paths) == 0 {
		t.Fatal("no career paths")
	}

	var combined []models.AcademicCourse
	getJSON(t, mux, "/api/catalog/academic?level=advanced&career_path="+paths[0], &combined)
	want := 0
	for _, c := range catalog.AcademicByCareerPath(paths[0]) {
		if c.EducationLevel == models.LevelAdvanced {
			want++
		}
	}
	if len(combined) != want {
		t.Errorf("combined filter = %d courses, want %d", len(combined), want)
	}
}

func TestCatalogProgrammingFilters(t *testing.T) {
	mux := catalogMux()

	var python []models.ProgrammingCourse
	getJSON(t, mux, "/api/catalog/programming?language=python", &python)
	if len(python) != len(catalog.ProgrammingByLanguage(models.LanguagePython)) {
		t.Errorf("python = %d courses", len(python))
	}
	for _, c := range python {
		if c.Language != models.LanguagePython {
			t.Errorf("language filter returned %s", c.Language)
		}
	}

	var none []models.ProgrammingCourse
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/programming?language=cobol", nil))
	if err := json.Unmarshal(rec.Body.Bytes(), &none); err != nil || none == nil || len(none) != 0 {
		t.Errorf("unknown language should give an empty array, got %s", rec.Body.String())
	}
}
