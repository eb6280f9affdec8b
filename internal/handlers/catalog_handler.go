package handlers

import (
	"net/http"

	"learnhub/internal/catalog"
	"learnhub/internal/logger"
	"learnhub/internal/models"
)

// CatalogHandler serves the static course catalogs
type CatalogHandler struct {
	log *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(log *logger.Logger) *CatalogHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &CatalogHandler{log: log}
}

// ListCourses handles GET /api/catalog/courses
func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Courses())
}

// GetCourse handles GET /api/catalog/courses/{id}
func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := catalog.CourseByID(r.PathValue("id"))
	if !ok {
		respondWithError(w, h.log, http.StatusNotFound, "Course not found", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, course)
}

// ListAcademic handles GET /api/catalog/academic. Both filters are optional
// and combine.
func (h *CatalogHandler) ListAcademic(w http.ResponseWriter, r *http.Request) {
	level := models.EducationLevel(r.URL.Query().Get("level"))
	careerPath := r.URL.Query().Get("career_path")

	var courses []models.AcademicCourse
	switch {
	case careerPath != "":
		courses = catalog.AcademicByCareerPath(careerPath)
	case level != "":
		courses = catalog.AcademicByLevel(level)
	default:
		courses = catalog.AcademicCourses()
	}
	if careerPath != "" && level != "" {
		filtered := courses[:0:0]
		for _, c := range courses {
			if c.EducationLevel == level {
				filtered = append(filtered, c)
			}
		}
		courses = filtered
	}
	if courses == nil {
		courses = []models.AcademicCourse{}
	}
	respondJSON(w, http.StatusOK, courses)
}

// CareerPaths handles GET /api/catalog/academic/career-paths
func (h *CatalogHandler) CareerPaths(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.CareerPaths())
}

// ListProgramming handles GET /api/catalog/programming
func (h *CatalogHandler) ListProgramming(w http.ResponseWriter, r *http.Request) {
	level := models.EducationLevel(r.URL.Query().Get("level"))
	language := models.Language(r.URL.Query().Get("language"))

	var courses []models.ProgrammingCourse
	switch {
	case language != "":
		courses = catalog.ProgrammingByLanguage(language)
	case level != "":
		courses = catalog.ProgrammingByLevel(level)
	default:
		courses = catalog.ProgrammingCourses()
	}
	if language != "" && level != "" {
		filtered := courses[:0:0]
		for _, c := range courses {
			if c.EducationLevel == level {
				filtered = append(filtered, c)
			}
		}
		courses = filtered
	}
	if courses == nil {
		courses = []models.ProgrammingCourse{}
	}
	respondJSON(w, http.StatusOK, courses)
}
