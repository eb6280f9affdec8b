// Package catalog holds the fixed course catalogs shown on the home,
// academic and programming pages. The data never changes at runtime and
// every accessor hands out copies.
package catalog

import (
	"sort"

	"learnhub/internal/models"
)

// Courses returns the general catalog in display order
func Courses() []models.CatalogCourse {
	out := make([]models.CatalogCourse, len(generalCourses))
	for i, c := range generalCourses {
		out[i] = copyCourse(c)
	}
	return out
}

// CourseByID looks up a general course. The bool is false when no course has that id.
func CourseByID(id string) (models.CatalogCourse, bool) {
	for _, c := range generalCourses {
		if c.ID == id {
			return copyCourse(c), true
		}
	}
	return models.CatalogCourse{}, false
}

func copyCourse(c models.CatalogCourse) models.CatalogCourse {
	c.Materials = append([]models.Material(nil), c.Materials...)
	return c
}

// AcademicCourses returns the academic catalog in declaration order
func AcademicCourses() []models.AcademicCourse {
	return filterAcademic(func(models.AcademicCourse) bool { return true })
}

// AcademicByLevel returns academic courses of the given education level
func AcademicByLevel(level models.EducationLevel) []models.AcademicCourse {
	return filterAcademic(func(c models.AcademicCourse) bool { return c.EducationLevel == level })
}

// AcademicByCareerPath returns academic courses whose career path equals path exactly.
// An empty path matches nothing.
func AcademicByCareerPath(path string) []models.AcademicCourse {
	if path == "" {
		return []models.AcademicCourse{}
	}
	return filterAcademic(func(c models.AcademicCourse) bool { return c.CareerPath == path })
}

// CareerPaths returns the distinct non-empty career paths, sorted
func CareerPaths() []string {
	seen := make(map[string]struct{})
	paths := []string{}
	for _, c := range academicCourses {
		if c.CareerPath == "" {
			continue
		}
		if _, ok := seen[c.CareerPath]; ok {
			continue
		}
		seen[c.CareerPath] = struct{}{}
		paths = append(paths, c.CareerPath)
	}
	sort.Strings(paths)
	return paths
}

func filterAcademic(keep func(models.AcademicCourse) bool) []models.AcademicCourse {
	out := []models.AcademicCourse{}
	for _, c := range academicCourses {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// ProgrammingCourses returns the programming catalog in declaration order
func ProgrammingCourses() []models.ProgrammingCourse {
	return filterProgramming(func(models.ProgrammingCourse) bool { return true })
}

func ProgrammingByLevel(level models.EducationLevel) []models.ProgrammingCourse {
	return filterProgramming(func(c models.ProgrammingCourse) bool { return c.EducationLevel == level })
}

func ProgrammingByLanguage(language models.Language) []models.ProgrammingCourse {
	return filterProgramming(func(c models.ProgrammingCourse) bool { return c.Language == language })
}

func filterProgramming(keep func(models.ProgrammingCourse) bool) []models.ProgrammingCourse {
	out := []models.ProgrammingCourse{}
	for _, c := range programmingCourses {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
