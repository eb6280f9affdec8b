package models

// MaterialType is the format of a general course material
type MaterialType string

const (
	MaterialVideo   MaterialType = "video"
	MaterialPDF     MaterialType = "pdf"
	MaterialQuiz    MaterialType = "quiz"
	MaterialArticle MaterialType = "article"
)

// Material is one item of a general course
type Material struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Type      MaterialType `json:"type"`
	Duration  string       `json:"duration,omitempty"`
	Completed bool         `json:"completed"`
}

// CatalogCourse is an entry of the general course catalog
type CatalogCourse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Duration    string     `json:"duration"`
	Students    int        `json:"students"`
	Level       string     `json:"level"`
	Materials   []Material `json:"materials"`
}

type EducationLevel string

const (
	LevelPrimary    EducationLevel = "primary"
	LevelHighschool EducationLevel = "highschool"
	LevelAdvanced   EducationLevel = "advanced"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AcademicCourse is an entry of the academic catalog
type AcademicCourse struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	EducationLevel EducationLevel `json:"education_level"`
	Difficulty     Difficulty     `json:"difficulty_level"`
	Subject        string         `json:"subject"`
	CareerPath     string         `json:"career_path,omitempty"`
	Duration       string         `json:"duration"`
	OrderIndex     int            `json:"order_index"`
}

type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageHTML       Language = "html"
	LanguageCSS        Language = "css"
)

// ProgrammingCourse is an entry of the programming catalog
type ProgrammingCourse struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	EducationLevel EducationLevel `json:"education_level"`
	Difficulty     Difficulty     `json:"difficulty_level"`
	Language       Language       `json:"language"`
	Duration       string         `json:"duration"`
	OrderIndex     int            `json:"order_index"`
}
