package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"learnhub/internal/database"
	"learnhub/internal/models"
)

// CourseRepository reads children's courses
type CourseRepository struct {
	db database.DBTX
}

func NewCourseRepository(db database.DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListCourses returns every course ordered by subject
func (r *CourseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, title, subject, description, color, icon, age_range, created_at
		FROM children_courses
		ORDER BY subject, title
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Subject, &c.Description, &c.Color, &c.Icon, &c.AgeRange, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

// GetCourse returns the course with id, or nil when there is none
func (r *CourseRepository) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, title, subject, description, color, icon, age_range, created_at
		FROM children_courses
		WHERE id = ?
	`
	var c models.Course
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.Subject, &c.Description, &c.Color, &c.Icon, &c.AgeRange, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &c, nil
}

// CreateCourse inserts a course with a caller-chosen id. Used by backup restore.
func (r *CourseRepository) CreateCourse(ctx context.Context, c *models.Course) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO children_courses (id, title, subject, description, color, icon, age_range, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Title, c.Subject, c.Description, c.Color, c.Icon, c.AgeRange, c.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}
