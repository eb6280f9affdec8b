package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"learnhub/internal/database"
	"learnhub/internal/models"
)

// LessonRepository stores generated lessons
type LessonRepository struct {
	db database.DBTX
}

func NewLessonRepository(db database.DBTX) *LessonRepository {
	return &LessonRepository{db: db}
}

// ListLessons returns the lessons of a course, oldest first.
// Rows with NULL or unreadable activities come back with an empty list.
func (r *LessonRepository) ListLessons(ctx context.Context, courseID string) ([]models.Lesson, error) {
	query := `
		SELECT id, course_id, title, content, activities, created_at
		FROM children_lessons
		WHERE course_id = ?
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lessons: %w", err)
	}
	return lessons, nil
}

// GetLesson returns a single lesson, or nil when absent
func (r *LessonRepository) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	query := `
		SELECT id, course_id, title, content, activities, created_at
		FROM children_lessons
		WHERE id = ?
	`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query lesson: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to query lesson: %w", err)
		}
		return nil, nil
	}
	l, err := scanLesson(rows)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLesson(rows *sql.Rows) (models.Lesson, error) {
	var (
		l   models.Lesson
		raw []byte
	)
	if err := rows.Scan(&l.ID, &l.CourseID, &l.Title, &l.Content, &raw, &l.CreatedAt); err != nil {
		return l, fmt.Errorf("failed to scan lesson: %w", err)
	}
	l.Activities = decodeActivities(raw)
	return l, nil
}

func decodeActivities(raw []byte) []models.Activity {
	if len(raw) == 0 {
		return []models.Activity{}
	}
	var activities []models.Activity
	if err := json.Unmarshal(raw, &activities); err != nil || activities == nil {
		return []models.Activity{}
	}
	return activities
}

// CreateLesson inserts a lesson. ID and CreatedAt are filled in when empty.
func (r *LessonRepository) CreateLesson(ctx context.Context, l *models.Lesson) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	if l.Activities == nil {
		l.Activities = []models.Activity{}
	}
	activities, err := json.Marshal(l.Activities)
	if err != nil {
		return fmt.Errorf("failed to encode activities: %w", err)
	}

	query := `
		INSERT INTO children_lessons (id, course_id, title, content, activities, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, l.ID, l.CourseID, l.Title, l.Content, string(activities), l.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}
