package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"learnhub/internal/database"
	"learnhub/internal/models"
)

// ProgressRepository stores per-user lesson progress. Every read is scoped
// to the requesting user.
type ProgressRepository struct {
	db database.DBTX
}

func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `id, lesson_id, user_id, completed, completed_at, activities_completed, stars_earned, updated_at`

// ListProgress returns userID's rows for the given lessons
func (r *ProgressRepository) ListProgress(ctx context.Context, userID int64, lessonIDs []string) ([]models.Progress, error) {
	if len(lessonIDs) == 0 {
		return []models.Progress{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(lessonIDs)), ", ")
	query := "SELECT " + progressColumns + " FROM children_progress WHERE user_id = ? AND lesson_id IN (" + placeholders + ")"

	args := make([]interface{}, 0, len(lessonIDs)+1)
	args = append(args, userID)
	for _, id := range lessonIDs {
		args = append(args, id)
	}

	return r.query(ctx, query, args...)
}

// ListAllProgress returns every progress row. Used by backup export only.
func (r *ProgressRepository) ListAllProgress(ctx context.Context) ([]models.Progress, error) {
	return r.query(ctx, "SELECT "+progressColumns+" FROM children_progress ORDER BY user_id, lesson_id")
}

func (r *ProgressRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Progress, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	progress := []models.Progress{}
	for rows.Next() {
		var (
			p           models.Progress
			completedAt sql.NullTime
			raw         []byte
		)
		if err := rows.Scan(&p.ID, &p.LessonID, &p.UserID, &p.Completed, &completedAt, &raw, &p.StarsEarned, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		if completedAt.Valid {
			t := completedAt.Time
			p.CompletedAt = &t
		}
		p.ActivitiesCompleted = decodeIDs(raw)
		progress = append(progress, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress: %w", err)
	}
	return progress, nil
}

func decodeIDs(raw []byte) []string {
	var ids []string
	if len(raw) == 0 || json.Unmarshal(raw, &ids) != nil || ids == nil {
		return []string{}
	}
	return ids
}

// UpsertProgress replaces or inserts the row keyed by (lesson_id, user_id).
// ID and UpdatedAt are filled in when empty.
func (r *ProgressRepository) UpsertProgress(ctx context.Context, p *models.Progress) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	ids := p.ActivitiesCompleted
	if ids == nil {
		ids = []string{}
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode completed activities: %w", err)
	}

	var completedAt interface{}
	if p.CompletedAt != nil {
		completedAt = p.CompletedAt.UTC()
	}

	query := r.db.GetDialect().UpsertProgressQuery()
	if _, err := r.db.ExecContext(ctx, query,
		p.ID, p.LessonID, p.UserID, p.Completed, completedAt, string(encoded), p.StarsEarned, p.UpdatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to upsert progress: %w", err)
	}
	return nil
}
