package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"learnhub/internal/database"
	"learnhub/internal/logger"
	"learnhub/internal/models"
	"learnhub/internal/repository"
)

const backupVersion = "2.0"

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string            `json:"version"`
	ExportedAt   time.Time         `json:"exported_at"`
	DatabaseType string            `json:"database_type"`
	Users        []UserBackup      `json:"users"`
	Courses      []models.Course   `json:"courses"`
	Lessons      []models.Lesson   `json:"lessons"`
	Progress     []models.Progress `json:"progress"`
}

// UserBackup represents a user record for backup. Unlike models.User it
// keeps the password hash and OAuth subject.
type UserBackup struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	Name          string    `json:"name"`
	OAuthProvider string    `json:"oauth_provider"`
	OAuthSubject  string    `json:"oauth_subject"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db  *database.DB
	log *logger.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB, log *logger.Logger) *BackupService {
	if log == nil {
		log = logger.NewNop()
	}
	return &BackupService{db: db, log: log}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(ctx context.Context, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(ctx, file); err != nil {
		return err
	}
	s.log.Info("database exported", "path", outputPath)
	return nil
}

// ExportToWriter writes the backup as indented JSON to w
func (s *BackupService) ExportToWriter(ctx context.Context, w io.Writer) error {
	backup, err := s.collect(ctx)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	s.log.Info("backup written",
		"users", len(backup.Users),
		"courses", len(backup.Courses),
		"lessons", len(backup.Lessons),
		"progress", len(backup.Progress))
	return nil
}

func (s *BackupService) collect(ctx context.Context) (*BackupData, error) {
	backup := &BackupData{
		Version:      backupVersion,
		ExportedAt:   time.Now().UTC(),
		DatabaseType: "universal",
		Users:        []UserBackup{},
		Lessons:      []models.Lesson{},
	}

	if err := s.exportUsers(ctx, backup); err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}

	courses, err := repository.NewCourseRepository(s.db).ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export courses: %w", err)
	}
	backup.Courses = courses

	lessonRepo := repository.NewLessonRepository(s.db)
	for _, c := range courses {
		lessons, err := lessonRepo.ListLessons(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to export lessons of %s: %w", c.ID, err)
		}
		backup.Lessons = append(backup.Lessons, lessons...)
	}

	progress, err := repository.NewProgressRepository(s.db).ListAllProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export progress: %w", err)
	}
	backup.Progress = progress
	return backup, nil
}

func (s *BackupService) exportUsers(ctx context.Context, backup *BackupData) error {
	query := "SELECT id, email, COALESCE(password_hash, ''), name, COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''), is_admin, created_at, updated_at FROM users ORDER BY id"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.OAuthProvider, &u.OAuthSubject, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

// Import restores a database from a backup file
func (s *BackupService) Import(ctx context.Context, inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()
	return s.ImportFromReader(ctx, file)
}

// ImportFromReader restores a backup in one transaction. Nothing is written
// when any record fails.
func (s *BackupService) ImportFromReader(ctx context.Context, reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}
	s.log.Info("importing backup", "version", backup.Version, "exported_at", backup.ExportedAt)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	// Import in order of dependencies
	if err := importUsers(ctx, tx, backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}

	courses := repository.NewCourseRepository(tx)
	for i := range backup.Courses {
		if err := courses.CreateCourse(ctx, &backup.Courses[i]); err != nil {
			return fmt.Errorf("failed to import course %s: %w", backup.Courses[i].ID, err)
		}
	}

	lessons := repository.NewLessonRepository(tx)
	for i := range backup.Lessons {
		if err := lessons.CreateLesson(ctx, &backup.Lessons[i]); err != nil {
			return fmt.Errorf("failed to import lesson %s: %w", backup.Lessons[i].ID, err)
		}
	}

	progress := repository.NewProgressRepository(tx)
	for i := range backup.Progress {
		lesson, err := lessons.GetLesson(ctx, backup.Progress[i].LessonID)
		if err != nil {
			return fmt.Errorf("failed to check lesson of progress %s: %w", backup.Progress[i].ID, err)
		}
		if lesson == nil {
			return fmt.Errorf("progress %s references unknown lesson %s", backup.Progress[i].ID, backup.Progress[i].LessonID)
		}
		if err := progress.UpsertProgress(ctx, &backup.Progress[i]); err != nil {
			return fmt.Errorf("failed to import progress %s: %w", backup.Progress[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	s.log.Info("database import completed",
		"users", len(backup.Users),
		"courses", len(backup.Courses),
		"lessons", len(backup.Lessons),
		"progress", len(backup.Progress))
	return nil
}

func importUsers(ctx context.Context, db database.DBTX, users []UserBackup) error {
	query := "INSERT INTO users (id, email, password_hash, name, oauth_provider, oauth_subject, is_admin, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	for _, u := range users {
		_, err := db.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.Name, nullIfEmpty(u.OAuthProvider), nullIfEmpty(u.OAuthSubject), u.IsAdmin, u.CreatedAt, u.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import user %d: %w", u.ID, err)
		}
	}
	return nil
}

// ClearChildrenData deletes every row the backup covers, children first.
func (s *BackupService) ClearChildrenData(ctx context.Context) error {
	tables := []string{
		"children_progress",
		"children_lessons",
		"children_courses",
		"sessions",
		"users",
	}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		s.log.Info("cleared table", "table", table)
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
