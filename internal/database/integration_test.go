package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

const testMigrationsPath = "../../migrations"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.RunMigrations(context.Background(), testMigrationsPath); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	tables := []string{"users", "sessions", "children_courses", "children_lessons", "children_progress", "migrations"}
	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		if err := db.QueryRowContext(ctx, query, table).Scan(&name); err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	applied, err := db.RunMigrations(context.Background(), testMigrationsPath)
	if err != nil {
		t.Fatalf("second RunMigrations failed: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("second run applied %v, want nothing", applied)
	}
}

func TestRunMigrationsMissingDirectory(t *testing.T) {
	db, err := Initialize(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if _, err := db.RunMigrations(context.Background(), t.TempDir()); err == nil {
		t.Error("expected an error when no migration files exist")
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	id, err := tx.ExecReturningID(ctx, "INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"parent@example.com", "hashed", "Parent")
	if err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if id <= 0 {
		t.Errorf("ExecReturningID() = %d, want positive id", id)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	// Rolled back insert must not be visible
	tx, err = db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"rollback@example.com", "hashed", "Rollback"); err != nil {
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Failed to rollback: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestUpsertProgressReplacesRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	userID, err := db.ExecReturningID(ctx, "INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"kid@example.com", "hashed", "Kid")
	if err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO children_courses (id, title, subject, description, color, icon, age_range)
		VALUES ('c1', 'Math', 'Math', 'Numbers', 'bg-blue-500', '🔢', '5-8')`); err != nil {
		t.Fatalf("Failed to insert course: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO children_lessons (id, course_id, title, content, activities)
		VALUES ('l1', 'c1', 'Counting', 'Let us count', '[]')`); err != nil {
		t.Fatalf("Failed to insert lesson: %v", err)
	}

	now := time.Now().UTC()
	q := db.Dialect.UpsertProgressQuery()
	if _, err := db.ExecContext(ctx, q, "p1", "l1", userID, false, nil, `["a"]`, 1, now); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if _, err := db.ExecContext(ctx, q, "p2", "l1", userID, true, now, `["a","b"]`, 2, now.Add(time.Second)); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var (
		count     int
		id        string
		stars     int
		completed bool
	)
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM children_progress").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("progress rows = %d, want 1", count)
	}
	if err := db.QueryRowContext(ctx, "SELECT id, stars_earned, completed FROM children_progress WHERE lesson_id = ? AND user_id = ?",
		"l1", userID).Scan(&id, &stars, &completed); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if id != "p1" {
		t.Errorf("id = %q, want the original row id p1", id)
	}
	if stars != 2 || !completed {
		t.Errorf("stars = %d completed = %v, want 2 true", stars, completed)
	}
}

func TestSeedChildrenCourses(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	added, err := db.SeedChildrenCourses(ctx)
	if err != nil {
		t.Fatalf("SeedChildrenCourses() error: %v", err)
	}
	if added != len(defaultChildrenCourses) {
		t.Errorf("added = %d, want %d", added, len(defaultChildrenCourses))
	}

	added, err = db.SeedChildrenCourses(ctx)
	if err != nil {
		t.Fatalf("second SeedChildrenCourses() error: %v", err)
	}
	if added != 0 {
		t.Errorf("second seed added %d rows, want 0", added)
	}
}
