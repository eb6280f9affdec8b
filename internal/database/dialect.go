package database

import (
	"database/sql"
	"regexp"
	"strconv"
)

// Dialect defines the interface for database-specific operations
type Dialect interface {
	// DriverName returns the driver name for sql.Open
	DriverName() string

	// DSN returns the data source name for the connection
	DSN(config DialectConfig) string

	// RewriteQuery converts placeholder syntax if needed (e.g., ? to $1 for postgres)
	RewriteQuery(query string) string

	// SupportsLastInsertId returns true if the driver supports LastInsertId()
	SupportsLastInsertId() bool

	// ConfigureConnection applies any database-specific connection settings
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir returns the subdirectory name for migrations (e.g., "sqlite", "postgres")
	MigrationsSubdir() string

	// CreateMigrationsTableQuery returns the SQL to create the migrations tracking table
	CreateMigrationsTableQuery() string

	// UpsertProgressQuery returns a replace-or-insert statement for children_progress
	// keyed by (lesson_id, user_id). Placeholders, in order: id, lesson_id, user_id,
	// completed, completed_at, activities_completed, stars_earned, updated_at.
	UpsertProgressQuery() string
}

// DialectConfig holds configuration for database connection
type DialectConfig struct {
	// For SQLite
	Path string

	// For PostgreSQL/MySQL
	URL string
}

// placeholderRegexp matches ? placeholders
var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, etc.
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(match string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}

// onConflictUpsertProgress is shared by SQLite and PostgreSQL, which both
// support INSERT ... ON CONFLICT DO UPDATE. A completed row stays completed
// with its original completed_at.
const onConflictUpsertProgress = `
	INSERT INTO children_progress
		(id, lesson_id, user_id, completed, completed_at, activities_completed, stars_earned, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (lesson_id, user_id) DO UPDATE SET
		completed = children_progress.completed OR excluded.completed,
		completed_at = COALESCE(children_progress.completed_at, excluded.completed_at),
		activities_completed = excluded.activities_completed,
		stars_earned = excluded.stars_earned,
		updated_at = excluded.updated_at
`
