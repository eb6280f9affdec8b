package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type seedCourse struct {
	Title       string
	Subject     string
	Description string
	Color       string
	Icon        string
	AgeRange    string
}

var defaultChildrenCourses = []seedCourse{
	{
		Title:       "Math Adventures",
		Subject:     "Math",
		Description: "Count, add and solve puzzles with friendly numbers",
		Color:       "bg-blue-500",
		Icon:        "🔢",
		AgeRange:    "5-8",
	},
	{
		Title:       "Reading Stars",
		Subject:     "Reading",
		Description: "Discover letters, words and short stories",
		Color:       "bg-purple-500",
		Icon:        "📚",
		AgeRange:    "4-7",
	},
	{
		Title:       "Science Explorers",
		Subject:     "Science",
		Description: "Plants, animals and the world around us",
		Color:       "bg-green-500",
		Icon:        "🔬",
		AgeRange:    "6-10",
	},
	{
		Title:       "Art & Colors",
		Subject:     "Art",
		Description: "Shapes, colors and creative drawing games",
		Color:       "bg-pink-500",
		Icon:        "🎨",
		AgeRange:    "4-8",
	},
}

// seedNamespace derives stable course ids so exports and re-seeds line up.
var seedNamespace = uuid.MustParse("6f1c2b7e-3d4a-4e2b-9c1d-5a8e7f60b2c4")

// SeedChildrenCourses inserts the reference children's courses when the
// table is empty and returns how many rows were added.
func (db *DB) SeedChildrenCourses(ctx context.Context) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM children_courses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to check children courses count: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO children_courses (id, title, subject, description, color, icon, age_range)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for _, c := range defaultChildrenCourses {
		id := uuid.NewSHA1(seedNamespace, []byte(c.Title)).String()
		if _, err := tx.ExecContext(ctx, query, id, c.Title, c.Subject, c.Description, c.Color, c.Icon, c.AgeRange); err != nil {
			return 0, fmt.Errorf("failed to seed course %q: %w", c.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return len(defaultChildrenCourses), nil
}
