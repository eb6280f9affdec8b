package models

import (
	"fmt"
	"time"
)

// Course is a children's subject area, e.g. "Math Adventures".
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	AgeRange    string    `json:"age_range"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityType is the kind of interactive item inside a lesson
type ActivityType string

const (
	ActivityQuestion ActivityType = "question"
	ActivityExercise ActivityType = "exercise"
	ActivityGame     ActivityType = "game"
)

// Valid reports whether t is one of the known activity kinds
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityQuestion, ActivityExercise, ActivityGame:
		return true
	}
	return false
}

// Activity is one question, exercise or game of a lesson.
// ID is empty for lessons stored before identifiers were assigned.
type Activity struct {
	ID   string       `json:"id,omitempty"`
	Type ActivityType `json:"type"`
	Text string       `json:"text"`
}

// Lesson is a generated unit of content belonging to one course
type Lesson struct {
	ID         string     `json:"id"`
	CourseID   string     `json:"course_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Activities []Activity `json:"activities"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ActivityID returns the identifier used to record completion of the
// activity at index. Activities without a stored id use "activity-<index>".
func (l *Lesson) ActivityID(index int) (string, bool) {
	if index < 0 || index >= len(l.Activities) {
		return "", false
	}
	if id := l.Activities[index].ID; id != "" {
		return id, true
	}
	return LegacyActivityID(index), true
}

// LegacyActivityID is the index-derived identifier of older lessons
func LegacyActivityID(index int) string {
	return fmt.Sprintf("activity-%d", index)
}

// Progress is one learner's record for one lesson
type Progress struct {
	ID                  string     `json:"id"`
	LessonID            string     `json:"lesson_id"`
	UserID              int64      `json:"user_id"`
	Completed           bool       `json:"completed"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	ActivitiesCompleted []string   `json:"activities_completed"`
	StarsEarned         int        `json:"stars_earned"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// HasCompleted reports whether activityID is already recorded
func (p *Progress) HasCompleted(activityID string) bool {
	for _, id := range p.ActivitiesCompleted {
		if id == activityID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of p
func (p Progress) Clone() Progress {
	out := p
	out.ActivitiesCompleted = append([]string(nil), p.ActivitiesCompleted...)
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
