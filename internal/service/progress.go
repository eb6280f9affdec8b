package service

import (
	"math"
	"time"

	"learnhub/internal/models"
)

// MaxStars caps the stars a single lesson can award.
const MaxStars = 3

// Stars returns the stars earned for n completed activities.
func Stars(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxStars {
		return MaxStars
	}
	return n
}

// applyCompletion returns the record that results from completing activityID.
// changed is false when the activity was already recorded, in which case the
// returned record equals prev.
func applyCompletion(prev *models.Progress, lessonID string, userID int64, activityID string, totalActivities int, now time.Time) (models.Progress, bool) {
	var next models.Progress
	if prev != nil {
		if prev.HasCompleted(activityID) {
			return prev.Clone(), false
		}
		next = prev.Clone()
	} else {
		next = models.Progress{LessonID: lessonID, UserID: userID, ActivitiesCompleted: []string{}}
	}

	next.ActivitiesCompleted = append(next.ActivitiesCompleted, activityID)
	next.StarsEarned = Stars(len(next.ActivitiesCompleted))
	next.UpdatedAt = now

	if !next.Completed && len(next.ActivitiesCompleted) >= totalActivities {
		next.Completed = true
		done := now
		next.CompletedAt = &done
	}
	return next, true
}

// coursePercent is 100 * completed lessons / lessons, 0 with no lessons.
func coursePercent(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(completed) / float64(total) * 100
	return math.Max(0, math.Min(100, p))
}

// Celebration describes the confetti burst shown after a completion.
type Celebration struct {
	ParticleCount int      `json:"particle_count"`
	Spread        int      `json:"spread"`
	OriginY       float64  `json:"origin_y"`
	Colors        []string `json:"colors"`
}

func defaultCelebration() *Celebration {
	return &Celebration{
		ParticleCount: 100,
		Spread:        70,
		OriginY:       0.6,
		Colors:        []string{"#FFD700", "#FFA500", "#FF69B4", "#00CED1"},
	}
}
