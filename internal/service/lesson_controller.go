package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"learnhub/internal/generation"
	"learnhub/internal/logger"
	"learnhub/internal/metrics"
	"learnhub/internal/models"
)

type CourseStore interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type LessonStore interface {
	ListLessons(ctx context.Context, courseID string) ([]models.Lesson, error)
	CreateLesson(ctx context.Context, l *models.Lesson) error
}

type ProgressStore interface {
	ListProgress(ctx context.Context, userID int64, lessonIDs []string) ([]models.Progress, error)
	UpsertProgress(ctx context.Context, p *models.Progress) error
}

// Phase is the coarse state the presentation layer renders from.
type Phase string

const (
	PhaseNoCourseSelected Phase = "no_course_selected"
	PhaseCoursesLoaded    Phase = "courses_loaded"
	PhaseLessonsLoading   Phase = "lessons_loading"
	PhaseLessonsLoaded    Phase = "lessons_loaded"
	PhaseGeneratingLesson Phase = "generating_lesson"
)

// ControllerDeps are the collaborators shared by every learner's controller.
type ControllerDeps struct {
	Courses   CourseStore
	Lessons   LessonStore
	Progress  ProgressStore
	Generator generation.Generator
	Flights   *GenerationFlights
	Metrics   *metrics.Metrics
	Log       *logger.Logger
	Now       func() time.Time
}

// LessonController holds one learner's view of the children's courses:
// the course list, the selected course with its lessons, and the signed-in
// user's progress on them. Store calls run outside the lock; results are
// applied under it and dropped when the selection changed meanwhile.
type LessonController struct {
	deps ControllerDeps
	log  *logger.Logger

	// completeMu serializes CompleteActivity so two completions of the same
	// lesson cannot both start from the same prior record.
	completeMu sync.Mutex

	mu             sync.Mutex
	courses        []models.Course
	coursesLoaded  bool
	selected       *models.Course
	lessons        []models.Lesson
	lessonsLoading bool
	loadSeq        uint64
	progress       map[string]models.Progress
	generating     int
	idle           Phase
	epoch          uint64
	userID         int64
	notices        []Notice
}

func NewLessonController(deps ControllerDeps) *LessonController {
	if deps.Flights == nil {
		deps.Flights = NewGenerationFlights()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	return &LessonController{
		deps:     deps,
		log:      log,
		progress: map[string]models.Progress{},
		idle:     PhaseNoCourseSelected,
	}
}

// CompletionResult is what CompleteActivity hands back to the caller.
type CompletionResult struct {
	Progress         models.Progress `json:"progress"`
	AlreadyCompleted bool            `json:"already_completed"`
	LessonCompleted  bool            `json:"lesson_completed"`
	Celebration      *Celebration    `json:"celebration,omitempty"`
}

// Snapshot is a copy of the controller state with the derived values.
type Snapshot struct {
	Phase                 Phase                      `json:"phase"`
	Courses               []models.Course            `json:"courses"`
	SelectedCourse        *models.Course             `json:"selected_course,omitempty"`
	Lessons               []models.Lesson            `json:"lessons"`
	Progress              map[string]models.Progress `json:"progress"`
	Generating            bool                       `json:"generating"`
	CourseProgress        float64                    `json:"course_progress"`
	CourseProgressRounded int                        `json:"course_progress_rounded"`
	CompletedLessons      int                        `json:"completed_lessons"`
	TotalLessons          int                        `json:"total_lessons"`
	TotalStars            int                        `json:"total_stars"`
}

func userIDOf(user *models.User) int64 {
	if user == nil {
		return 0
	}
	return user.ID
}

// bindUserLocked drops progress that belongs to a different user than the
// one now driving the controller.
func (c *LessonController) bindUserLocked(user *models.User) {
	if id := userIDOf(user); id != c.userID {
		c.userID = id
		c.progress = map[string]models.Progress{}
	}
}

func (c *LessonController) notifyLocked(n Notice) {
	if len(c.notices) >= maxQueuedNotices {
		c.notices = c.notices[1:]
	}
	c.notices = append(c.notices, n)
}

func (c *LessonController) notify(n Notice) {
	c.mu.Lock()
	c.notifyLocked(n)
	c.mu.Unlock()
}

// LoadCourses fetches the course list. On failure the previous list stays.
func (c *LessonController) LoadCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := c.deps.Courses.ListCourses(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Warn("failed to load courses", "error", err)
		c.notifyLocked(errorNotice(MsgLoadCoursesFailed))
		return nil, &BackendError{Op: "load courses", Err: err}
	}
	c.courses = courses
	c.coursesLoaded = true
	if c.selected == nil {
		c.idle = PhaseCoursesLoaded
	}
	return cloneCourses(courses), nil
}

func (c *LessonController) findCourseLocked(id string) *models.Course {
	for i := range c.courses {
		if c.courses[i].ID == id {
			course := c.courses[i]
			return &course
		}
	}
	return nil
}

// SelectCourse makes courseID the active course and loads its lessons.
func (c *LessonController) SelectCourse(ctx context.Context, user *models.User, courseID string) error {
	c.mu.Lock()
	course := c.findCourseLocked(courseID)
	c.mu.Unlock()

	if course == nil {
		// The list may predate the course, so look once more.
		if _, err := c.LoadCourses(ctx); err != nil {
			return err
		}
		c.mu.Lock()
		course = c.findCourseLocked(courseID)
		c.mu.Unlock()
	}
	if course == nil {
		c.notify(errorNotice(MsgCourseNotFound))
		return ErrCourseNotFound
	}

	c.mu.Lock()
	c.selected = course
	c.lessons = nil
	c.progress = map[string]models.Progress{}
	c.generating = 0
	c.epoch++
	c.bindUserLocked(user)
	c.mu.Unlock()

	return c.LoadLessons(ctx, user)
}

// ClearSelection returns to the course list and forgets lesson state.
func (c *LessonController) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.lessons = nil
	c.lessonsLoading = false
	c.progress = map[string]models.Progress{}
	c.generating = 0
	c.idle = PhaseNoCourseSelected
	c.epoch++
}

// LoadLessons fetches the lessons of the selected course, then the signed-in
// user's progress on them.
func (c *LessonController) LoadLessons(ctx context.Context, user *models.User) error {
	c.mu.Lock()
	if c.selected == nil {
		c.notifyLocked(errorNotice(MsgNoCourseSelected))
		c.mu.Unlock()
		return ErrNoCourseSelected
	}
	courseID := c.selected.ID
	epoch := c.epoch
	c.loadSeq++
	seq := c.loadSeq
	c.lessonsLoading = true
	c.bindUserLocked(user)
	c.mu.Unlock()

	lessons, err := c.deps.Lessons.ListLessons(ctx, courseID)

	c.mu.Lock()
	if seq == c.loadSeq {
		c.lessonsLoading = false
	}
	if epoch != c.epoch || seq != c.loadSeq {
		c.mu.Unlock()
		c.log.Debug("discarding stale lessons", "course_id", courseID)
		return nil
	}
	if err != nil {
		c.notifyLocked(errorNotice(MsgLoadLessonsFailed))
		c.mu.Unlock()
		c.log.Warn("failed to load lessons", "course_id", courseID, "error", err)
		return &BackendError{Op: "load lessons", Err: err}
	}
	c.lessons = normalizeLessons(lessons)
	ids := make([]string, len(c.lessons))
	for i, l := range c.lessons {
		ids[i] = l.ID
	}
	for id := range c.progress {
		if !containsString(ids, id) {
			delete(c.progress, id)
		}
	}
	c.mu.Unlock()

	if user == nil {
		return nil
	}
	return c.LoadProgress(ctx, user, ids)
}

// normalizeLessons copies lessons so every activity carries the identifier
// its completion is recorded under.
func normalizeLessons(in []models.Lesson) []models.Lesson {
	out := make([]models.Lesson, len(in))
	for i, l := range in {
		acts := make([]models.Activity, len(l.Activities))
		copy(acts, l.Activities)
		for j := range acts {
			if acts[j].ID == "" {
				acts[j].ID = models.LegacyActivityID(j)
			}
		}
		l.Activities = acts
		out[i] = l
	}
	return out
}

// LoadProgress fetches user's rows for lessonIDs, or for every loaded lesson
// when lessonIDs is nil, and merges them into the local map. Anonymous
// learners have no progress to fetch.
func (c *LessonController) LoadProgress(ctx context.Context, user *models.User, lessonIDs []string) error {
	if user == nil {
		return nil
	}

	c.mu.Lock()
	c.bindUserLocked(user)
	if lessonIDs == nil {
		lessonIDs = make([]string, len(c.lessons))
		for i, l := range c.lessons {
			lessonIDs[i] = l.ID
		}
	}
	epoch := c.epoch
	c.mu.Unlock()

	if len(lessonIDs) == 0 {
		return nil
	}

	rows, err := c.deps.Progress.ListProgress(ctx, user.ID, lessonIDs)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch || c.userID != user.ID {
		return nil
	}
	if err != nil {
		c.log.Warn("failed to load progress", "user_id", user.ID, "error", err)
		c.notifyLocked(errorNotice(MsgLoadProgressFailed))
		return &BackendError{Op: "load progress", Err: err}
	}
	c.mergeProgressLocked(rows)
	return nil
}

// mergeProgressLocked applies fetched rows. A row replaces the local record
// unless the local one is newer, so a completion made while the fetch was
// in flight survives.
func (c *LessonController) mergeProgressLocked(rows []models.Progress) {
	for _, row := range rows {
		if row.UserID != c.userID || c.lessonLocked(row.LessonID) == nil {
			continue
		}
		if cur, ok := c.progress[row.LessonID]; ok && row.UpdatedAt.Before(cur.UpdatedAt) {
			continue
		}
		c.progress[row.LessonID] = row.Clone()
	}
}

func (c *LessonController) lessonLocked(id string) *models.Lesson {
	for i := range c.lessons {
		if c.lessons[i].ID == id {
			return &c.lessons[i]
		}
	}
	return nil
}

// GenerateLesson asks the generator for an introductory lesson on the
// selected course, stores it and reloads the lesson list.
func (c *LessonController) GenerateLesson(ctx context.Context, user *models.User) (*models.Lesson, error) {
	c.mu.Lock()
	if c.selected == nil {
		c.notifyLocked(errorNotice(MsgNoCourseSelected))
		c.mu.Unlock()
		return nil, ErrNoCourseSelected
	}
	course := *c.selected
	epoch := c.epoch
	c.generating++
	c.bindUserLocked(user)
	c.mu.Unlock()

	req := generation.Request{
		Subject:  course.Subject,
		AgeRange: course.AgeRange,
		Topic:    "Introduction to " + course.Title,
	}
	// Learners bringing their own provider key never join each other's flight.
	flightKey := course.ID
	if fp := generation.KeyFingerprint(ctx); fp != "" {
		flightKey += "\x00" + fp
	}
	lesson, err := c.deps.Flights.Do(ctx, flightKey, func(fctx context.Context) (*models.Lesson, error) {
		return c.generateAndStore(fctx, course.ID, req)
	})

	c.mu.Lock()
	current := epoch == c.epoch
	if current && c.generating > 0 {
		c.generating--
	}
	if err != nil {
		c.notifyLocked(generationNotice(err))
		c.mu.Unlock()
		c.log.Warn("lesson generation failed", "course_id", course.ID, "error", err)
		var pe *PersistenceError
		if errors.As(err, &pe) {
			return nil, err
		}
		return nil, generation.AsGenerationError(err)
	}
	if !current {
		c.mu.Unlock()
		c.log.Info("generated lesson for a course no longer selected", "course_id", course.ID, "lesson_id", lesson.ID)
		return lesson, nil
	}
	c.notifyLocked(lessonCreatedNotice())
	c.mu.Unlock()

	// A failed reload has already queued its own notice; the lesson itself is saved.
	if err := c.LoadLessons(ctx, user); err != nil {
		c.log.Warn("reload after generation failed", "course_id", course.ID, "error", err)
	}
	return lesson, nil
}

func (c *LessonController) generateAndStore(ctx context.Context, courseID string, req generation.Request) (*models.Lesson, error) {
	out, err := c.deps.Generator.Generate(ctx, req)
	if err != nil {
		ge := generation.AsGenerationError(err)
		c.deps.Metrics.ObserveGeneration(ge.Kind.String())
		return nil, ge
	}

	lesson := &models.Lesson{
		CourseID:   courseID,
		Title:      out.Title,
		Content:    out.Content,
		Activities: generation.AssignActivityIDs(out.Activities),
	}
	if err := c.deps.Lessons.CreateLesson(ctx, lesson); err != nil {
		c.deps.Metrics.ObserveGeneration("persist_failed")
		return nil, &PersistenceError{Op: "save generated lesson", Err: err}
	}
	c.deps.Metrics.ObserveGeneration("success")
	c.deps.Metrics.LessonCreated()
	c.log.Info("lesson generated", "course_id", courseID, "lesson_id", lesson.ID, "activities", len(lesson.Activities))
	return lesson, nil
}

// CompleteActivity records that user finished the activity at index of
// lessonID. Repeating a completed activity changes nothing.
func (c *LessonController) CompleteActivity(ctx context.Context, user *models.User, lessonID string, index int) (*CompletionResult, error) {
	c.completeMu.Lock()
	defer c.completeMu.Unlock()

	c.mu.Lock()
	if user == nil {
		c.notifyLocked(authNotice())
		c.mu.Unlock()
		return nil, &AuthRequiredError{Action: "track progress"}
	}
	c.bindUserLocked(user)

	lesson := c.lessonLocked(lessonID)
	if lesson == nil {
		c.notifyLocked(errorNotice(MsgLessonNotFound))
		c.mu.Unlock()
		return nil, ErrLessonNotFound
	}
	activityID, ok := lesson.ActivityID(index)
	if !ok {
		c.notifyLocked(errorNotice(MsgActivityNotFound))
		c.mu.Unlock()
		return nil, ErrActivityNotFound
	}

	var prev *models.Progress
	if p, ok := c.progress[lessonID]; ok {
		prev = &p
	}
	total := len(lesson.Activities)
	epoch := c.epoch
	c.mu.Unlock()

	// No local record does not mean no stored one. Writing a fresh record
	// over it would drop the activities already done.
	if prev == nil {
		stored, err := c.storedProgress(ctx, user.ID, lessonID)
		if err != nil {
			c.log.Warn("failed to read progress before saving", "lesson_id", lessonID, "user_id", user.ID, "error", err)
			c.notify(errorNotice(MsgSaveProgressFailed))
			return nil, &BackendError{Op: "load progress", Err: err}
		}
		if stored != nil {
			prev = stored
			c.mu.Lock()
			if epoch == c.epoch && c.userID == user.ID {
				c.mergeProgressLocked([]models.Progress{*stored})
			}
			c.mu.Unlock()
		}
	}

	wasCompleted := prev != nil && prev.Completed
	next, changed := applyCompletion(prev, lessonID, user.ID, activityID, total, c.deps.Now().UTC())
	if !changed {
		return &CompletionResult{Progress: next, AlreadyCompleted: true, LessonCompleted: next.Completed}, nil
	}

	if err := c.deps.Progress.UpsertProgress(ctx, &next); err != nil {
		c.log.Warn("failed to save progress", "lesson_id", lessonID, "user_id", user.ID, "error", err)
		c.notify(errorNotice(MsgSaveProgressFailed))
		return nil, &PersistenceError{Op: "save progress", Err: err}
	}

	c.mu.Lock()
	if epoch == c.epoch && c.userID == user.ID {
		c.progress[lessonID] = next.Clone()
	}
	c.notifyLocked(starsNotice(next.StarsEarned))
	c.mu.Unlock()

	c.deps.Metrics.ActivityCompleted()
	return &CompletionResult{
		Progress:        next,
		LessonCompleted: next.Completed && !wasCompleted,
		Celebration:     defaultCelebration(),
	}, nil
}

func (c *LessonController) storedProgress(ctx context.Context, userID int64, lessonID string) (*models.Progress, error) {
	rows, err := c.deps.Progress.ListProgress(ctx, userID, []string{lessonID})
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].LessonID == lessonID && rows[i].UserID == userID {
			p := rows[i].Clone()
			return &p, nil
		}
	}
	return nil, nil
}

func (c *LessonController) phaseLocked() Phase {
	switch {
	case c.selected == nil:
		return c.idle
	case c.generating > 0:
		return PhaseGeneratingLesson
	case c.lessonsLoading:
		return PhaseLessonsLoading
	default:
		return PhaseLessonsLoaded
	}
}

func (c *LessonController) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phaseLocked()
}

func (c *LessonController) Generating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generating > 0
}

func (c *LessonController) completedLessonsLocked() int {
	n := 0
	for _, l := range c.lessons {
		if p, ok := c.progress[l.ID]; ok && p.Completed {
			n++
		}
	}
	return n
}

func (c *LessonController) totalStarsLocked() int {
	total := 0
	for _, p := range c.progress {
		total += p.StarsEarned
	}
	return total
}

// CourseProgress is the percentage of loaded lessons the user completed.
func (c *LessonController) CourseProgress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return coursePercent(c.completedLessonsLocked(), len(c.lessons))
}

func (c *LessonController) CompletedLessons() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completedLessonsLocked()
}

func (c *LessonController) TotalStars() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalStarsLocked()
}

func (c *LessonController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	lessons := normalizeLessons(c.lessons)
	progress := make(map[string]models.Progress, len(c.progress))
	for id, p := range c.progress {
		progress[id] = p.Clone()
	}
	var selected *models.Course
	if c.selected != nil {
		course := *c.selected
		selected = &course
	}
	completed := c.completedLessonsLocked()
	pct := coursePercent(completed, len(c.lessons))

	return Snapshot{
		Phase:                 c.phaseLocked(),
		Courses:               cloneCourses(c.courses),
		SelectedCourse:        selected,
		Lessons:               lessons,
		Progress:              progress,
		Generating:            c.generating > 0,
		CourseProgress:        pct,
		CourseProgressRounded: int(math.Round(pct)),
		CompletedLessons:      completed,
		TotalLessons:          len(c.lessons),
		TotalStars:            c.totalStarsLocked(),
	}
}

// DrainNotices returns the queued notices and clears the queue.
func (c *LessonController) DrainNotices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notices
	c.notices = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

func cloneCourses(in []models.Course) []models.Course {
	out := make([]models.Course, len(in))
	copy(out, in)
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
