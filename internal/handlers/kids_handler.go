package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"learnhub/internal/generation"
	"learnhub/internal/logger"
	"learnhub/internal/models"
	"learnhub/internal/service"
)

// KidsHandler exposes the children's area. Every request is served by the
// lesson controller bound to the caller's learner cookie.
type KidsHandler struct {
	store *service.ControllerStore
	log   *logger.Logger
}

// NewKidsHandler creates a new kids handler
func NewKidsHandler(store *service.ControllerStore, log *logger.Logger) *KidsHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &KidsHandler{store: store, log: log}
}

type kidsResponse struct {
	State      service.Snapshot          `json:"state"`
	Notices    []service.Notice          `json:"notices"`
	Lesson     *models.Lesson            `json:"lesson,omitempty"`
	Completion *service.CompletionResult `json:"completion,omitempty"`
	Error      string                    `json:"error,omitempty"`
}

func (h *KidsHandler) controller(r *http.Request) *service.LessonController {
	return h.store.Get(GetLearnerID(r.Context()))
}

// respond writes the controller state with the drained notices
func (h *KidsHandler) respond(w http.ResponseWriter, c *service.LessonController, err error, resp kidsResponse) {
	status := http.StatusOK
	if err != nil {
		status = kidsStatus(err)
		resp.Error = err.Error()
		if status >= http.StatusInternalServerError {
			h.log.Error("kids request failed", "status", status, "error", err)
		}
	}
	resp.State = c.Snapshot()
	resp.Notices = c.DrainNotices()
	respondJSON(w, status, resp)
}

// kidsStatus maps a controller error to the response status
func kidsStatus(err error) int {
	var authErr *service.AuthRequiredError
	var genErr *generation.GenerationError
	switch {
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrLessonNotFound),
		errors.Is(err, service.ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoCourseSelected):
		return http.StatusConflict
	case errors.As(err, &genErr):
		switch genErr.Kind {
		case generation.KindRateLimited:
			return http.StatusTooManyRequests
		case generation.KindQuotaExhausted:
			return http.StatusPaymentRequired
		default:
			return http.StatusBadGateway
		}
	default:
		return http.StatusInternalServerError
	}
}

// State handles GET /api/kids
func (h *KidsHandler) State(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.controller(r), nil, kidsResponse{})
}

// LoadCourses handles POST /api/kids/courses/load
func (h *KidsHandler) LoadCourses(w http.ResponseWriter, r *http.Request) {
	c := h.controller(r)
	_, err := c.LoadCourses(r.Context())
	h.respond(w, c, err, kidsResponse{})
}

// SelectCourse handles POST /api/kids/courses/{id}/select
func (h *KidsHandler) SelectCourse(w http.ResponseWriter, r *http.Request) {
	c := h.controller(r)
	err := c.SelectCourse(r.Context(), GetUserFromContext(r.Context()), r.PathValue("id"))
	h.respond(w, c, err, kidsResponse{})
}

// ClearSelection handles POST /api/kids/courses/clear
func (h *KidsHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	c := h.controller(r)
	c.ClearSelection()
	h.respond(w, c, nil, kidsResponse{})
}

// LoadLessons handles POST /api/kids/lessons/load
func (h *KidsHandler) LoadLessons(w http.ResponseWriter, r *http.Request) {
	c := h.controller(r)
	err := c.LoadLessons(r.Context(), GetUserFromContext(r.Context()))
	h.respond(w, c, err, kidsResponse{})
}

type loadProgressRequest struct {
	LessonIDs []string `json:"lesson_ids"`
}

// LoadProgress handles POST /api/kids/progress/load. An empty body loads
// progress for every lesson of the selected course.
func (h *KidsHandler) LoadProgress(w http.ResponseWriter, r *http.Request) {
	var req loadProgressRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			respondWithError(w, h.log, http.StatusBadRequest, ErrInvalidRequest, "", nil)
			return
		}
	}
	c := h.controller(r)
	err := c.LoadProgress(r.Context(), GetUserFromContext(r.Context()), req.LessonIDs)
	h.respond(w, c, err, kidsResponse{})
}

// GenerateLesson handles POST /api/kids/lessons/generate
func (h *KidsHandler) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if cookie, err := r.Cookie(APIKeyCookieName); err == nil {
		ctx = generation.WithAPIKey(ctx, cookie.Value)
	}
	c := h.controller(r)
	lesson, err := c.GenerateLesson(ctx, GetUserFromContext(r.Context()))
	h.respond(w, c, err, kidsResponse{Lesson: lesson})
}

// CompleteActivity handles POST /api/kids/lessons/{lessonId}/activities/{index}/complete
func (h *KidsHandler) CompleteActivity(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondWithError(w, h.log, http.StatusBadRequest, "Invalid activity index", "", nil)
		return
	}
	c := h.controller(r)
	result, err := c.CompleteActivity(r.Context(), GetUserFromContext(r.Context()), r.PathValue("lessonId"), index)
	h.respond(w, c, err, kidsResponse{Completion: result})
}
