package handlers

import (
	"errors"
	"net/http"
	"strings"

	"learnhub/internal/logger"
	"learnhub/internal/security"
	"learnhub/internal/validation"
)

// SettingsHandler manages the learner's AI provider key. The key lives only
// in a cookie on the learner's browser.
type SettingsHandler struct {
	csrf *security.CSRFGenerator
	log  *logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(csrf *security.CSRFGenerator, log *logger.Logger) *SettingsHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &SettingsHandler{csrf: csrf, log: log}
}

type settingsResponse struct {
	CSRFToken string `json:"csrf_token"`
	KeySet    bool   `json:"key_set"`
}

// Show handles GET /settings
func (h *SettingsHandler) Show(w http.ResponseWriter, r *http.Request) {
	token, err := h.csrf.GenerateToken(GetLearnerID(r.Context()))
	if err != nil {
		respondWithError(w, h.log, http.StatusInternalServerError, ErrInternalServerError, "csrf token generation failed", err)
		return
	}
	keySet := false
	if cookie, err := r.Cookie(APIKeyCookieName); err == nil && cookie.Value != "" {
		keySet = true
	}
	respondJSON(w, http.StatusOK, settingsResponse{CSRFToken: token, KeySet: keySet})
}

type apiKeyRequest struct {
	APIKey string `json:"api_key"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// SaveAPIKey handles POST /settings/api-key
func (h *SettingsHandler) SaveAPIKey(w http.ResponseWriter, r *http.Request) {
	if !h.csrf.ValidateRequest(r, GetLearnerID(r.Context())) {
		respondWithError(w, h.log, http.StatusForbidden, "Invalid CSRF token", "", nil)
		return
	}

	var req apiKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, h.log, http.StatusBadRequest, ErrInvalidRequest, "", nil)
		return
	}
	if err := validation.ValidateAPIKey(req.APIKey); err != nil {
		var ve validation.ValidationError
		msg := ErrInvalidRequest
		if errors.As(err, &ve) {
			msg = ve.Message
		}
		respondWithError(w, h.log, http.StatusBadRequest, msg, "", nil)
		return
	}

	http.SetCookie(w, security.CreateSecretCookie(r, APIKeyCookieName, strings.TrimSpace(req.APIKey), apiKeyCookieTTL))
	respondJSON(w, http.StatusOK, messageResponse{Message: MsgAPIKeySaved})
}
