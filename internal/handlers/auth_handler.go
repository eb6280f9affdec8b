package handlers

import (
	"errors"
	"net/http"

	"learnhub/internal/logger"
	"learnhub/internal/security"
	"learnhub/internal/service"
	"learnhub/internal/validation"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService          *service.AuthService
	oauthProviders       map[string]OAuthProvider
	oauthRedirectBaseURL string
	log                  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, oauthProviders map[string]OAuthProvider, oauthRedirectBaseURL string, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &AuthHandler{
		authService:          authService,
		oauthProviders:       oauthProviders,
		oauthRedirectBaseURL: oauthRedirectBaseURL,
		log:                  log,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates an account and signs it in
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, h.log, http.StatusBadRequest, ErrInvalidRequest, "", nil)
		return
	}

	if _, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name); err != nil {
		var ve validation.ValidationError
		switch {
		case errors.As(err, &ve):
			respondWithError(w, h.log, http.StatusBadRequest, ve.Message, "", nil)
		case errors.Is(err, service.ErrEmailTaken):
			respondWithError(w, h.log, http.StatusConflict, "An account with this email already exists", "", nil)
		default:
			respondWithError(w, h.log, http.StatusInternalServerError, ErrInternalServerError, "registration failed", err)
		}
		return
	}

	// Auto-login after registration
	session, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, h.log, http.StatusInternalServerError, ErrInternalServerError, "login after registration failed", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusCreated, user)
}

// Login handles login submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, h.log, http.StatusBadRequest, ErrInvalidRequest, "", nil)
		return
	}

	session, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, h.log, http.StatusUnauthorized, "Invalid email or password", "", nil)
			return
		}
		respondWithError(w, h.log, http.StatusInternalServerError, ErrInternalServerError, "login failed", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusOK, user)
}

// Logout handles logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			h.log.Warn("logout failed", "error", err)
		}
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))
	w.WriteHeader(http.StatusNoContent)
}

type meResponse struct {
	User           interface{} `json:"user"`
	OAuthProviders []string    `json:"oauth_providers"`
}

// Me reports the signed-in user, or null, plus the sign-in options
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	resp := meResponse{OAuthProviders: h.enabledProviders()}
	if user := GetUserFromContext(r.Context()); user != nil {
		resp.User = user
	}
	respondJSON(w, http.StatusOK, resp)
}
