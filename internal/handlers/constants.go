package handlers

import "time"

const (
	SessionCookieName = "session_id"
	LearnerCookieName = "learner_id"
	APIKeyCookieName  = "ai_api_key"

	ErrInvalidRequest      = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrInternalServerError = "Internal server error"

	MsgAPIKeySaved = "API key saved successfully!"

	learnerCookieTTL = 365 * 24 * time.Hour
	apiKeyCookieTTL  = 90 * 24 * time.Hour

	maxBodyBytes = 1 << 20
)
