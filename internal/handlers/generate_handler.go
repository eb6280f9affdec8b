package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"learnhub/internal/generation"
	"learnhub/internal/logger"
	"learnhub/internal/security"
	"learnhub/internal/validation"
)

// GenerateHandler serves the generate-lesson function endpoint
type GenerateHandler struct {
	generator generation.Generator
	tokens    *security.FunctionTokens
	limiter   *security.RateLimiter
	log       *logger.Logger
}

// NewGenerateHandler creates the endpoint. A nil limiter disables rate
// limiting; tokens that are not Enabled accept every caller.
func NewGenerateHandler(generator generation.Generator, tokens *security.FunctionTokens, limiter *security.RateLimiter, log *logger.Logger) *GenerateHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &GenerateHandler{generator: generator, tokens: tokens, limiter: limiter, log: log}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

// Preflight answers CORS preflight requests
func (h *GenerateHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.WriteHeader(http.StatusOK)
}

// Generate handles POST /functions/generate-lesson
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if h.tokens != nil && h.tokens.Enabled() {
		bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			respondWithError(w, h.log, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}
		if _, err := h.tokens.Verify(bearer); err != nil {
			respondWithError(w, h.log, http.StatusUnauthorized, ErrUnauthorized, "function token rejected", err)
			return
		}
	}

	if h.limiter != nil {
		if ok, retry := h.limiter.Allow(security.GetClientIP(r)); !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			respondWithError(w, h.log, http.StatusTooManyRequests, generation.MsgRateLimited, "", nil)
			return
		}
	}

	var req generation.Request
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, h.log, http.StatusBadRequest, ErrInvalidRequest, "", nil)
		return
	}
	if err := validation.ValidateGenerationRequest(req.Subject, req.AgeRange, req.Topic); err != nil {
		var ve validation.ValidationError
		msg := ErrInvalidRequest
		if errors.As(err, &ve) {
			msg = ve.Message
		}
		respondWithError(w, h.log, http.StatusBadRequest, msg, "", nil)
		return
	}

	lesson, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		ge := generation.AsGenerationError(err)
		respondWithError(w, h.log, ge.HTTPStatus(), ge.Message(), "lesson generation failed", err)
		return
	}

	respondJSON(w, http.StatusOK, lesson)
}
