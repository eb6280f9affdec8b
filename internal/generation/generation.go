// Package generation produces children's lessons from a language model.
//
// Two implementations of Generator exist: Client calls a remote
// generate-lesson endpoint over HTTP, and Gateway talks to an
// OpenAI-compatible chat completions API directly. The server's
// /functions/generate-lesson route is backed by Gateway.
package generation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"learnhub/internal/models"
)

// Request describes the lesson to create
type Request struct {
	Subject  string `json:"subject"`
	AgeRange string `json:"ageRange"`
	Topic    string `json:"topic"`
}

// Lesson is a validated generation result, not yet stored
type Lesson struct {
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Activities []models.Activity `json:"activities"`
}

// Generator creates a lesson. Errors are *GenerationError.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Lesson, error)
}

type apiKeyCtxKey struct{}

// WithAPIKey attaches a caller-supplied provider key that Gateway prefers
// over its configured key.
func WithAPIKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, apiKeyCtxKey{}, key)
}

func apiKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(apiKeyCtxKey{}).(string)
	return key
}

// KeyFingerprint identifies the caller-supplied key on ctx without
// exposing it. It is empty when ctx carries no key.
func KeyFingerprint(ctx context.Context) string {
	key := apiKeyFrom(ctx)
	if key == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
