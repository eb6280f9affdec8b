package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"learnhub/internal/logger"
)

const systemPromptTemplate = `You are a friendly children's education content creator. Create engaging, age-appropriate educational content for young children aged %s.

Make the content:
- Simple and easy to understand
- Fun and engaging with examples
- Interactive with activities
- Safe and appropriate for children

Format the response as JSON with:
{
  "title": "Lesson title",
  "content": "Main lesson content with simple explanations and examples",
  "activities": [
    {"type": "question", "text": "Interactive question"},
    {"type": "exercise", "text": "Fun activity to try"},
    {"type": "game", "text": "Educational game idea"}
  ]
}`

// SystemPrompt returns the instructions sent to the model for an age range
func SystemPrompt(ageRange string) string {
	return fmt.Sprintf(systemPromptTemplate, ageRange)
}

// UserPrompt returns the user turn for a request
func UserPrompt(req Request) string {
	return fmt.Sprintf("Create a lesson about %s for %s", req.Topic, req.Subject)
}

type GatewayConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// Gateway generates lessons through an OpenAI-compatible chat completions API
type Gateway struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
	log         *logger.Logger
}

func NewGateway(cfg GatewayConfig, log *logger.Logger) *Gateway {
	if cfg.Model == "" {
		cfg.Model = "google/gemini-2.5-flash"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Gateway{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         log.With("component", "ai_gateway"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate asks the model for a lesson and validates the reply
func (g *Gateway) Generate(ctx context.Context, req Request) (*Lesson, error) {
	key := apiKeyFrom(ctx)
	if key == "" {
		key = g.apiKey
	}
	if key == "" {
		return nil, newError(KindFailed, 0, errors.New("AI gateway API key is not configured"))
	}

	body := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt(req.AgeRange)},
			{Role: "user", Content: UserPrompt(req)},
		},
		Temperature: g.temperature,
	}

	start := time.Now()
	raw, err := doJSON(ctx, g.httpClient, g.baseURL+"/v1/chat/completions", key, body)
	if err != nil {
		var se *httpStatusError
		if errors.As(err, &se) {
			g.log.Error("AI gateway error", "status", se.StatusCode, "body", se.Body)
			return nil, fromStatus(se.StatusCode, se.Body)
		}
		g.log.Error("AI gateway request failed", "error", err.Error())
		return nil, newError(KindFailed, 0, err)
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, newError(KindMalformed, 0, fmt.Errorf("decode chat response: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, newError(KindMalformed, 0, errors.New("chat response has no choices"))
	}

	lesson, err := ParseLesson([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		g.log.Warn("model reply rejected", "error", err.Error())
		return nil, err
	}

	g.log.Debug("lesson generated",
		"subject", req.Subject,
		"activities", len(lesson.Activities),
		"duration", time.Since(start).String(),
	)
	return lesson, nil
}
