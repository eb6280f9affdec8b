package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"learnhub/internal/logger"
)

// TokenFunc returns the bearer token sent with each request
type TokenFunc func() (string, error)

// Client calls a remote generate-lesson endpoint
type Client struct {
	url        string
	token      TokenFunc
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a Client for the endpoint at url. token may be nil.
func NewClient(url string, timeout time.Duration, token TokenFunc, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		url:        strings.TrimRight(url, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "generation_client"),
	}
}

// Generate posts req to the endpoint and validates the returned lesson
func (c *Client) Generate(ctx context.Context, req Request) (*Lesson, error) {
	var bearer string
	if c.token != nil {
		t, err := c.token()
		if err != nil {
			return nil, newError(KindFailed, 0, err)
		}
		bearer = t
	}

	raw, err := doJSON(ctx, c.httpClient, c.url, bearer, req)
	if err != nil {
		var se *httpStatusError
		if errors.As(err, &se) {
			c.log.Warn("generate-lesson endpoint returned an error",
				"status", se.StatusCode,
				"error", endpointErrorMessage(raw),
			)
			return nil, fromStatus(se.StatusCode, endpointErrorMessage(raw))
		}
		c.log.Warn("generate-lesson request failed", "error", err.Error())
		return nil, newError(KindFailed, 0, err)
	}

	lesson, err := ParseLesson(raw)
	if err != nil {
		c.log.Warn("generate-lesson response rejected", "error", err.Error())
		return nil, err
	}
	return lesson, nil
}

// endpointErrorMessage pulls "error" out of a {"error": "..."} body
func endpointErrorMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
