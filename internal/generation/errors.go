package generation

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a generation failure
type Kind int

const (
	KindFailed Kind = iota
	KindRateLimited
	KindQuotaExhausted
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindQuotaExhausted:
		return "quota_exhausted"
	case KindMalformed:
		return "malformed"
	default:
		return "failed"
	}
}

const (
	MsgRateLimited    = "Rate limit exceeded. Please try again later."
	MsgQuotaExhausted = "AI credits exhausted. Please add funds to continue."
	MsgMalformed      = "The generated lesson could not be read. Please try again."
	MsgFailed         = "Failed to generate lesson"
)

// GenerationError is returned by every Generator
type GenerationError struct {
	Kind Kind
	// Status is the upstream HTTP status, 0 when no response was received
	Status int
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return "generation " + e.Kind.String()
	}
	return fmt.Sprintf("generation %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Message is the wording shown to the learner
func (e *GenerationError) Message() string {
	switch e.Kind {
	case KindRateLimited:
		return MsgRateLimited
	case KindQuotaExhausted:
		return MsgQuotaExhausted
	case KindMalformed:
		return MsgMalformed
	default:
		return MsgFailed
	}
}

// HTTPStatus is the status the generate-lesson endpoint answers with
func (e *GenerationError) HTTPStatus() int {
	switch e.Kind {
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindQuotaExhausted:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, status int, err error) *GenerationError {
	return &GenerationError{Kind: kind, Status: status, Err: err}
}

// fromStatus maps a non-2xx upstream status to a GenerationError
func fromStatus(status int, body string) *GenerationError {
	err := fmt.Errorf("upstream status %d: %s", status, body)
	switch status {
	case http.StatusTooManyRequests:
		return newError(KindRateLimited, status, err)
	case http.StatusPaymentRequired:
		return newError(KindQuotaExhausted, status, err)
	default:
		return newError(KindFailed, status, err)
	}
}

// AsGenerationError unwraps err to a *GenerationError. Anything else is
// reported as a generic failure.
func AsGenerationError(err error) *GenerationError {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge
	}
	return newError(KindFailed, 0, err)
}
