package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	functionTokenIssuer   = "learnhub"
	functionTokenAudience = "generate-lesson"
)

// FunctionTokens issues and verifies the short-lived bearer tokens that
// authorize calls to the generate-lesson endpoint.
type FunctionTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewFunctionTokens(secret string, ttl time.Duration) *FunctionTokens {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &FunctionTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Enabled is false when no secret is configured, in which case the
// endpoint accepts unauthenticated calls.
func (f *FunctionTokens) Enabled() bool {
	return f != nil && len(f.secret) > 0
}

// Issue signs a token for subject
func (f *FunctionTokens) Issue(subject string) (string, error) {
	if !f.Enabled() {
		return "", errors.New("function secret is not configured")
	}
	now := f.now()
	claims := jwt.RegisteredClaims{
		Issuer:    functionTokenIssuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{functionTokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(f.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.secret)
}

// Verify checks signature, issuer, audience and expiry, and returns the subject
func (f *FunctionTokens) Verify(token string) (string, error) {
	if !f.Enabled() {
		return "", errors.New("function secret is not configured")
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(functionTokenIssuer),
		jwt.WithAudience(functionTokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(f.now),
	)
	claims := &jwt.RegisteredClaims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return f.secret, nil
	}); err != nil {
		return "", fmt.Errorf("invalid function token: %w", err)
	}
	return claims.Subject, nil
}
