package security

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	password := "testPassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" || hash == password {
		t.Error("HashPassword() returned an unusable hash")
	}

	// Test same password produces different hashes (due to salt)
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == hash2 {
		t.Error("HashPassword() should produce different hashes due to salt")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "mySecurePassword"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: password, hash: hash, want: true},
		{name: "incorrect password", password: "wrongPassword", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "oauth-only account", password: password, hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.hash); got != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCSRF(t *testing.T) {
	g := NewCSRFGenerator("secret")
	token, err := g.GenerateToken("learner-1")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if _, err := g.GenerateToken(""); err == nil {
		t.Error("GenerateToken(\"\") should fail")
	}

	tests := []struct {
		name  string
		id    string
		token string
		want  bool
	}{
		{name: "valid", id: "learner-1", token: token, want: true},
		{name: "other learner", id: "learner-2", token: token, want: false},
		{name: "empty token", id: "learner-1", token: "", want: false},
		{name: "other secret", id: "learner-1", token: mustToken(t, NewCSRFGenerator("other"), "learner-1"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ValidateToken(tt.id, tt.token); got != tt.want {
				t.Errorf("ValidateToken() = %v, want %v", got, tt.want)
			}
		})
	}

	r := httptest.NewRequest("POST", "/settings/api-key", strings.NewReader("csrf_token="+token))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if !g.ValidateRequest(r, "learner-1") {
		t.Error("ValidateRequest() should accept the form field")
	}
	r = httptest.NewRequest("POST", "/settings/api-key", nil)
	r.Header.Set(CSRFHeaderName, token)
	if !g.ValidateRequest(r, "learner-1") {
		t.Error("ValidateRequest() should accept the header")
	}
}

func mustToken(t *testing.T, g *CSRFGenerator, id string) string {
	t.Helper()
	tok, err := g.GenerateToken(id)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if ok, _ := rl.Allow("1.2.3.4"); !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	ok, retry := rl.Allow("1.2.3.4")
	if ok {
		t.Fatal("third request should be limited")
	}
	if retry != time.Minute {
		t.Errorf("retry after = %v, want 1m", retry)
	}
	if ok, _ := rl.Allow("5.6.7.8"); !ok {
		t.Error("other client should not be limited")
	}

	now = now.Add(time.Minute)
	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Error("bucket should refill after the window")
	}

	now = now.Add(10 * time.Minute)
	rl.sweep()
	rl.mu.Lock()
	left := len(rl.visitors)
	rl.mu.Unlock()
	if left != 0 {
		t.Errorf("sweep left %d visitors", left)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded chain", headers: map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, remote: "1.1.1.1:80", want: "10.0.0.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "10.0.0.9"}, remote: "1.1.1.1:80", want: "10.0.0.9"},
		{name: "remote addr", remote: "192.168.1.5:5555", want: "192.168.1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunctionTokens(t *testing.T) {
	ft := NewFunctionTokens("fn-secret", time.Minute)
	token, err := ft.Issue("learner-1")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	sub, err := ft.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if sub != "learner-1" {
		t.Errorf("subject = %q", sub)
	}

	if _, err := NewFunctionTokens("other", time.Minute).Verify(token); err == nil {
		t.Error("token signed with another secret should fail")
	}

	expired := NewFunctionTokens("fn-secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := expired.Verify(token); err == nil {
		t.Error("expired token should fail")
	}

	disabled := NewFunctionTokens("", time.Minute)
	if disabled.Enabled() {
		t.Error("empty secret should disable tokens")
	}
	if _, err := disabled.Issue("x"); err == nil {
		t.Error("Issue() without a secret should fail")
	}
}

func TestLearnerIDs(t *testing.T) {
	id := GenerateLearnerID()
	if !IsValidLearnerID(id) {
		t.Errorf("generated id %q should be valid", id)
	}
	if IsValidLearnerID("not-a-uuid") {
		t.Error("garbage should not be a valid learner id")
	}
}
