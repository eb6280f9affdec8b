package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learnhub/internal/security"
)

func settingsRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), LearnerContextKey, "learner-1"))
}

func TestSettingsShow(t *testing.T) {
	csrf := security.NewCSRFGenerator("csrf-secret")
	h := NewSettingsHandler(csrf, nil)

	req := settingsRequest(http.MethodGet, "/settings", "")
	req.AddCookie(&http.Cookie{Name: APIKeyCookieName, Value: "sk-test"})
	rec := httptest.NewRecorder()
	h.Show(rec, req)

	var resp settingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.KeySet || !csrf.ValidateToken("learner-1", resp.CSRFToken) {
		t.Errorf("settings = %+v", resp)
	}
}

func TestSaveAPIKey(t *testing.T) {
	csrf := security.NewCSRFGenerator("csrf-secret")
	token, err := csrf.GenerateToken("learner-1")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		token      string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "saved", token: token, body: `{"api_key":" sk-abc123 "}`, wantStatus: http.StatusOK, wantMsg: MsgAPIKeySaved},
		{name: "empty", token: token, body: `{"api_key":"   "}`, wantStatus: http.StatusBadRequest, wantMsg: "Please enter an API key"},
		{name: "missing csrf", token: "", body: `{"api_key":"sk-abc123"}`, wantStatus: http.StatusForbidden, wantMsg: "Invalid CSRF token"},
		{name: "wrong csrf", token: "deadbeef", body: `{"api_key":"sk-abc123"}`, wantStatus: http.StatusForbidden, wantMsg: "Invalid CSRF token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := settingsRequest(http.MethodPost, "/settings/api-key", tt.body)
			if tt.token != "" {
				req.Header.Set(security.CSRFHeaderName, tt.token)
			}
			rec := httptest.NewRecorder()
			NewSettingsHandler(csrf, nil).SaveAPIKey(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			got := body["message"]
			if got == "" {
				got = body["error"]
			}
			if got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}

			var saved *http.Cookie
			for _, c := range rec.Result().Cookies() {
				if c.Name == APIKeyCookieName {
					saved = c
				}
			}
			if tt.wantStatus != http.StatusOK {
				if saved != nil {
					t.Error("key cookie set on failure")
				}
				return
			}
			if saved == nil || saved.Value != "sk-abc123" || !saved.HttpOnly {
				t.Errorf("key cookie = %+v", saved)
			}
		})
	}
}
