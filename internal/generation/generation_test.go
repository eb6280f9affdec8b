package generation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"learnhub/internal/models"
)

const validLesson = `{"title":"Counting Fun","content":"Let's count to five!","activities":[{"type":"question","text":"What comes after 2?"},{"type":"game","text":"Count the apples"}]}`

func TestParseLesson(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantErr  bool
		wantActs int
	}{
		{name: "valid", raw: validLesson, wantActs: 2},
		{name: "code fenced", raw: "```json\n" + validLesson + "\n```", wantActs: 2},
		{name: "no activities", raw: `{"title":"T","content":"C"}`, wantActs: 0},
		{name: "not json", raw: "Here is your lesson!", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "null", raw: "null", wantErr: true},
		{name: "array", raw: `[1,2]`, wantErr: true},
		{name: "missing title", raw: `{"content":"C","activities":[]}`, wantErr: true},
		{name: "blank content", raw: `{"title":"T","content":"  "}`, wantErr: true},
		{name: "unknown activity type", raw: `{"title":"T","content":"C","activities":[{"type":"quiz","text":"x"}]}`, wantErr: true},
		{name: "empty activity text", raw: `{"title":"T","content":"C","activities":[{"type":"game","text":""}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson, err := ParseLesson([]byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLesson() = %+v, want error", lesson)
				}
				if ge := AsGenerationError(err); ge.Kind != KindMalformed {
					t.Errorf("kind = %v, want malformed", ge.Kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLesson() error: %v", err)
			}
			if len(lesson.Activities) != tt.wantActs {
				t.Errorf("activities = %d, want %d", len(lesson.Activities), tt.wantActs)
			}
		})
	}
}

func TestAssignActivityIDs(t *testing.T) {
	acts := []models.Activity{
		{Type: models.ActivityQuestion, Text: "Same"},
		{Type: models.ActivityQuestion, Text: "Same"},
		{ID: "keep-me", Type: models.ActivityGame, Text: "Play"},
	}

	first := AssignActivityIDs(acts)
	second := AssignActivityIDs(acts)

	if first[0].ID == "" || first[0].ID == first[1].ID {
		t.Errorf("ids should be set and distinct: %q %q", first[0].ID, first[1].ID)
	}
	if first[0].ID != second[0].ID {
		t.Error("ids should be stable across calls")
	}
	if first[2].ID != "keep-me" {
		t.Errorf("existing id replaced: %q", first[2].ID)
	}
	if acts[0].ID != "" {
		t.Error("input slice was modified")
	}
}

func TestGenerationErrorMessages(t *testing.T) {
	tests := []struct {
		kind       Kind
		wantMsg    string
		wantStatus int
	}{
		{KindRateLimited, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests},
		{KindQuotaExhausted, "AI credits exhausted. Please add funds to continue.", http.StatusPaymentRequired},
		{KindMalformed, MsgMalformed, http.StatusInternalServerError},
		{KindFailed, "Failed to generate lesson", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := &GenerationError{Kind: tt.kind}
			if e.Message() != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", e.Message(), tt.wantMsg)
			}
			if e.HTTPStatus() != tt.wantStatus {
				t.Errorf("HTTPStatus() = %d, want %d", e.HTTPStatus(), tt.wantStatus)
			}
		})
	}

	wrapped := errors.New("boom")
	if ge := AsGenerationError(wrapped); ge.Kind != KindFailed || !errors.Is(ge, wrapped) {
		t.Errorf("AsGenerationError(plain) = %+v", ge)
	}
}

func TestClientStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantErr  bool
	}{
		{name: "ok", status: http.StatusOK, body: validLesson},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":"Rate limit exceeded. Please try again later."}`, wantKind: KindRateLimited, wantErr: true},
		{name: "credits", status: http.StatusPaymentRequired, body: `{"error":"AI credits exhausted. Please add funds to continue."}`, wantKind: KindQuotaExhausted, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`, wantKind: KindFailed, wantErr: true},
		{name: "bad body", status: http.StatusOK, body: `not json`, wantKind: KindMalformed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			var gotReq Request
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				_ = json.NewDecoder(r.Body).Decode(&gotReq)
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, func() (string, error) { return "fn-token", nil }, nil)
			lesson, err := c.Generate(context.Background(), Request{Subject: "Math", AgeRange: "5-8", Topic: "Introduction to Math Adventures"})

			if gotAuth != "Bearer fn-token" {
				t.Errorf("Authorization = %q", gotAuth)
			}
			if gotReq.AgeRange != "5-8" || gotReq.Topic != "Introduction to Math Adventures" {
				t.Errorf("request body = %+v", gotReq)
			}
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Generate() error: %v", err)
				}
				if lesson.Title != "Counting Fun" {
					t.Errorf("title = %q", lesson.Title)
				}
				return
			}
			var ge *GenerationError
			if !errors.As(err, &ge) {
				t.Fatalf("error %v is not a GenerationError", err)
			}
			if ge.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", ge.Kind, tt.wantKind)
			}
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second, nil, nil).Generate(context.Background(), Request{})
	if ge := AsGenerationError(err); err == nil || ge.Kind != KindFailed {
		t.Errorf("Generate() error = %v, want failed kind", err)
	}
}

func chatBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"content": content}}},
	})
	return string(b)
}

func TestGatewayGenerate(t *testing.T) {
	var got chatRequest
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		io.WriteString(w, chatBody(validLesson))
	}))
	defer srv.Close()

	g := NewGateway(GatewayConfig{BaseURL: srv.URL + "/", APIKey: "server-key"}, nil)
	lesson, err := g.Generate(context.Background(), Request{Subject: "Science", AgeRange: "6-10", Topic: "Introduction to Science Explorers"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if lesson.Title != "Counting Fun" || len(lesson.Activities) != 2 {
		t.Errorf("lesson = %+v", lesson)
	}
	if gotPath != "/v1/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer server-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if got.Model != "google/gemini-2.5-flash" || got.Temperature != 0.7 {
		t.Errorf("model/temperature = %q/%v", got.Model, got.Temperature)
	}
	if len(got.Messages) != 2 || !strings.Contains(got.Messages[0].Content, "aged 6-10") {
		t.Errorf("system prompt missing age range: %+v", got.Messages)
	}
	if got.Messages[1].Content != "Create a lesson about Introduction to Science Explorers for Science" {
		t.Errorf("user prompt = %q", got.Messages[1].Content)
	}
}

func TestGatewayPrefersContextKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, chatBody(validLesson))
	}))
	defer srv.Close()

	g := NewGateway(GatewayConfig{BaseURL: srv.URL, APIKey: "server-key"}, nil)
	if _, err := g.Generate(WithAPIKey(context.Background(), "learner-key"), Request{}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if gotAuth != "Bearer learner-key" {
		t.Errorf("Authorization = %q, want learner key", gotAuth)
	}
}

func TestKeyFingerprint(t *testing.T) {
	ctx := context.Background()
	if got := KeyFingerprint(ctx); got != "" {
		t.Errorf("no key fingerprint = %q", got)
	}
	a := KeyFingerprint(WithAPIKey(ctx, "key-a"))
	b := KeyFingerprint(WithAPIKey(ctx, "key-b"))
	if a == "" || a == b {
		t.Errorf("fingerprints a=%q b=%q", a, b)
	}
	if a != KeyFingerprint(WithAPIKey(ctx, "key-a")) {
		t.Error("fingerprint not stable")
	}
	if strings.Contains(a, "key-a") {
		t.Errorf("fingerprint leaks key: %q", a)
	}
}

func TestGatewayErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: "slow down", wantKind: KindRateLimited},
		{name: "credits", status: http.StatusPaymentRequired, body: "pay up", wantKind: KindQuotaExhausted},
		{name: "upstream failure", status: http.StatusBadGateway, body: "oops", wantKind: KindFailed},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantKind: KindMalformed},
		{name: "prose reply", status: http.StatusOK, body: chatBody("Sure! Here is a lesson."), wantKind: KindMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewGateway(GatewayConfig{BaseURL: srv.URL, APIKey: "k"}, nil).Generate(context.Background(), Request{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if ge := AsGenerationError(err); ge.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", ge.Kind, tt.wantKind)
			}
		})
	}
}

func TestGatewayMissingKey(t *testing.T) {
	_, err := NewGateway(GatewayConfig{BaseURL: "http://unused"}, nil).Generate(context.Background(), Request{})
	if ge := AsGenerationError(err); err == nil || ge.Kind != KindFailed {
		t.Errorf("Generate() error = %v, want failed kind", err)
	}
}
