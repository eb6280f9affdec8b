package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"learnhub/internal/logger"
	"learnhub/internal/metrics"
	"learnhub/internal/models"
	"learnhub/internal/security"
)

func TestWithLearner(t *testing.T) {
	m := NewMiddleware(nil, nil, nil)
	var seen string
	h := m.WithLearner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetLearnerID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/kids", nil))
	if !security.IsValidLearnerID(seen) {
		t.Fatalf("learner id = %q", seen)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LearnerCookieName || cookies[0].Value != seen {
		t.Fatalf("cookies = %+v", cookies)
	}

	existing := seen
	req := httptest.NewRequest(http.MethodGet, "/api/kids", nil)
	req.AddCookie(&http.Cookie{Name: LearnerCookieName, Value: existing})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != existing || len(rec.Result().Cookies()) != 0 {
		t.Errorf("existing learner id not reused: %q", seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/kids", nil)
	req.AddCookie(&http.Cookie{Name: LearnerCookieName, Value: "forged"})
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == "forged" {
		t.Error("invalid learner id accepted")
	}
}

func TestRequireAuth(t *testing.T) {
	m := NewMiddleware(nil, nil, nil)
	h := m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), UserContextKey, &models.User{ID: 1}))
	rec = httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Errorf("signed-in status = %d", rec.Code)
	}
}

func TestLoggingAndInstrument(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	met := metrics.New(false)
	m := NewMiddleware(nil, met, logger.FromZap(zap.New(core)))

	mux := http.NewServeMux()
	mux.Handle("GET /api/catalog/courses/{id}", m.Instrument("GET /api/catalog/courses/{id}",
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})))
	h := m.Logging(mux)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/catalog/courses/x", nil))

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("request log entries = %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusNotFound) || fields["path"] != "/api/catalog/courses/x" {
		t.Errorf("log fields = %v", fields)
	}

	expected := `
# HELP learnhub_http_requests_total HTTP requests by method, route pattern and status code.
# TYPE learnhub_http_requests_total counter
learnhub_http_requests_total{method="GET",route="GET /api/catalog/courses/{id}",status="404"} 1
`
	if err := testutil.GatherAndCompare(met.Registry(), strings.NewReader(expected), "learnhub_http_requests_total"); err != nil {
		t.Error(err)
	}
}
