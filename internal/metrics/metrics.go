// Package metrics holds the Prometheus instruments of the server.
// Every method is safe to call on a nil *Metrics.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"learnhub/internal/logger"
)

const namespace = "learnhub"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	generations    *prometheus.CounterVec
	completions    prometheus.Counter
	lessonsCreated prometheus.Counter
	activeLearners prometheus.Gauge
}

// New creates the instruments on a fresh registry. When
// collectProcessMetrics is true the Go and process collectors are added.
func New(collectProcessMetrics bool) *Metrics {
	reg := prometheus.NewRegistry()
	if collectProcessMetrics {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lesson_generations_total",
			Help:      "Lesson generation attempts by outcome.",
		}, []string{"outcome"}),
		completions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_completions_total",
			Help:      "Activities newly marked complete.",
		}),
		lessonsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lessons_created_total",
			Help:      "Generated lessons stored.",
		}),
		activeLearners: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_learners",
			Help:      "Learner controllers currently held in memory.",
		}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.generations, m.completions, m.lessonsCreated, m.activeLearners)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveGeneration counts a generation attempt. outcome is "success" or a
// generation error kind.
func (m *Metrics) ObserveGeneration(outcome string) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ActivityCompleted() {
	if m == nil {
		return
	}
	m.completions.Inc()
}

func (m *Metrics) LessonCreated() {
	if m == nil {
		return
	}
	m.lessonsCreated.Inc()
}

func (m *Metrics) SetActiveLearners(n int) {
	if m == nil {
		return
	}
	m.activeLearners.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler(log *logger.Logger) http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      promLogger{log: log},
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// promLogger implements promhttp.Logger
type promLogger struct {
	log *logger.Logger
}

func (p promLogger) Println(v ...interface{}) {
	if p.log == nil {
		return
	}
	p.log.Error("metrics exposition error", "error", fmt.Sprint(v...))
}
