package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"learnhub/internal/logger"
	"learnhub/internal/metrics"
	"learnhub/internal/models"
)

// flightTimeout bounds a shared generation once it is detached from the
// request that started it.
const flightTimeout = 2 * time.Minute

// GenerationFlights collapses concurrent generations for the same course
// into one call, across every learner in the process.
type GenerationFlights struct {
	group singleflight.Group
}

func NewGenerationFlights() *GenerationFlights {
	return &GenerationFlights{}
}

// Do runs fn once per key at a time. Callers that arrive while a flight is
// running wait for its result. fn runs detached from ctx so one caller
// going away does not fail the others; a caller whose ctx ends gets ctx.Err().
func (f *GenerationFlights) Do(ctx context.Context, key string, fn func(context.Context) (*models.Lesson, error)) (*models.Lesson, error) {
	ch := f.group.DoChan(key, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
		defer cancel()
		return fn(fctx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		lesson, _ := res.Val.(*models.Lesson)
		if lesson == nil {
			return nil, nil
		}
		copied := *lesson
		return &copied, nil
	}
}

type storeEntry struct {
	controller *LessonController
	lastActive time.Time
}

// ControllerStore keeps one LessonController per learner cookie and evicts
// the ones left idle.
type ControllerStore struct {
	mu          sync.Mutex
	controllers map[string]*storeEntry
	deps        ControllerDeps
	ttl         time.Duration
	now         func() time.Time
	metrics     *metrics.Metrics
	log         *logger.Logger
}

func NewControllerStore(deps ControllerDeps, ttl time.Duration) *ControllerStore {
	if deps.Flights == nil {
		deps.Flights = NewGenerationFlights()
	}
	log := deps.Log
	if log == nil {
		log = logger.NewNop()
	}
	return &ControllerStore{
		controllers: make(map[string]*storeEntry),
		deps:        deps,
		ttl:         ttl,
		now:         time.Now,
		metrics:     deps.Metrics,
		log:         log,
	}
}

// Get returns learnerID's controller, creating it on first use.
func (s *ControllerStore) Get(learnerID string) *LessonController {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.controllers[learnerID]
	if !ok {
		deps := s.deps
		deps.Log = s.log.With("learner_id", learnerID)
		e = &storeEntry{controller: NewLessonController(deps)}
		s.controllers[learnerID] = e
		s.metrics.SetActiveLearners(len(s.controllers))
	}
	e.lastActive = s.now()
	return e.controller
}

func (s *ControllerStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.controllers)
}

// Sweep evicts controllers idle for longer than the TTL and reports how many
// were removed.
func (s *ControllerStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.controllers {
		if e.lastActive.Before(cutoff) {
			delete(s.controllers, id)
			removed++
		}
	}
	if removed > 0 {
		s.metrics.SetActiveLearners(len(s.controllers))
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *ControllerStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug("evicted idle learners", "count", n)
			}
		}
	}
}
