package service

import (
	"errors"
	"fmt"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrNoCourseSelected = errors.New("no course selected")
)

// BackendError reports a failed read from the content backend.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a failed write. Local state is left as it was.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// AuthRequiredError is returned when an anonymous learner attempts an
// operation that needs a signed-in user.
type AuthRequiredError struct {
	Action string
}

func (e *AuthRequiredError) Error() string {
	return "sign in required to " + e.Action
}
