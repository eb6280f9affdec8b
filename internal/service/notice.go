package service

import (
	"errors"
	"fmt"

	"learnhub/internal/generation"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a message for the learner, shown once and then drained.
type Notice struct {
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Level   NoticeLevel `json:"level"`
}

const maxQueuedNotices = 20

const (
	MsgLoadCoursesFailed  = "Failed to load courses"
	MsgLoadLessonsFailed  = "Failed to load lessons"
	MsgLoadProgressFailed = "Failed to load progress"
	MsgSaveProgressFailed = "Failed to save progress"
	MsgSaveLessonFailed   = "Failed to save the generated lesson"
	MsgCourseNotFound     = "Course not found"
	MsgLessonNotFound     = "Lesson not found"
	MsgActivityNotFound   = "Activity not found"
	MsgNoCourseSelected   = "Please choose a course first"
	MsgLessonCreated      = "New lesson created!"
	MsgSignInTitle        = "Please sign in"
	MsgSignInToTrack      = "You need to be signed in to track progress"
)

func errorNotice(msg string) Notice {
	return Notice{Title: "Error", Message: msg, Level: NoticeError}
}

func authNotice() Notice {
	return Notice{Title: MsgSignInTitle, Message: MsgSignInToTrack, Level: NoticeInfo}
}

func lessonCreatedNotice() Notice {
	return Notice{Title: "Success!", Message: MsgLessonCreated, Level: NoticeSuccess}
}

func starsNotice(stars int) Notice {
	plural := ""
	if stars > 1 {
		plural = "s"
	}
	return Notice{
		Title:   "Amazing work!",
		Message: fmt.Sprintf("You earned %d star%s!", stars, plural),
		Level:   NoticeSuccess,
	}
}

// generationNotice picks the wording for a failed generation
func generationNotice(err error) Notice {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return errorNotice(MsgSaveLessonFailed)
	}
	return errorNotice(generation.AsGenerationError(err).Message())
}
