package generation

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"learnhub/internal/models"
)

// ParseLesson validates a model or endpoint response. Markdown code fences
// around the JSON object are tolerated.
func ParseLesson(raw []byte) (*Lesson, error) {
	body := stripCodeFence(raw)
	if len(body) == 0 {
		return nil, newError(KindMalformed, 0, errors.New("empty lesson body"))
	}

	var lesson Lesson
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&lesson); err != nil {
		return nil, newError(KindMalformed, 0, fmt.Errorf("decode lesson: %w", err))
	}

	lesson.Title = strings.TrimSpace(lesson.Title)
	if lesson.Title == "" {
		return nil, newError(KindMalformed, 0, errors.New("lesson title is empty"))
	}
	if strings.TrimSpace(lesson.Content) == "" {
		return nil, newError(KindMalformed, 0, errors.New("lesson content is empty"))
	}
	if lesson.Activities == nil {
		lesson.Activities = []models.Activity{}
	}
	for i, a := range lesson.Activities {
		if !a.Type.Valid() {
			return nil, newError(KindMalformed, 0, fmt.Errorf("activity %d has unknown type %q", i, a.Type))
		}
		if strings.TrimSpace(a.Text) == "" {
			return nil, newError(KindMalformed, 0, fmt.Errorf("activity %d has no text", i))
		}
	}
	return &lesson, nil
}

func stripCodeFence(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return []byte(s)
	}
	s = strings.TrimPrefix(s, "```")
	// drop the info string, e.g. ```json
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return []byte(strings.TrimSpace(s))
}

// AssignActivityIDs gives every activity without an id a stable identifier
// derived from its position, type and text.
func AssignActivityIDs(activities []models.Activity) []models.Activity {
	out := make([]models.Activity, len(activities))
	for i, a := range activities {
		if a.ID == "" {
			a.ID = activityID(i, a)
		}
		out[i] = a
	}
	return out
}

func activityID(ordinal int, a models.Activity) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(ordinal)))
	h.Write([]byte{0})
	h.Write([]byte(a.Type))
	h.Write([]byte{0})
	h.Write([]byte(a.Text))
	return "act-" + hex.EncodeToString(h.Sum(nil))[:16]
}
