package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	ageRangeRegex = regexp.MustCompile(`^\d{1,2}(-\d{1,2})?\+?$`)
)

const (
	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
	maxTopicRunes    = 200
	maxAPIKeyBytes   = 512
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	if len(password) > maxPasswordBytes {
		return ValidationError{Field: "password", Message: "password must be at most 72 bytes"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateGenerationRequest checks the body of a generate-lesson call
func ValidateGenerationRequest(subject, ageRange, topic string) error {
	if strings.TrimSpace(subject) == "" {
		return ValidationError{Field: "subject", Message: "subject is required"}
	}
	if !ageRangeRegex.MatchString(strings.TrimSpace(ageRange)) {
		return ValidationError{Field: "ageRange", Message: "age range must look like 5-8"}
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ValidationError{Field: "topic", Message: "topic is required"}
	}
	if utf8.RuneCountInString(topic) > maxTopicRunes {
		return ValidationError{Field: "topic", Message: "topic is too long"}
	}
	return nil
}

// ValidateAPIKey checks a provider key entered on the settings page
func ValidateAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ValidationError{Field: "api_key", Message: "Please enter an API key"}
	}
	if len(key) > maxAPIKeyBytes || strings.ContainsAny(key, " \t\r\n;,") {
		return ValidationError{Field: "api_key", Message: "API key contains invalid characters"}
	}
	return nil
}
