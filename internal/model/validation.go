package model

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	// MaxPasswordBytes keeps passwords usable by every supported hasher.
	MaxPasswordBytes = 72
)

var (
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
)

// ValidationError describes a rejected input field. It matches ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ValidatePassword checks password strength.
func ValidatePassword(s string) error {
	switch {
	case utf8.RuneCountInString(s) < MinPasswordLength:
		return invalid("password", "Password must be at least 8 characters long")
	case len(s) > MaxPasswordBytes:
		return invalid("password", "Password must be at most 72 bytes long")
	case !upperRe.MatchString(s):
		return invalid("password", "Password must contain at least one uppercase letter")
	case !lowerRe.MatchString(s):
		return invalid("password", "Password must contain at least one lowercase letter")
	case !digitRe.MatchString(s):
		return invalid("password", "Password must contain at least one number")
	}
	return nil
}

// ValidatePostText rejects blank text and text longer than MaxPostLength characters.
func ValidatePostText(s string) error {
	if strings.TrimSpace(s) == "" {
		return invalid("text", "Post text cannot be empty")
	}
	if utf8.RuneCountInString(s) > MaxPostLength {
		return invalid("text", "Post text must be at most 250 characters long")
	}
	return nil
}
