package upstream

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthorized covers 401s: a missing, invalid or expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnsupportedMedia covers 415s from the backend.
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// Error is a generic upstream failure carrying the backend's status code
// and its message body, when it sent one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.Status)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Message)
}

// FieldError is one entry of a backend validation failure.
type FieldError struct {
	Field          string `json:"field"`
	DefaultMessage string `json:"defaultMessage"`
}

// FieldErrors aggregates backend field errors into one user-facing message
// naming each offending field.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.DefaultMessage))
	}
	return strings.Join(msgs, ", ")
}
