// Package eventform holds the event create/edit draft and the ordered
// field checks both screens run before anything goes over the wire.
package eventform

import (
	"errors"
	"strings"

	"eventConsole/internal/lib/timefmt"
	"eventConsole/internal/models"
)

var (
	ErrNameTooShort = errors.New("event name must be at least 5 characters")
	ErrBadTime      = errors.New("time must be in HH:MM format (e.g., 10:00 or 14:30)")
	ErrBadCapacity  = errors.New("capacity must be a positive number")
	ErrBadCategory  = errors.New("category must be one of TECHNICAL, CULTURAL, SPORTS, WORKSHOP")
)

// Draft is the transient form state for creating or editing an event.
type Draft struct {
	EventName   string `json:"eventName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Venue       string `json:"venue"`
	Capacity    int    `json:"capacity"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// Check runs every field rule in order and stops at the first failure.
func (d Draft) Check() error {
	if err := CheckName(d.EventName); err != nil {
		return err
	}
	if !timefmt.ValidTime(d.Time) {
		return ErrBadTime
	}
	if err := CheckCapacity(d.Capacity); err != nil {
		return err
	}
	return CheckCategory(d.Category)
}

func CheckName(name string) error {
	if len(strings.TrimSpace(name)) < 5 {
		return ErrNameTooShort
	}
	return nil
}

func CheckCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrBadCapacity
	}
	return nil
}

func CheckCategory(category string) error {
	if !models.ValidCategory(category) {
		return ErrBadCategory
	}
	return nil
}

// jwtPrefix is the base64 of `{"`; every token the backend issues starts
// with it.
const jwtPrefix = "eyJ"

// TokenPlausible reports whether the stored token is structurally usable.
// It is a shape check only; the backend still decides whether it is valid.
func TokenPlausible(token string) bool {
	return strings.HasPrefix(token, jwtPrefix)
}
