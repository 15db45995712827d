// Package timefmt converts event times between the backend's 24-hour
// HH:MM:SS encoding and the 12-hour selector triple the edit screen uses.
package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timePattern is the strict 24-hour HH:MM shape accepted from the create
// form. Single-digit hours are rejected.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTime reports whether s is a zero-padded 24-hour HH:MM string.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

const (
	MeridiemAM = "AM"
	MeridiemPM = "PM"
)

// Clock12 is the 12-hour representation shown by the three edit-form
// selectors: hour 01-12, minute 00-59, AM/PM.
type Clock12 struct {
	Hour     string `json:"hour"`
	Minute   string `json:"minute"`
	Meridiem string `json:"meridiem"`
}

func (c Clock12) String() string {
	return fmt.Sprintf("%s:%s %s", c.Hour, c.Minute, c.Meridiem)
}

// To12Hour converts a backend time (HH:MM or HH:MM:SS) to its 12-hour form.
// Hour 0 maps to 12 AM, 12 stays 12 PM, 13-23 map to 1-11 PM.
func To12Hour(t24 string) (Clock12, error) {
	parts := strings.Split(t24, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Clock12{}, fmt.Errorf("invalid time %q", t24)
	}

	if !ValidTime(parts[0] + ":" + parts[1]) {
		return Clock12{}, fmt.Errorf("invalid time %q", t24)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock12{}, fmt.Errorf("invalid hour %q: %w", parts[0], err)
	}

	meridiem := MeridiemAM
	if h >= 12 {
		meridiem = MeridiemPM
	}

	h = h % 12
	if h == 0 {
		h = 12
	}

	return Clock12{
		Hour:     fmt.Sprintf("%02d", h),
		Minute:   parts[1],
		Meridiem: meridiem,
	}, nil
}

// To24Hour converts a 12-hour selector triple back to the backend's
// zero-padded HH:MM:00 encoding. It is the inverse of To12Hour.
func To24Hour(c Clock12) (string, error) {
	h, err := strconv.Atoi(c.Hour)
	if err != nil || h < 1 || h > 12 {
		return "", fmt.Errorf("invalid hour %q", c.Hour)
	}

	m, err := strconv.Atoi(c.Minute)
	if err != nil || m < 0 || m > 59 || len(c.Minute) != 2 {
		return "", fmt.Errorf("invalid minute %q", c.Minute)
	}

	switch c.Meridiem {
	case MeridiemAM:
		if h == 12 {
			h = 0
		}
	case MeridiemPM:
		if h != 12 {
			h += 12
		}
	default:
		return "", fmt.Errorf("invalid meridiem %q", c.Meridiem)
	}

	return fmt.Sprintf("%02d:%02d:00", h, m), nil
}
