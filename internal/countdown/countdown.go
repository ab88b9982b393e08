package countdown

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTarget = errors.New("invalid countdown target")

// Remaining is a duration split into calendar-free components.
type Remaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Decompose floors d into whole days, hours within the day, minutes within the
// hour and seconds within the minute. Negative durations decompose to zero.
func Decompose(d time.Duration) Remaining {
	if d < 0 {
		return Remaining{}
	}
	total := int64(d / time.Second)
	return Remaining{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

// Display receives the result of every tick.
type Display interface {
	ShowRemaining(r Remaining)
	ShowStarted()
}

// Tick runs one recomputation against now and reports whether the countdown
// has reached its terminal state.
func Tick(target, now time.Time, d Display) bool {
	remaining := target.Sub(now)
	if remaining < 0 {
		d.ShowStarted()
		return true
	}
	d.ShowRemaining(Decompose(remaining))
	return false
}

var targetLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTarget reads the configured start instant. Values without an offset are
// interpreted in loc.
func ParseTarget(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTarget)
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range targetLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTarget, value)
}
