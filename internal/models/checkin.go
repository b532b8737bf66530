package models

import (
	"fmt"
	"time"
)

// Focus is the area a check-in belongs to
type Focus string

const (
	FocusRhyt  Focus = "rhyt"
	FocusHyker Focus = "hyker"
	FocusOther Focus = "other"
)

// FocusValues lists every accepted focus value, in display order.
var FocusValues = []Focus{FocusRhyt, FocusHyker, FocusOther}

// ParseFocus converts a raw string into a Focus, rejecting anything outside
// the enumerated set.
func ParseFocus(s string) (Focus, error) {
	for _, f := range FocusValues {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid focus %q (must be one of: %s, %s, %s)",
		s, FocusRhyt, FocusHyker, FocusOther)
}

// CheckIn is a single logged record of current activity, focus area, mood,
// and intentions at a point in time
type CheckIn struct {
	ID        int64     `json:"id"`
	CheckedAt time.Time `json:"checked_at"` // logical event time, always an absolute instant
	Now       string    `json:"now"`        // current activity
	Focus     Focus     `json:"focus"`
	Soul      string    `json:"soul"` // mood/energy/outlook
	Prep      string    `json:"prep"` // intentions for the next cycle
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
