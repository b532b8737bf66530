// Package validation checks caller-supplied check-in input before it reaches
// the store. Validation failures always name the offending value.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/nanokata/internal/models"
	"github.com/julianstephens/nanokata/internal/utils"
)

// CheckInInput is the raw, unvalidated shape of a new check-in.
type CheckInInput struct {
	When  string // optional ISO-8601 timestamp; empty means "now"
	Now   string
	Focus string
	Soul  string
	Prep  string
}

// Issue is a single validation failure
type Issue struct {
	Field       string
	Description string
}

// Result contains all detected validation issues
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any validation failures
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// Err converts the result into a single error, or nil when clean.
func (r *Result) Err() error {
	if !r.HasIssues() {
		return nil
	}
	var lines []string
	for _, issue := range r.Issues {
		lines = append(lines, issue.Description)
	}
	return fmt.Errorf("invalid check-in: %s", strings.Join(lines, "; "))
}

// Validator validates check-in input
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateCheckIn checks a raw check-in input. On success it returns the
// parsed focus value and event time (zero when When was empty, meaning the
// store assigns the timestamp).
func (v *Validator) ValidateCheckIn(in CheckInInput) (models.Focus, time.Time, Result) {
	result := Result{}

	required := []struct {
		field string
		value string
	}{
		{"now", in.Now},
		{"soul", in.Soul},
		{"prep", in.Prep},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			result.Issues = append(result.Issues, Issue{
				Field:       r.field,
				Description: fmt.Sprintf("--%s is required", r.field),
			})
		}
	}

	focus, err := models.ParseFocus(in.Focus)
	if err != nil {
		result.Issues = append(result.Issues, Issue{
			Field:       "focus",
			Description: err.Error(),
		})
	}

	var when time.Time
	if in.When != "" {
		when, err = utils.ParseTimestamp(in.When)
		if err != nil {
			result.Issues = append(result.Issues, Issue{
				Field:       "when",
				Description: err.Error(),
			})
		}
	}

	return focus, when, result
}
