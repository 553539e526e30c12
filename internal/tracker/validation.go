package tracker

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the canonical calendar-date layout used everywhere:
// storage, filters and responses.
const DateFormat = "2006-01-02"

// dateRegex checks the literal YYYY-MM-DD shape. Calendar validity beyond
// the pattern is intentionally not checked; dates compare lexicographically.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError reports malformed or missing caller input. It is detected
// before any store call and maps to HTTP 400 at the handler boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// ValidDate reports whether s matches the YYYY-MM-DD pattern.
func ValidDate(s string) bool {
	return dateRegex.MatchString(s)
}

// ValidateUsername trims and validates a registration username.
func ValidateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", newValidationError("username required")
	}
	return username, nil
}

// ExerciseInput is a validated exercise creation payload.
type ExerciseInput struct {
	Description string
	Duration    int
	Date        string
}

// ValidateExerciseInput validates an exercise creation payload. Duration
// arrives in its raw string form and must parse to a strictly positive
// integer. A missing date defaults to now, normalized to YYYY-MM-DD.
func ValidateExerciseInput(description, duration, date string, now time.Time) (ExerciseInput, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return ExerciseInput{}, newValidationError("description required")
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(duration))
	if err != nil || minutes <= 0 {
		return ExerciseInput{}, newValidationError("duration must be a positive integer")
	}

	if date == "" {
		date = now.Format(DateFormat)
	} else if !ValidDate(date) {
		return ExerciseInput{}, newValidationError("date must be YYYY-MM-DD")
	}

	return ExerciseInput{
		Description: desc,
		Duration:    minutes,
		Date:        date,
	}, nil
}
