package roster

import (
	"fmt"
	"regexp"

	"github.com/saltyorg/roster/internal/database"
)

const (
	MinAge = 0
	MaxAge = 120
)

var (
	lettersOnly       = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z]*$`)
	lettersDigitsDash = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z0-9-]*$`)
)

// ValidationError describes the first field that failed input checks.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate applies the roster's input rules to w. Storage accepts anything;
// these checks only guard what a front end lets through.
func Validate(w *database.Worker) error {
	if w == nil {
		return &ValidationError{Field: "worker", Message: "is required"}
	}

	names := []struct {
		field string
		value string
	}{
		{"name", w.Name},
		{"surname", w.Surname},
		{"lastname", w.Lastname},
	}
	for _, n := range names {
		if !lettersOnly.MatchString(n.value) {
			return &ValidationError{Field: n.field, Message: "must contain only letters"}
		}
	}

	if !lettersDigitsDash.MatchString(w.City) {
		return &ValidationError{Field: "city", Message: "may contain only letters, digits and '-'"}
	}
	if !lettersDigitsDash.MatchString(w.Position) {
		return &ValidationError{Field: "position", Message: "may contain only letters, digits and '-'"}
	}

	if w.Age < MinAge || w.Age > MaxAge {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)}
	}

	return nil
}

// Describe renders the one-line summary shown for a selected worker.
func Describe(w database.Worker) string {
	return fmt.Sprintf("Worker %s %s, position %s.", w.Surname, w.Name, w.Position)
}
