package component

import (
	"fmt"
	"strings"

	"github.com/example/carline/internal/ports/secondary"
)

// ErrElementNotFound matches every ElementNotFoundError with errors.Is.
var ErrElementNotFound = secondary.ErrElementNotFound

// ElementNotFoundError reports a template, host, field or sub-element that
// a component needs but the document does not have.
type ElementNotFoundError struct {
	Kind string // "host", "template", "field" or "selector"
	ID   string // id or selector that was looked up
	Err  error  // underlying document error, if any
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Unwrap exposes ErrElementNotFound to errors.Is.
func (e *ElementNotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrElementNotFound
}

// ValidationError reports form fields that failed their rules.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("inputs are not valid: %s", strings.Join(e.Fields, ", "))
}
