// Package car contains the pure business logic for car records.
// This is part of the Functional Core - no I/O, only pure functions.
package car

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/carline/internal/core/validation"
)

// Door limits enforced by the submission guard.
const (
	MinDoors = 3
	MaxDoors = 5
)

// SubmitContext holds the raw form values of a submission attempt.
// Doors is the already-parsed numeric field (see ParseDoors).
type SubmitContext struct {
	Brand  string
	Model  string
	Doors  validation.Value
	LineID string
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string   // Human-readable reason (populated when not allowed)
	Fields  []string // Names of the fields that failed
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanSubmit evaluates whether a form submission may reach the store.
// Rules: brand and model are required; doors is required and within
// [MinDoors, MaxDoors]. The line id is not checked.
func CanSubmit(ctx SubmitContext) GuardResult {
	rules := []struct {
		field string
		rule  validation.Validateable
	}{
		{"brand", validation.Validateable{Value: validation.String(ctx.Brand), Required: true}},
		{"model", validation.Validateable{Value: validation.String(ctx.Model), Required: true}},
		{"door", validation.Validateable{Value: ctx.Doors, Required: true, Min: MinDoors, Max: MaxDoors}},
	}

	var failed []string
	for _, r := range rules {
		if !r.rule.IsValid() {
			failed = append(failed, r.field)
		}
	}
	if len(failed) > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("Inputs are not valid! (%s)", strings.Join(failed, ", ")),
			Fields:  failed,
		}
	}
	return GuardResult{Allowed: true}
}

// ParseDoors converts the raw door field into a numeric value.
// Blank input is zero; anything that is not an integer is NaN.
func ParseDoors(raw string) validation.Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return validation.Number(0)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return validation.NaN()
	}
	return validation.Number(float64(n))
}
