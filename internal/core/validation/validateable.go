// Package validation contains the rule evaluator used to gate form input.
// This is part of the Functional Core - no I/O, only pure functions.
package validation

import (
	"math"
	"unicode/utf8"
)

// Kind tells which branch of the rule applies to a value.
type Kind int

const (
	// KindString marks a text value checked against MinLength/MaxLength.
	KindString Kind = iota
	// KindNumber marks a numeric value checked against Min/Max.
	KindNumber
)

// Value is the candidate scalar: either a string or a number.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
}

// String wraps a text value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number wraps a numeric value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// NaN is the numeric value of input that could not be parsed as a number.
// Every numeric check on it fails.
func NaN() Value { return Number(math.NaN()) }

// truthy follows the loose boolean conversion the form rules are based on:
// empty strings, zero and NaN are false.
func (v Value) truthy() bool {
	if v.Kind == KindNumber {
		return v.Num != 0 && !math.IsNaN(v.Num)
	}
	return v.Str != ""
}

// Validateable is one rule evaluated against one value.
//
// A bound of zero means "unset": Min: 0 or MaxLength: 0 are never checked.
type Validateable struct {
	Value     Value
	Required  bool
	Min       float64
	Max       float64
	MinLength int
	MaxLength int
}

// IsValid evaluates the rule.
//
// The required check is the starting result. When a bound applicable to the
// value's kind is set, the bound check replaces that result rather than
// being combined with it, so Required is only decisive for unbounded rules.
// Both bounds, when set, must hold.
func (r Validateable) IsValid() bool {
	valid := true
	if r.Required {
		valid = r.Value.truthy()
	}

	bounded := false
	inRange := true
	switch r.Value.Kind {
	case KindNumber:
		if r.Max != 0 {
			bounded = true
			inRange = r.Value.Num <= r.Max
		}
		if r.Min != 0 {
			bounded = true
			inRange = inRange && r.Value.Num >= r.Min
		}
	case KindString:
		n := utf8.RuneCountInString(r.Value.Str)
		if r.MaxLength != 0 {
			bounded = true
			inRange = n <= r.MaxLength
		}
		if r.MinLength != 0 {
			bounded = true
			inRange = inRange && n >= r.MinLength
		}
	}

	if bounded {
		valid = inRange
	}
	return valid
}
