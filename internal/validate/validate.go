// Package validate implements the field validator shared by the contact and
// order forms. A single Validator is injected into every submission
// orchestrator so both forms apply the same rules.
//
// Rules, evaluated in order (all must pass):
//  1. A required field whose trimmed value is empty is invalid.
//  2. A non-empty email field must look like local@domain.tld.
//  3. A non-empty tel field must be exactly PhoneLength characters long.
//
// Validation never fails with an error: it always yields a boolean and
// toggles the target's error marker as a side effect.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input types inspected by the validator.
const (
	TypeEmail = "email"
	TypeTel   = "tel"
)

// PhoneLength is the exact number of characters a tel value must have.
const PhoneLength = 10

// emailPattern is a single-level shape check, not a deliverability check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Target is a form control the validator can inspect and mark.
type Target interface {
	FieldValue() string
	IsRequired() bool
	InputType() string
	// SetError adds (true) or removes (false) the error marker.
	SetError(invalid bool)
}

// Validator checks field values against their constraints.
// The zero value is not usable; call New.
type Validator struct {
	email    *regexp.Regexp
	phoneLen int
}

// New returns a Validator with the standard rules.
func New() *Validator {
	return &Validator{email: emailPattern, phoneLen: PhoneLength}
}

// Check reports whether value satisfies the constraints. It has no side
// effects.
func (v *Validator) Check(value string, required bool, inputType string) bool {
	value = strings.TrimSpace(value)

	if required && value == "" {
		return false
	}
	if value == "" {
		return true
	}
	switch inputType {
	case TypeEmail:
		return v.email.MatchString(value)
	case TypeTel:
		return utf8.RuneCountInString(value) == v.phoneLen
	}
	return true
}

// Validate checks t and sets or clears its error marker accordingly.
// Calling it twice on an unchanged target yields the same result and
// marker state.
func (v *Validator) Validate(t Target) bool {
	ok := v.Check(t.FieldValue(), t.IsRequired(), t.InputType())
	t.SetError(!ok)
	return ok
}
