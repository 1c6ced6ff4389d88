// Package validate is the pure validation engine for the listing form.
// It maps raw field values to per-field error messages and has no side
// effects; identical input always yields an identical result.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// Error messages surfaced next to the offending field.
const (
	MsgTitleRequired    = "Title is required"
	MsgInvalidPrice     = "Enter a valid price"
	MsgInvalidEmail     = "Enter a valid email"
	MsgCategoryRequired = "Category is required"
)

// Minimal email shape: non-space '@' non-space '.' non-space.
// Domain existence is deliberately not checked.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Fields carries the raw form values exactly as the user typed them.
// Price stays a string here; coercion to a number happens at submission.
type Fields struct {
	Title    string
	Price    string
	Email    string
	Category string
}

// Result maps field names to error messages. An empty string means the
// field passed.
type Result struct {
	Errors map[string]string
}

// Valid reports whether every field's error is empty.
func (r Result) Valid() bool {
	for _, msg := range r.Errors {
		if msg != "" {
			return false
		}
	}
	return true
}

// Check validates the form fields and returns the per-field error map.
func Check(f Fields) Result {
	errs := map[string]string{
		"title":    "",
		"price":    "",
		"email":    "",
		"category": "",
	}

	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = MsgTitleRequired
	}

	price, err := strconv.ParseFloat(f.Price, 64)
	if f.Price == "" || err != nil || price <= 0 {
		errs["price"] = MsgInvalidPrice
	}

	if !emailPattern.MatchString(f.Email) {
		errs["email"] = MsgInvalidEmail
	}

	if f.Category == "" {
		errs["category"] = MsgCategoryRequired
	}

	return Result{Errors: errs}
}
