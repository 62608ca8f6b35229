// Package validation converts request binding failures into structured
// violation lists suitable for API error responses.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation describes a single schema violation in a request payload.
// Path locates the offending field, Kind is a machine-readable violation
// class and Message is the human-readable explanation.
type Violation struct {
	Path    []string `json:"path"`
	Kind    string   `json:"type"`
	Message string   `json:"message"`
}

// Describe converts a binding error into a list of violations.
// Validator tag failures map to one violation per field; malformed bodies
// (bad JSON, unparsable dates) map to a single synthetic violation.
func Describe(err error) []Violation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]Violation, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, describeField(fe))
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []Violation{{
			Path:    []string{typeErr.Field},
			Kind:    typeErr.Type.Kind().String() + ".base",
			Message: fmt.Sprintf("Please enter a valid %s", typeErr.Field),
		}}
	}

	return []Violation{{
		Path:    []string{},
		Kind:    "body.base",
		Message: "invalid request body",
	}}
}

// describeField maps a single validator tag failure to a violation.
func describeField(fe validator.FieldError) Violation {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return Violation{
			Path:    []string{field},
			Kind:    "any.required",
			Message: fmt.Sprintf("Please enter a %s", field),
		}
	case "min":
		return Violation{
			Path:    []string{field},
			Kind:    "string.min",
			Message: fmt.Sprintf("%s length must be at least %s characters long", field, fe.Param()),
		}
	case "oneof":
		return Violation{
			Path:    []string{field},
			Kind:    "any.only",
			Message: fmt.Sprintf("Please enter a valid %s [%s]", field, strings.Join(strings.Fields(fe.Param()), ", ")),
		}
	case "email":
		return Violation{
			Path:    []string{field},
			Kind:    "string.email",
			Message: fmt.Sprintf("Please enter a valid %s", field),
		}
	default:
		return Violation{
			Path:    []string{field},
			Kind:    "any.invalid",
			Message: fmt.Sprintf("%s is invalid", field),
		}
	}
}
