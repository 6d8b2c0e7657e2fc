// Package validate wraps go-playground/validator and turns its output into
// field-level error lists suitable for 400 response bodies.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated constraint on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one FieldError per violated constraint.
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" "+fe.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// As extracts a *ValidationError from err, if it wraps one.
func As(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)

	return ve, ok
}

var instance = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New()

	// report field names as the client sees them (json tag, not Go name)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Struct validates s against its `validate` tags. It returns nil when the
// payload is valid and a *ValidationError listing every violated field
// otherwise.
func Struct(s interface{}) error {
	err := instance.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError (nil or non-struct input); programmer error
		return err
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return out
}

// message renders a human-readable description for a violated tag.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}

		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}

		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("failed on the '%s' constraint", fe.Tag())
	}
}
