// Package validation runs struct-tag validation over request payloads and
// renders violations field by field, using the JSON names callers see.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s and returns one entry per violated field, or nil when
// the payload is valid.
func Struct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Rule: "invalid", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(violations))
	for _, violation := range violations {
		out = append(out, FieldError{
			Field:   violation.Field(),
			Rule:    violation.Tag(),
			Message: message(violation),
		})
	}
	return out
}

func message(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", v.Field())
	case "required_if":
		return fmt.Sprintf("%s is required for this field type", v.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", v.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", v.Field(), strings.ReplaceAll(v.Param(), " ", ", "))
	case "numeric":
		return fmt.Sprintf("%s must be a numeric string", v.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", v.Field(), v.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", v.Field(), v.Tag())
	}
}
