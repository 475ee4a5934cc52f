package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} must not be blank",
	"email":    "{field} must be a valid email address",
	"oneof":    "{field} must be one of: {param}",
	"max":      "{field} must be at most {param} characters",
	"min":      "{field} must be at least {param} characters",
}

// message describes the first failed rule using the field's JSON name.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error()
	}

	first := valErrors[0]

	field := first.Field()
	if field == "" {
		field = "value"
	}

	tmpl, ok := messages[first.Tag()]
	if !ok {
		return field + " is invalid"
	}

	return strings.NewReplacer(
		"{field}", field,
		"{param}", strings.ReplaceAll(first.Param(), " ", ", "),
	).Replace(tmpl)
}
