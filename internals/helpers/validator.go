package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// ValidationErrorsToMap flattens validator.v10 errors into the
// field → messages shape used by JsonValidationError.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], fe.Tag())
	}
	return out
}
