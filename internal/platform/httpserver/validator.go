package httpserver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use; one instance serves every request.
var validate = validator.New()

// validateRequest checks struct tags on a transport DTO before it reaches
// the engine. The returned message names the offending field without
// leaking internal struct names.
func validateRequest(req any) (string, bool) {
	err := validate.Struct(req)
	if err == nil {
		return "", true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "invalid request format", false
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s needs at least %s entries", field, fieldErr.Param()))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(messages, "; "), false
}
