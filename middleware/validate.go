package middleware

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator/v10 tag rules and returns a field error map
// in the shape ValidationErrorResponse expects. Nil means the payload passed.
func ValidateStruct(payload interface{}) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"payload": "Invalid request body!"}
	}

	errors := make(map[string]string)
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", fieldErr.Field())
		case "email":
			errors[field] = "A valid email address is required!"
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long!", fieldErr.Field(), fieldErr.Param())
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", fieldErr.Field(), fieldErr.Param())
		case "gte":
			errors[field] = fmt.Sprintf("%s must be %s or greater!", fieldErr.Field(), fieldErr.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", fieldErr.Field())
		}
	}
	return errors
}
