package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest returns validator.ValidationErrors for a malformed request.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}

func describeValidation(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "is required"
		case "oneof":
			out[field] = fmt.Sprintf("must be one of [%s]", fe.Param())
		case "max":
			out[field] = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "email":
			out[field] = "must be a valid email"
		default:
			out[field] = fmt.Sprintf("failed on '%s'", fe.Tag())
		}
	}
	return out
}
