package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/orgnest/backend/pkg/response"
)

// requiredFieldMessages maps struct field names to their user-facing
// per-field error entries.
var requiredFieldMessages = map[string]response.FieldError{
	"FirstName": {Field: "firstName", Message: "First Name is required!"},
	"LastName":  {Field: "lastName", Message: "Last Name is required!"},
	"Email":     {Field: "email", Message: "Email is required!"},
	"Password":  {Field: "password", Message: "Password is required!"},
	"Phone":     {Field: "phone", Message: "Phone number is required!"},
}

// missingFieldErrors converts a gin binding error into one entry per missing
// field. Returns nil when the error is not a field validation failure (e.g.
// malformed JSON).
func missingFieldErrors(err error) []response.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var out []response.FieldError
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			continue
		}
		if msg, ok := requiredFieldMessages[fe.StructField()]; ok {
			out = append(out, msg)
		}
	}
	return out
}
