// Package validator adapts go-playground/validator to echo's
// Validator interface so handlers can validate bound request DTOs.
package validator

import (
	"strings"

	domainerrors "fittrack/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New returns a request validator backed by struct tags.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks the bound request against its validation tags and
// maps failures onto the shared validation error so the error
// middleware renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WrapMessage("request validation failed")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, strings.ToLower(fe.Field())+" "+describeFailure(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describeFailure(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed validation rule " + fe.Tag()
	}
}
