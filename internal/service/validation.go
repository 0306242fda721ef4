package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "standup-api-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validate checks req and converts the first failing rule into a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	fe := fieldErrs[0]
	return apperrors.NewValidationError(fe.Field(), ruleMessage(fe))
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
