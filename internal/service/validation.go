package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "oper-review-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator creates a validator that reports json field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError converts validator output into an apperrors.ValidationError
// describing the first failing field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}
	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), strings.SplitN(fe.Namespace(), ".", 2)[0]+".")

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "max":
		msg = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "datetime":
		msg = "must be a date in YYYY-MM-DD format"
	default:
		msg = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
	return apperrors.NewValidationError(field, msg)
}
