// Package validator wraps go-playground/validator with the tags and error
// messages the API uses.
package validator

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var global *validator.Validate

const (
	ErrFieldRequired      = "Field is required"
	ErrFieldExceedsMaxLen = "Field exceeds maximum length"
	ErrFieldBelowMinLen   = "Field is below minimum length"
	ErrFieldExceedsMaxVal = "Field exceeds maximum value"
	ErrFieldBelowMinVal   = "Field is below minimum value"
	ErrInvalidEmail       = "Field must be a valid email address"
	ErrInvalidChoice      = "Field has an unsupported value"
	ErrInvalidFee         = "Fee must be a positive number"
	ErrUnknownValidation  = "Unknown validation error"
)

func init() {
	SetValidator(New())
}

// New builds a validator that reports JSON field names and knows the "fee"
// tag. A field passes "fee" when its value has a Positive method that
// returns true.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("fee", validateFee, true)
	return v
}

func SetValidator(v *validator.Validate) {
	global = v
}

func Validator() *validator.Validate {
	return global
}

// positive is implemented by amounts that know whether they are above zero.
type positive interface {
	Positive() bool
}

func validateFee(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.IsValid() || (field.Kind() == reflect.Ptr && field.IsNil()) {
		return false
	}
	p, ok := field.Interface().(positive)
	return ok && p.Positive()
}

// Validate checks structure and returns the first violation as a readable
// error, or nil.
func Validate(ctx context.Context, structure any) error {
	return parseValidationErrors(Validator().StructCtx(ctx, structure))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		return err
	}
	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required":
		msg = ErrFieldRequired
	case "max":
		if ve.Kind() == reflect.String {
			msg = ErrFieldExceedsMaxLen
		} else {
			msg = ErrFieldExceedsMaxVal
		}
	case "min":
		if ve.Kind() == reflect.String {
			msg = ErrFieldBelowMinLen
		} else {
			msg = ErrFieldBelowMinVal
		}
	case "lt", "lte":
		msg = ErrFieldExceedsMaxVal
	case "gt", "gte":
		msg = ErrFieldBelowMinVal
	case "email":
		msg = ErrInvalidEmail
	case "oneof":
		msg = ErrInvalidChoice
	case "fee":
		msg = ErrInvalidFee
	default:
		msg = ErrUnknownValidation
	}
	return errors.New(msg + ": " + ve.Field())
}
