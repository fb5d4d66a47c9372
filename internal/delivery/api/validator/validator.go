// Package validator adapts go-playground/validator to echo and adds the waitlist rules.
package validator

import (
	"reflect"
	"slices"
	"strings"

	"waitlist/internal/domain/entity"
	"waitlist/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the custom tags registered
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names in errors
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	mustRegister(v, "username", validateUsername)

	return &CustomValidator{validate: v}
}

// Validate runs struct validation
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validateUsername applies the username policy to the normalized value
func validateUsername(fl validator.FieldLevel) bool {
	return entity.ValidateUsername(entity.NormalizeUsername(fl.Field().String())) == nil
}

// Details renders validation errors as "field: reason" pairs sorted by field
func Details(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	pairs := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		pairs = append(pairs, fieldErr.Field()+": "+reason(fieldErr))
	}
	slices.Sort(pairs)

	return strings.Join(pairs, "; ")
}

func reason(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "username":
		value, _ := fieldErr.Value().(string)
		if err := entity.ValidateUsername(entity.NormalizeUsername(value)); err != nil {
			return err.Error()
		}

		return "is invalid"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	default:
		return "failed " + fieldErr.Tag() + " validation"
	}
}
