// Package validation wraps a shared validator with rules for button options.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/networkteam/buttonkit/button"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// FieldError is a validation failure of a single field.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("button_variant", optionRule(button.ParseVariant))
		_ = v.RegisterValidation("button_size", optionRule(button.ParseSize))
		_ = v.RegisterValidation("button_shape", optionRule(button.ParseShape))
		_ = v.RegisterValidation("button_color", optionRule(button.ParseColor))

		validateInst = v
	})

	return validateInst
}

func optionRule[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := parse(fl.Field().String())
		return err == nil
	}
}

// Struct validates s and converts the first failure into a *FieldError.
// Failures of button option rules match button.ErrInvalidOption.
func Struct(s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &FieldError{Field: "config", Message: err.Error(), Err: err}
	}

	ve := ves[0]
	field := yamlishFieldName(ve)
	fieldErr := &FieldError{
		Field:   field,
		Message: fmt.Sprintf("failed validation for tag '%s'", ve.Tag()),
		Err:     err,
	}
	if strings.HasPrefix(ve.Tag(), "button_") {
		fieldErr.Message = fmt.Sprintf("invalid value %q", fmt.Sprint(ve.Value()))
		fieldErr.Err = button.ErrInvalidOption
	}
	return fieldErr
}

// yamlishFieldName turns a namespace like "File.buttons[0].Variant" into
// "buttons[0].variant", dropping the root type name. YAML keys are used where set.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
