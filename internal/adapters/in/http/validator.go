package http

import (
	"errors"
	"reflect"
	"strings"

	"accounts/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in reported errors are the JSON names.
func NewValidator() *echoValidator { //nolint:revive // assigned to echo.Echo.Validator
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Every broken rule becomes an
// errs.ValidationFailedError; they are joined with errors.Join.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fieldErrs := make([]error, 0, len(ve))
	for _, fe := range ve {
		fieldErrs = append(fieldErrs, errs.NewValidationFailedError(fe.Field(), fe.Tag()))
	}
	return errors.Join(fieldErrs...)
}
