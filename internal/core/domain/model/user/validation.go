package user

import (
	"errors"

	"accounts/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // validator caches parsed tags and is safe for concurrent use
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkField runs the validator tag against value and reports the first broken
// rule as an errs.ValidationFailedError for field.
func checkField(field, value, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errs.NewValidationFailedError(field, fieldErrs[0].Tag())
	}
	return errs.NewValidationFailedErrorWithCause(field, tag, err)
}
