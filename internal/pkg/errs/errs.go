package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrObjectNotFound   = errors.New("object not found")
	ErrAlreadyExists    = errors.New("object already exists")
	ErrValueIsRequired  = errors.New("value is required")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrValidationFailed = errors.New("validation failed")
	ErrVersionIsInvalid = errors.New("version is invalid")
)

// ObjectNotFoundError is returned when a lookup by identifier finds nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AlreadyExistsError is returned when a unique attribute is already taken.
type AlreadyExistsError struct {
	ParamName string
	Value     any
}

// NewAlreadyExistsError creates an AlreadyExistsError.
func NewAlreadyExistsError(paramName string, value any) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName, Value: value}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %s is %s", ErrAlreadyExists, e.ParamName, sanitize(e.Value))
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ValueIsRequiredError reports a missing (zero) value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidFormatError reports text that could not be decoded. Value holds the
// offending input exactly as received.
type InvalidFormatError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewInvalidFormatError creates an InvalidFormatError without a cause.
func NewInvalidFormatError(paramName, value string) *InvalidFormatError {
	return &InvalidFormatError{ParamName: paramName, Value: value}
}

// NewInvalidFormatErrorWithCause creates an InvalidFormatError wrapping cause.
func NewInvalidFormatErrorWithCause(paramName, value string, cause error) *InvalidFormatError {
	return &InvalidFormatError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("%s: %s is %q", ErrInvalidFormat, e.ParamName, sanitize(e.Value))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// ValidationFailedError names the field and the rule it broke, e.g.
// Field "email" and Rule "email".
type ValidationFailedError struct {
	Field string
	Rule  string
	Cause error
}

// NewValidationFailedError creates a ValidationFailedError without a cause.
func NewValidationFailedError(field, rule string) *ValidationFailedError {
	return &ValidationFailedError{Field: field, Rule: rule}
}

// NewValidationFailedErrorWithCause creates a ValidationFailedError wrapping cause.
func NewValidationFailedErrorWithCause(field, rule string, cause error) *ValidationFailedError {
	return &ValidationFailedError{Field: field, Rule: rule, Cause: cause}
}

func (e *ValidationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: field %s violates rule %s (cause: %v)", ErrValidationFailed, e.Field, e.Rule, e.Cause)
	}
	return fmt.Sprintf("%s: field %s violates rule %s", ErrValidationFailed, e.Field, e.Rule)
}

func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}

// VersionIsInvalidError reports a value whose version does not support the
// requested operation.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without a cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// sanitize renders v on a single line so user input cannot forge log lines.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
