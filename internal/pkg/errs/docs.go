// Package errs provides standardized error types for the accounts application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - InvalidFormatError: For text that is not a valid encoding (e.g. identifiers)
//   - ValidationFailedError: For entity fields that break a declared rule
//   - ValueIsRequiredError: For when a required value is missing
//   - VersionIsInvalidError: For values whose version does not support an operation
//   - ObjectNotFoundError and AlreadyExistsError: For repository lookups and uniqueness
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValidationFailed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
package errs
