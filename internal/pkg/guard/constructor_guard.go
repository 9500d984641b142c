// Package guard lets value objects, entities and commands tell a value built by
// its constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not a valid instance.
// Only NewConstructorGuard sets the flag, so a struct literal or a zero value fails Validate.
//
// Example usage:
//
//	var ErrRegisterUserCommandIsNotConstructed = errors.New("RegisterUserCommand must be created via NewRegisterUserCommand")
//
//	type RegisterUserCommand struct {
//	    email string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c RegisterUserCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError is replaced by ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
