package commands

import (
	"errors"
	"strings"

	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"
	"accounts/internal/pkg/errs"
	"accounts/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
)

// RegisterUserCommand represents a request to create a new account.
// The identifier is minted by the constructor so callers can report it back
// before the handler runs.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("user@example.com", "Ada")
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register user: %w", err)
//	}
//	fmt.Printf("Registered user with ID: %s", cmd.UserID())
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID[user.RegisteredUser]
	email  string
	name   string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user with a fresh identifier.
// The name is optional. Syntax rules for both fields are enforced by the domain.
func NewRegisterUserCommand(email, name string) (RegisterUserCommand, error) {
	return NewRegisterUserCommandWithID(kernel.NewID[user.RegisteredUser](), email, name)
}

// NewRegisterUserCommandWithID is like NewRegisterUserCommand but uses a caller-supplied identifier.
func NewRegisterUserCommandWithID(
	userID kernel.ID[user.RegisteredUser],
	email, name string,
) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
		name:  name,
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setEmail(email),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier the new user will get.
func (c RegisterUserCommand) UserID() kernel.ID[user.RegisteredUser] {
	return c.userID
}

// Email returns the e-mail address to register.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the requested display name, or "".
func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c *RegisterUserCommand) setUserID(id kernel.ID[user.RegisteredUser]) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
