package commands

import (
	"errors"

	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"
	"accounts/internal/pkg/guard"
)

var ErrRenameUserCommandIsNotConstructed = errors.New(
	"RenameUserCommand must be created via NewRenameUserCommand constructor",
)

// RenameUserCommand sets the display name of an existing user.
type RenameUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID[user.RegisteredUser]
	name   string

	guard guard.ConstructorGuard
}

// NewRenameUserCommand creates a rename command. The name itself is checked by the domain.
func NewRenameUserCommand(userID kernel.ID[user.RegisteredUser], name string) (RenameUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return RenameUserCommand{}, err
	}

	return RenameUserCommand{
		userID: userID,
		name:   name,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameUserCommand) Validate() error {
	return c.guard.Validate(ErrRenameUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to rename.
func (c RenameUserCommand) UserID() kernel.ID[user.RegisteredUser] {
	return c.userID
}

// Name returns the new display name.
func (c RenameUserCommand) Name() string {
	return c.name
}
