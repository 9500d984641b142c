package commands

import (
	"context"
)

// RenameUserCommandHandler replaces the display name of a stored user.
type RenameUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRenameUserCommandHandler creates a handler for display name changes.
func NewRenameUserCommandHandler(uowFactory UserUoWFactory) RenameUserCommandHandler {
	return RenameUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the user, applies the new name and persists the result.
// Returns errs.ErrObjectNotFound when the user does not exist.
func (h *RenameUserCommandHandler) Handle(ctx context.Context, cmd RenameUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	stored, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	renamed, err := stored.WithDisplayName(cmd.Name())
	if err != nil {
		return err
	}

	if err = userRepo.Update(ctx, renamed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
