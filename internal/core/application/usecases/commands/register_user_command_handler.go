package commands

import (
	"context"
	"errors"

	"accounts/internal/core/domain/model/user"
	"accounts/internal/pkg/errs"
)

// RegisterUserCommandHandler creates and persists new users.
// An e-mail address can only be registered once.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	cmd, _ := NewRegisterUserCommand("user@example.com", "")
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAlreadyExists) {
//	    // e-mail taken
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the command, builds the user and stores it within a transaction.
// Domain validation happens before the transaction is opened.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	registered, err := user.RestoreRegisteredUser(cmd.UserID(), cmd.Email(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err = userRepo.GetByEmail(ctx, registered.Email())
	switch {
	case err == nil:
		return errs.NewAlreadyExistsError("email", registered.Email())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = userRepo.Add(ctx, registered); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
