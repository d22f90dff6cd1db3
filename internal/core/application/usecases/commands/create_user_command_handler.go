package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// CreateUserCommandHandler handles user registration.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user registration command.
// Returns a DuplicateKeyError when the username is already taken.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newUser, err := user.NewUser(kernel.NewUUID(), cmd.Username(), cmd.Role())
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

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
