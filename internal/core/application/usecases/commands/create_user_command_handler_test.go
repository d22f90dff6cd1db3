package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateUserCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateUserCommand("Priya", "manager")
	require.NoError(t, err)
	assert.Equal(t, "Priya", cmd.Username())
	assert.Equal(t, "manager", cmd.Role())
}

func TestNewCreateUserCommand_MissingUsername(t *testing.T) {
	_, err := commands.NewCreateUserCommand("", "manager")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand("Priya", "manager")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := userRepo.Calls[0].Arguments[1].(*user.User)
	assert.Equal(t, "priya", added.Username())
	userRepo.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_DuplicateUsername(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand("Priya", "manager")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).
			Return(errs.NewDuplicateKeyError("username", "priya")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUserCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateKey)
}

func TestCreateUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateUserCommand{} // not constructed properly

	factory := new(MockUserUoWFactory)
	handler := commands.NewCreateUserCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
