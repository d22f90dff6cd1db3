package commands

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a user who can own
// orders. Usernames are unique, case-insensitively.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	username string
	role     string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user.
func NewCreateUserCommand(username, role string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Username returns the requested username.
func (c CreateUserCommand) Username() string {
	return c.username
}

// Role returns the requested role.
func (c CreateUserCommand) Role() string {
	return c.role
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CreateUserCommand) setRole(role string) error {
	if role == "" {
		return errs.NewValueIsRequiredError("role")
	}
	c.role = role
	return nil
}
