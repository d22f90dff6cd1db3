// Package user implements the management user registry record. It carries no
// cross-entity invariant; orders reference users for ownership and analytics
// count them.
package user

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a management user. Usernames are case-normalized and unique.
type User struct {
	id       kernel.UUID
	username string
	role     string

	isConstructed bool
}

// NewUser creates a validated user record.
func NewUser(id kernel.UUID, username, role string) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := u.setID(id); err != nil {
		return nil, err
	}
	if err := u.setUsername(username); err != nil {
		return nil, err
	}
	if err := u.setRole(role); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, username, role string) (*User, error) {
	return NewUser(id, username, role)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the case-normalized username.
func (u *User) Username() string {
	return u.username
}

// Role returns the user's role label.
func (u *User) Role() string {
	return u.role
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	normalized := strings.ToLower(strings.TrimSpace(username))
	if normalized == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = normalized
	return nil
}

func (u *User) setRole(role string) error {
	if strings.TrimSpace(role) == "" {
		return errs.NewValueIsRequiredError("role")
	}
	u.role = strings.TrimSpace(role)
	return nil
}
