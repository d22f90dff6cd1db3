// Package userrepo provides data transfer objects and mapping functions for
// the user registry.
package userrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
// CreatedAt is filled by GORM on insert and feeds the dashboard's recent
// registrations feed.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"uniqueIndex"`
	Role      string
	CreatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:       aggregate.ID().Bytes(),
		Username: aggregate.Username(),
		Role:     aggregate.Role(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.Role)
}
