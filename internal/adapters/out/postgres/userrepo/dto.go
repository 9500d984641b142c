// Package userrepo provides data transfer objects and the GORM repository for
// registered users, mapping between the domain aggregate and the
// registered_users table.
package userrepo

import (
	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting registered users.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	Name  string    `gorm:"type:varchar(32);not null;default:''"`
}

// TableName overrides GORM's default "user_dtos".
func (UserDTO) TableName() string {
	return "registered_users"
}

func fromDomain(u *user.RegisteredUser) UserDTO {
	return UserDTO{
		ID:    u.ID().UUID(),
		Email: u.Email(),
		Name:  u.Name(),
	}
}

// toDomain rebuilds the aggregate with RestoreRegisteredUser, so rows that no
// longer satisfy the domain rules surface as validation errors.
func toDomain(dto UserDTO) (*user.RegisteredUser, error) {
	id, err := kernel.IDFromUUID[user.RegisteredUser](dto.ID)
	if err != nil {
		return nil, err
	}

	return user.RestoreRegisteredUser(id, dto.Email, dto.Name)
}
