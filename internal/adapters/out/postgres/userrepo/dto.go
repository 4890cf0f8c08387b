// Package userrepo persists user aggregates with GORM.
package userrepo

import (
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// EmailIndex is the unique index on users.email; it must match the Email tag below.
const EmailIndex = "idx_users_email"

// UserDTO is the row layout of the users table. Orders are loaded read-only
// through orders.customer_id.
type UserDTO struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Name         string               `gorm:"type:varchar(64);not null"`
	Email        string               `gorm:"type:varchar(320);not null;uniqueIndex:idx_users_email"`
	PasswordHash string               `gorm:"not null"`
	Role         string               `gorm:"type:varchar(16);not null"`
	Active       bool                 `gorm:"not null;index"`
	Orders       []orderrepo.OrderDTO `gorm:"foreignKey:CustomerID"`
	CreatedAt    time.Time            `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Active:       u.IsActive(),
	}
}

// ToDomain rebuilds a user aggregate from a row and its preloaded orders.
func ToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	orders := make([]kernel.UUID, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		orderID, idErr := kernel.UUIDFromBytes(o.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		orders = append(orders, orderID)
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, role, dto.Active, orders)
}
