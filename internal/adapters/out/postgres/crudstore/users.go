package crudstore

import (
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/application/usecases/crud"

	"gorm.io/gorm"
)

// NewUserStore returns a store over active users with their order references.
func NewUserStore(db *gorm.DB) *Store[userrepo.UserDTO, crud.UserView] {
	return New(db, "user", userView,
		WithScope(userrepo.Active),
		WithPreload("Orders", userrepo.OrderRefs),
		WithUniqueColumn(userrepo.EmailIndex, "email"),
	)
}

func userView(dto userrepo.UserDTO) (crud.UserView, error) {
	u, err := userrepo.ToDomain(dto)
	if err != nil {
		return crud.UserView{}, err
	}
	return crud.NewUserView(u), nil
}
