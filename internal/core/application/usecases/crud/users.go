package crud

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
)

// UserView is the client-facing shape of a user. The password hash never appears in it.
type UserView struct {
	ID     kernel.UUID   `json:"id"`
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Role   user.Role     `json:"role"`
	Active bool          `json:"active"`
	Orders []kernel.UUID `json:"orders"`
}

// NewUserView projects a user aggregate.
func NewUserView(u *user.User) UserView {
	orders := u.Orders()
	if orders == nil {
		orders = []kernel.UUID{}
	}
	return UserView{
		ID:     u.ID(),
		Name:   u.Name(),
		Email:  u.Email(),
		Role:   u.Role(),
		Active: u.IsActive(),
		Orders: orders,
	}
}

// UserSchema lists the user fields administrators may read, filter, sort and update.
// Password, orders and the active flag are not part of it: deactivation is the
// account owner's own action and reactivation happens outside this API.
func UserSchema() Schema {
	return NewSchema(
		[]Order{{Column: "created_at", Desc: true}},
		Field{
			Name: "name", Column: "name",
			Updatable: true, Filterable: true, Sortable: true,
			Decode: String("name", user.NormalizeName),
		},
		Field{
			Name: "email", Column: "email",
			Updatable: true, Filterable: true, Sortable: true,
			Decode: String("email", user.NormalizeEmail),
		},
		Field{
			Name: "role", Column: "role",
			Updatable: true, Filterable: true, Sortable: true,
			Decode: String("role", normalizeRole),
		},
		Field{
			Name: "createdAt", Column: "created_at",
			Sortable: true,
		},
	)
}

// NewUserResource binds the user schema to a store.
func NewUserResource(store Store[UserView]) Resource[UserView] {
	return NewResource("user", UserSchema(), store)
}

func normalizeRole(name string) (string, error) {
	role, err := user.ParseRole(name)
	if err != nil {
		return "", err
	}
	return role.String(), nil
}
