package http

import (
	"net/http"

	"storefront/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the API on e. Every /api route requires a bearer token;
// user administration additionally requires the admin role. User creation is
// not administration: it answers every authenticated caller with the signup hint.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *Authenticator) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	authenticated := auth.Authenticate
	admin := RequireRole(user.RoleAdmin)
	owner := RestrictToOrderOwner(s.orderOwners)

	e.GET("/api/v1/users/me", s.GetMe, authenticated)
	e.PATCH("/api/v1/users/me", s.UpdateMe, authenticated)
	e.DELETE("/api/v1/users/me", s.DeleteMe, authenticated)

	e.GET("/api/v1/users", s.ListUsers, authenticated, admin)
	e.POST("/api/v1/users", s.CreateUser, authenticated)
	e.GET("/api/v1/users/:id", s.GetUser, authenticated, admin)
	e.PATCH("/api/v1/users/:id", s.UpdateUser, authenticated, admin)
	e.DELETE("/api/v1/users/:id", s.DeleteUser, authenticated, admin)

	e.PATCH("/api/v1/orders/:orderId", s.UpdateMyOrder, authenticated, owner)
	e.PATCH("/api/v1/orders/:orderId/cancel", s.CancelMyOrder, authenticated, owner)
}
