package http

import (
	"context"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/crud"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/payload"

	"github.com/labstack/echo/v4"
)

type ProfileUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateProfileCommand) (*user.User, error)
}

type AccountDeactivator interface {
	Handle(ctx context.Context, cmd commands.DeactivateAccountCommand) error
}

type OrderUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
}

type OrderCanceler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
}

// UserResource is the administrative CRUD surface over users.
type UserResource interface {
	GetOne(ctx context.Context, id kernel.UUID) (crud.UserView, error)
	GetAll(ctx context.Context, params crud.ListParams) ([]crud.UserView, error)
	UpdateOne(ctx context.Context, id kernel.UUID, body payload.Payload) (crud.UserView, error)
	DeleteOne(ctx context.Context, id kernel.UUID) error
	CreateOne(ctx context.Context, body payload.Payload) (crud.UserView, error)
}

// Server holds the echo handlers of the account and order API.
type Server struct {
	// Command handlers
	profileUpdater     ProfileUpdater
	accountDeactivator AccountDeactivator
	orderUpdater       OrderUpdater
	orderCanceler      OrderCanceler

	// Queries
	users       UserResource
	orderOwners OrderOwnerFinder
}

func NewServer(
	profileUpdater ProfileUpdater,
	accountDeactivator AccountDeactivator,
	orderUpdater OrderUpdater,
	orderCanceler OrderCanceler,
	users UserResource,
	orderOwners OrderOwnerFinder,
) *Server {
	return &Server{
		profileUpdater:     profileUpdater,
		accountDeactivator: accountDeactivator,
		orderUpdater:       orderUpdater,
		orderCanceler:      orderCanceler,
		users:              users,
		orderOwners:        orderOwners,
	}
}

type userData struct {
	User crud.UserView `json:"user"`
}

type usersData struct {
	Results int             `json:"results"`
	Users   []crud.UserView `json:"users"`
}

// GetMe handles GET /api/v1/users/me.
func (s *Server) GetMe(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	view, err := s.users.GetOne(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, userData{User: view})
}

// UpdateMe handles PATCH /api/v1/users/me. Only name and email can change here.
func (s *Server) UpdateMe(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	body, err := bindPayload(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProfileCommand(identity.ID, body)
	if err != nil {
		return err
	}

	updated, err := s.profileUpdater.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return respond(c, userData{User: crud.NewUserView(updated)})
}

// DeleteMe handles DELETE /api/v1/users/me by deactivating the account.
func (s *Server) DeleteMe(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeactivateAccountCommand(identity.ID)
	if err != nil {
		return err
	}

	if err = s.accountDeactivator.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(c echo.Context) error {
	views, err := s.users.GetAll(c.Request().Context(), listParams(c))
	if err != nil {
		return err
	}
	return respond(c, usersData{Results: len(views), Users: views})
}

// GetUser handles GET /api/v1/users/:id.
func (s *Server) GetUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	view, err := s.users.GetOne(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, userData{User: view})
}

// UpdateUser handles PATCH /api/v1/users/:id.
func (s *Server) UpdateUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	body, err := bindPayload(c)
	if err != nil {
		return err
	}

	view, err := s.users.UpdateOne(c.Request().Context(), id, body)
	if err != nil {
		return err
	}
	return respond(c, userData{User: view})
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err = s.users.DeleteOne(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateUser handles POST /api/v1/users. The body is never read: accounts are
// created through signup only.
func (s *Server) CreateUser(c echo.Context) error {
	_, err := s.users.CreateOne(c.Request().Context(), payload.Payload{})
	return err
}

// UpdateMyOrder handles PATCH /api/v1/orders/:orderId. Ownership is checked by
// RestrictToOrderOwner before it runs.
func (s *Server) UpdateMyOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}

	body, err := bindPayload(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, body)
	if err != nil {
		return err
	}

	if err = s.orderUpdater.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, Ack{Text: "order updated"})
}

// CancelMyOrder handles PATCH /api/v1/orders/:orderId/cancel.
func (s *Server) CancelMyOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.orderCanceler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, Ack{Text: "order canceled"})
}

// listParams splits the query string into paging keys and equality filters.
func listParams(c echo.Context) crud.ListParams {
	params := crud.ListParams{
		Filters: make(map[string]string),
		Sort:    c.QueryParam("sort"),
		Page:    c.QueryParam("page"),
		Limit:   c.QueryParam("limit"),
	}
	for key, values := range c.QueryParams() {
		switch key {
		case "sort", "page", "limit":
			continue
		}
		if len(values) > 0 {
			params.Filters[key] = values[0]
		}
	}
	return params
}
