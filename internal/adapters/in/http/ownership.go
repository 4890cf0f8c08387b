package http

import (
	"context"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const notYourOrder = "Oh, this is not your order"

// OrderOwnerFinder resolves the customer an order belongs to.
type OrderOwnerFinder interface {
	Handle(ctx context.Context, query queries.GetOrderOwnerQuery) (kernel.UUID, error)
}

// RestrictToOrderOwner runs next only when the order named by the orderId path
// parameter belongs to the caller. A missing order is a 404 and any other
// lookup failure surfaces as a generic 500.
func RestrictToOrderOwner(owners OrderOwnerFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := identityFrom(c)
			if err != nil {
				return err
			}

			orderID, err := uuidParam(c, "orderId")
			if err != nil {
				return err
			}

			query, err := queries.NewGetOrderOwnerQuery(orderID)
			if err != nil {
				return err
			}

			ownerID, err := owners.Handle(c.Request().Context(), query)
			if err != nil {
				return err
			}

			if !ownerID.IsEqual(identity.ID) {
				return errs.NewForbiddenError(notYourOrder)
			}

			return next(c)
		}
	}
}
