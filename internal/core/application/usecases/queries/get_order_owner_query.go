// Package queries contains read-only operations that run SQL directly against
// the database without loading aggregates.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderOwnerQueryIsNotConstructed = errors.New(
		"GetOrderOwnerQuery must be created via NewGetOrderOwnerQuery constructor",
	)
)

// GetOrderOwnerQuery looks up the customer an order belongs to.
//
// Example:
//
//	query, err := NewGetOrderOwnerQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	owner, err := handler.Handle(ctx, query)
//	if owner.IsEqual(actorID) {
//	    // the actor may touch the order
//	}
type GetOrderOwnerQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderOwnerQuery creates a query for the given order.
func NewGetOrderOwnerQuery(orderID kernel.UUID) (GetOrderOwnerQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderOwnerQuery{}, err
	}
	return GetOrderOwnerQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderOwnerQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetOrderOwnerQuery) OrderID() kernel.UUID {
	return q.orderID
}
