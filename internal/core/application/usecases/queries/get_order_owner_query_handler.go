package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderOwnerQueryHandler reads the customer id of an order.
type GetOrderOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderOwnerQueryHandler creates a handler backed by the given connection.
func NewGetOrderOwnerQueryHandler(db *gorm.DB) GetOrderOwnerQueryHandler {
	return GetOrderOwnerQueryHandler{db: db}
}

// Handle returns the owner of the order, or errs.ErrObjectNotFound when the
// order does not exist.
func (h GetOrderOwnerQueryHandler) Handle(ctx context.Context, query GetOrderOwnerQuery) (kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT customer_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return kernel.UUID{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return kernel.UUID{}, err
		}
		return kernel.UUID{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var customerID uuid.UUID
	if err = rows.Scan(&customerID); err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(customerID[:])
}
