package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
	"storefront/internal/pkg/payload"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// orderFields are the only payload fields a customer may change on an order.
var orderFields = []string{"status", "text"}

// UpdateOrderCommand represents a customer changing the status and/or text of an order.
// It carries no identity: ownership is checked before the command is built.
type UpdateOrderCommand struct {
	orderID kernel.UUID
	changes order.Changes

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand keeps only status and text from the body and validates them.
// Every other field is dropped silently.
func NewUpdateOrderCommand(orderID kernel.UUID, body payload.Payload) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	filtered := payload.Filter(body, orderFields...)
	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(filtered),
		cmd.setText(filtered),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Changes returns the allow-listed order changes.
func (c UpdateOrderCommand) Changes() order.Changes {
	return c.changes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(p payload.Payload) error {
	name, ok, err := p.String("status")
	if err != nil || !ok {
		return err
	}

	status, err := order.ParseStatus(name)
	if err != nil {
		return err
	}
	c.changes.Status = &status
	return nil
}

func (c *UpdateOrderCommand) setText(p payload.Payload) error {
	text, ok, err := p.String("text")
	if err != nil || !ok {
		return err
	}
	c.changes.Text = &text
	return nil
}
