package order

import (
	"errors"
	"slices"
	"unicode/utf8"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// MaxTextLength is the maximum number of runes an order text may hold.
const MaxTextLength = 2000

// Names of the attributes a change to an Order can touch.
const (
	FieldStatus = "status"
	FieldText   = "text"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents an order placed by a customer. It is the aggregate root for
// everything a customer may change about an order after placing it.
//
// Order follows these invariants:
//   - Must have a valid identifier and a valid customer identifier
//   - Status is always one of the valid statuses
//   - Text is at most MaxTextLength runes
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	status     Status
	text       string

	changed       []string
	isConstructed bool
}

// Changes lists the order attributes a customer may set. Nil fields are left as is.
type Changes struct {
	Status *Status
	Text   *string
}

// IsEmpty reports whether the changes would leave the order untouched.
func (c Changes) IsEmpty() bool {
	return c.Status == nil && c.Text == nil
}

// NewOrder creates a Pending order for the customer.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, "leave at the door")
//	if err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, customerID kernel.UUID, text string) (*Order, error) {
	return RestoreOrder(id, customerID, Pending, text)
}

// RestoreOrder rebuilds an order from persisted state, enforcing the same
// invariants as NewOrder.
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, status Status, text string) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setStatus(status),
		o.setText(text),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the identifier of the user who owns the order.
func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Text returns the order's free text.
func (o *Order) Text() string {
	return o.text
}

// Apply sets every non-nil field of changes. Either all changes are applied or,
// when one of them is invalid, none is.
func (o *Order) Apply(changes Changes) error {
	var errStatus, errText error
	if changes.Status != nil {
		errStatus = changes.Status.Validate()
	}
	if changes.Text != nil {
		errText = validateText(*changes.Text)
	}
	if err := errors.Join(errStatus, errText); err != nil {
		return err
	}

	if changes.Status != nil {
		o.status = *changes.Status
		o.markChanged(FieldStatus)
	}
	if changes.Text != nil {
		o.text = *changes.Text
		o.markChanged(FieldText)
	}
	return nil
}

// Cancel moves the order to Canceled whatever its current status.
func (o *Order) Cancel() {
	o.status = Canceled
	o.markChanged(FieldStatus)
}

// ChangedFields lists the attributes modified since the order was built.
func (o *Order) ChangedFields() []string {
	return slices.Clone(o.changed)
}

func (o *Order) markChanged(field string) {
	if !slices.Contains(o.changed, field) {
		o.changed = append(o.changed, field)
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setText(text string) error {
	if err := validateText(text); err != nil {
		return err
	}
	o.text = text
	return nil
}

func validateText(text string) error {
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return errs.NewValueIsOutOfRangeError("text length", n, 0, MaxTextLength)
	}
	return nil
}
