package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
	"storefront/internal/pkg/payload"
)

var (
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
)

const (
	passwordUpdatesNotAllowed = "password updates not allowed here, use /updateMyPassword"
	orderUpdatesNotAllowed    = "order updates not allowed here, use /updateMyOrders"
)

// profileFields are the only payload fields a user may change on their own account.
var profileFields = []string{"name", "email"}

// UpdateProfileCommand represents a user changing their own name and/or email.
// The user is always the acting identity, never a value from the request body.
//
// Example:
//
//	cmd, err := NewUpdateProfileCommand(actorID, payload.Payload{"name": "Ann"})
//	if err != nil {
//	    return err // 400: password or orders present, or a non-string value
//	}
//	updated, err := handler.Handle(ctx, cmd)
type UpdateProfileCommand struct {
	actorID kernel.UUID
	changes user.ProfileChanges

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand validates the request body and keeps only name and email.
// A body carrying password, passwordConfirm or orders is rejected whatever else it holds.
func NewUpdateProfileCommand(actorID kernel.UUID, body payload.Payload) (UpdateProfileCommand, error) {
	if body.HasAny("password", "passwordConfirm") {
		return UpdateProfileCommand{}, errs.NewFieldIsNotAllowedError("password", passwordUpdatesNotAllowed)
	}
	if body.Has("orders") {
		return UpdateProfileCommand{}, errs.NewFieldIsNotAllowedError("orders", orderUpdatesNotAllowed)
	}

	cmd := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	filtered := payload.Filter(body, profileFields...)
	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setName(filtered),
		cmd.setEmail(filtered),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// ActorID returns the identifier of the user updating their profile.
func (c UpdateProfileCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Changes returns the allow-listed profile changes.
func (c UpdateProfileCommand) Changes() user.ProfileChanges {
	return c.changes
}

func (c *UpdateProfileCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateProfileCommand) setName(p payload.Payload) error {
	name, ok, err := p.String("name")
	if err != nil || !ok {
		return err
	}
	c.changes.Name = &name
	return nil
}

func (c *UpdateProfileCommand) setEmail(p payload.Payload) error {
	email, ok, err := p.String("email")
	if err != nil || !ok {
		return err
	}
	c.changes.Email = &email
	return nil
}
