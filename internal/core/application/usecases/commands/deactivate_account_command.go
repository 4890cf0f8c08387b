package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrDeactivateAccountCommandIsNotConstructed = errors.New(
		"DeactivateAccountCommand must be created via NewDeactivateAccountCommand constructor",
	)
)

// DeactivateAccountCommand represents a user deleting their own account.
// Deletion is soft: the account is only marked inactive.
type DeactivateAccountCommand struct {
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateAccountCommand creates the command for the acting user.
func NewDeactivateAccountCommand(actorID kernel.UUID) (DeactivateAccountCommand, error) {
	if err := actorID.Validate(); err != nil {
		return DeactivateAccountCommand{}, err
	}

	return DeactivateAccountCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateAccountCommandIsNotConstructed)
}

// ActorID returns the identifier of the user deleting their account.
func (c DeactivateAccountCommand) ActorID() kernel.UUID {
	return c.actorID
}
