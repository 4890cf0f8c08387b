package commands

import (
	"context"
)

// DeactivateAccountCommandHandler soft deletes the acting user's account.
type DeactivateAccountCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeactivateAccountCommandHandler creates a handler for account deletion.
func NewDeactivateAccountCommandHandler(uowFactory UserUoWFactory) DeactivateAccountCommandHandler {
	return DeactivateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flips the user's active flag to false. No other attribute changes.
func (h *DeactivateAccountCommandHandler) Handle(ctx context.Context, cmd DeactivateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	u.Deactivate()

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
