package commands

import (
	"context"

	"storefront/internal/core/domain/model/user"
)

// UpdateProfileCommandHandler applies a user's own profile changes.
//
// Example:
//
//	handler := NewUpdateProfileCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("profile update failed: %w", err)
//	}
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the acting user, validates and applies the changes, and returns the
// updated user. Only name and email can be written by this path.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	if changes.IsEmpty() {
		return u, nil
	}

	if err = u.UpdateProfile(changes); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
