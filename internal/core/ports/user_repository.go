// Package ports defines the persistence contracts of the domain layer.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Deactivated users are invisible to every method.
type UserRepository interface {
	// Add persists a new user aggregate, password hash included.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists the attributes the aggregate reports in ChangedFields, so
	// concurrent writes to other columns survive. The password hash, role and
	// orders are never written.
	// Returns errs.ErrObjectNotFound when no active user has the aggregate's ID and
	// errs.ErrValueIsInvalid when the email is already taken.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves an active user with the identifiers of its orders.
	// Returns errs.ErrObjectNotFound when no active user has the ID.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
