// Package crud provides a generic resource that maps untrusted request data
// onto a record type through a declared schema and delegates persistence to a Store.
//
// A Resource validates everything it passes on: only schema fields reach the
// store, every value goes through the field's decoder, and list queries are
// limited to filterable and sortable fields.
package crud

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// Store persists records of type T. Implementations return errs.ErrObjectNotFound
// for missing records and never write columns absent from the map passed to UpdateOne.
type Store[T any] interface {
	FindOne(ctx context.Context, id kernel.UUID) (T, error)
	FindAll(ctx context.Context, query ListQuery) ([]T, error)
	UpdateOne(ctx context.Context, id kernel.UUID, columns map[string]any) (T, error)
	DeleteOne(ctx context.Context, id kernel.UUID) error
}
