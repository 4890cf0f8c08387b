package crud

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/payload"
)

// CreateNotSupportedHint is returned for every create request; accounts are
// created through signup.
const CreateNotSupportedHint = "This route is not defined! Please use /signup instead"

// Resource exposes get-one, get-all, update-one and delete-one for records of type T.
//
// Example:
//
//	users := crud.NewUserResource(store)
//	view, err := users.UpdateOne(ctx, id, payload.Payload{"role": "admin"})
type Resource[T any] struct {
	name   string
	schema Schema
	store  Store[T]
}

// NewResource binds a schema and a store under a resource name used in errors.
func NewResource[T any](name string, schema Schema, store Store[T]) Resource[T] {
	return Resource[T]{
		name:   name,
		schema: schema,
		store:  store,
	}
}

// Name returns the resource name.
func (r Resource[T]) Name() string {
	return r.name
}

// GetOne returns the record with the given id.
func (r Resource[T]) GetOne(ctx context.Context, id kernel.UUID) (T, error) {
	if err := id.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return r.store.FindOne(ctx, id)
}

// GetAll returns one page of records matching the filters.
func (r Resource[T]) GetAll(ctx context.Context, params ListParams) ([]T, error) {
	query, err := r.schema.BuildListQuery(params)
	if err != nil {
		return nil, err
	}
	return r.store.FindAll(ctx, query)
}

// UpdateOne applies the updatable fields of body to the record and returns the
// stored result. Fields outside the schema's updatable set are dropped; a body
// left with nothing to write returns the record unchanged.
func (r Resource[T]) UpdateOne(ctx context.Context, id kernel.UUID, body payload.Payload) (T, error) {
	var zero T
	if err := id.Validate(); err != nil {
		return zero, err
	}

	columns, err := r.columns(payload.Filter(body, r.schema.Updatable()...))
	if err != nil {
		return zero, err
	}
	if len(columns) == 0 {
		return r.store.FindOne(ctx, id)
	}

	return r.store.UpdateOne(ctx, id, columns)
}

// DeleteOne removes the record with the given id.
func (r Resource[T]) DeleteOne(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.store.DeleteOne(ctx, id)
}

// CreateOne always fails with errs.ErrOperationNotSupported; the store is never touched.
func (r Resource[T]) CreateOne(_ context.Context, _ payload.Payload) (T, error) {
	var zero T
	return zero, errs.NewOperationNotSupportedError("create "+r.name, CreateNotSupportedHint)
}

func (r Resource[T]) columns(p payload.Payload) (map[string]any, error) {
	var problems []error
	columns := make(map[string]any, len(p))
	for _, name := range p.Keys() {
		f, _ := r.schema.Field(name)
		value, err := f.decode(p[name])
		if err != nil {
			problems = append(problems, err)
			continue
		}
		columns[f.Column] = value
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return columns, nil
}
