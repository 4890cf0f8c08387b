// Package crudstore implements crud.Store generically on top of GORM.
package crudstore

import (
	"context"
	"errors"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/application/usecases/crud"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicateValue is the cause attached to writes rejected by a unique constraint.
var ErrDuplicateValue = errors.New("value is already taken")

// Scope narrows every statement a Store issues.
type Scope = func(*gorm.DB) *gorm.DB

type preload struct {
	name  string
	scope Scope
}

// Option configures a Store.
type Option func(*options)

type options struct {
	scopes   []Scope
	preloads []preload
	unique   map[string]string
}

// WithScope applies scope to every read, update and delete.
func WithScope(scope Scope) Option {
	return func(o *options) {
		o.scopes = append(o.scopes, scope)
	}
}

// WithPreload loads the named association on every read.
func WithPreload(association string, scope Scope) Option {
	return func(o *options) {
		o.preloads = append(o.preloads, preload{name: association, scope: scope})
	}
}

// WithUniqueColumn names the column guarded by a unique constraint so that a
// violation is reported against that column.
func WithUniqueColumn(constraint, column string) Option {
	return func(o *options) {
		if o.unique == nil {
			o.unique = make(map[string]string)
		}
		o.unique[constraint] = column
	}
}

// Store reads and writes rows of model D and returns them as T.
type Store[D any, T any] struct {
	db     *gorm.DB
	name   string
	toView func(D) (T, error)
	opts   options
}

// New creates a store. name identifies the record type in not-found errors.
func New[D any, T any](db *gorm.DB, name string, toView func(D) (T, error), opts ...Option) *Store[D, T] {
	s := &Store[D, T]{
		db:     db,
		name:   name,
		toView: toView,
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// FindOne returns the row with the given primary key.
func (s *Store[D, T]) FindOne(ctx context.Context, id kernel.UUID) (T, error) {
	var zero T
	var row D
	if err := s.read(ctx).First(&row, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errs.NewObjectNotFoundError(s.name, id.String())
		}
		return zero, err
	}
	return s.toView(row)
}

// FindAll returns the rows selected by the query.
func (s *Store[D, T]) FindAll(ctx context.Context, query crud.ListQuery) ([]T, error) {
	tx := s.read(ctx)
	for _, c := range query.Conditions {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value})
	}
	for _, o := range query.Orders {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	if query.Offset > 0 {
		tx = tx.Offset(query.Offset)
	}

	var rows []D
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]T, 0, len(rows))
	for _, row := range rows {
		v, err := s.toView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// UpdateOne writes the given columns and returns the updated row.
func (s *Store[D, T]) UpdateOne(ctx context.Context, id kernel.UUID, columns map[string]any) (T, error) {
	var zero T
	if len(columns) == 0 {
		return s.FindOne(ctx, id)
	}

	result := s.db.WithContext(ctx).
		Model(new(D)).
		Scopes(s.opts.scopes...).
		Where("id = ?", id.Bytes()).
		Updates(columns)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return zero, errs.NewValueIsInvalidErrorWithCause(s.uniqueColumn(result.Error), ErrDuplicateValue)
		}
		return zero, result.Error
	}
	if result.RowsAffected == 0 {
		return zero, errs.NewObjectNotFoundError(s.name, id.String())
	}

	return s.FindOne(ctx, id)
}

// DeleteOne removes the row with the given primary key.
func (s *Store[D, T]) DeleteOne(ctx context.Context, id kernel.UUID) error {
	result := s.db.WithContext(ctx).
		Scopes(s.opts.scopes...).
		Where("id = ?", id.Bytes()).
		Delete(new(D))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(s.name, id.String())
	}
	return nil
}

func (s *Store[D, T]) read(ctx context.Context) *gorm.DB {
	tx := s.db.WithContext(ctx).Scopes(s.opts.scopes...)
	for _, p := range s.opts.preloads {
		if p.scope != nil {
			tx = tx.Preload(p.name, p.scope)
		} else {
			tx = tx.Preload(p.name)
		}
	}
	return tx
}

// uniqueColumn names the column behind a unique violation, falling back to the
// record name for constraints the store was not told about.
func (s *Store[D, T]) uniqueColumn(err error) string {
	if column, ok := s.opts.unique[pgerr.Constraint(err)]; ok {
		return column
	}
	return s.name
}
