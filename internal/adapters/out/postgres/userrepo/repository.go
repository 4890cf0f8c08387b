package userrepo

import (
	"context"
	"errors"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrEmailTaken is the cause attached to a rejected email change.
var ErrEmailTaken = errors.New("email is already taken")

// GormUserRepository implements ports.UserRepository using GORM.
// Every read and write is restricted to active users.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user, password hash included.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Orders").Create(&dto).Error; err != nil {
		return mapWriteError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// columns maps the attributes a User reports as changed to the columns that hold them.
// Password hash, role and orders have no entry and are never written by Update.
var columns = map[string]string{
	user.FieldName:   "name",
	user.FieldEmail:  "email",
	user.FieldActive: "active",
}

// Update writes the columns of the attributes changed on the aggregate and
// nothing else. An aggregate without changes is only checked for existence.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	selected := changedColumns(aggregate.ChangedFields())
	if len(selected) == 0 {
		if _, err := r.Get(ctx, aggregate.ID()); err != nil {
			return err
		}
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
		return nil
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Scopes(Active).
		Where("id = ?", dto.ID).
		Select(selected).
		Updates(&dto)
	if result.Error != nil {
		return mapWriteError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an active user with the identifiers of its orders.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Scopes(Active).
		Preload("Orders", OrderRefs).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

func mapWriteError(err error) error {
	if pgerr.IsUniqueViolation(err) {
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailTaken)
	}
	return err
}

func changedColumns(fields []string) []string {
	selected := make([]string, 0, len(fields))
	for _, field := range fields {
		if column, ok := columns[field]; ok {
			selected = append(selected, column)
		}
	}
	return selected
}
