package user

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// MaxNameLength is the maximum number of runes in a user name.
const MaxNameLength = 64

// Names of the attributes a change to a User can touch.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldActive = "active"
)

// ErrUserIsNotConstructed is returned when a User was not created through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the aggregate root of a customer account.
//
// User follows these invariants:
//   - Must have a valid identifier
//   - Name is 1..MaxNameLength runes after trimming
//   - Email is a bare, lower-cased address
//   - Role is a known role
//   - Orders are read-only references loaded with the user
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	active       bool
	orders       []kernel.UUID

	changed       []string
	isConstructed bool
}

// ProfileChanges lists the attributes users may change on their own account.
// Nil fields are left as is.
type ProfileChanges struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the changes would leave the profile untouched.
func (c ProfileChanges) IsEmpty() bool {
	return c.Name == nil && c.Email == nil
}

// NewUser creates an active user with the RoleUser role and no orders.
// passwordHash is produced by the signup flow and is opaque to this package.
func NewUser(id kernel.UUID, name, email, passwordHash string) (*User, error) {
	return RestoreUser(id, name, email, passwordHash, RoleUser, true, nil)
}

// RestoreUser rebuilds a user from persisted state, enforcing the same invariants as NewUser.
func RestoreUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role Role,
	active bool,
	orders []kernel.UUID,
) (*User, error) {
	u := &User{
		passwordHash:  passwordHash,
		active:        active,
		orders:        append([]kernel.UUID(nil), orders...),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the normalized email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account has not been deleted.
func (u *User) IsActive() bool {
	return u.active
}

// Orders returns the identifiers of the user's orders.
func (u *User) Orders() []kernel.UUID {
	return append([]kernel.UUID(nil), u.orders...)
}

// UpdateProfile applies every non-nil field of changes. Either all changes are
// applied or, when one of them is invalid, none is.
func (u *User) UpdateProfile(changes ProfileChanges) error {
	var (
		name, email       string
		errName, errEmail error
	)
	if changes.Name != nil {
		name, errName = NormalizeName(*changes.Name)
	}
	if changes.Email != nil {
		email, errEmail = NormalizeEmail(*changes.Email)
	}
	if err := errors.Join(errName, errEmail); err != nil {
		return err
	}

	if changes.Name != nil {
		u.name = name
		u.markChanged(FieldName)
	}
	if changes.Email != nil {
		u.email = email
		u.markChanged(FieldEmail)
	}
	return nil
}

// Deactivate soft deletes the account.
func (u *User) Deactivate() {
	u.active = false
	u.markChanged(FieldActive)
}

// ChangedFields lists the attributes modified since the user was built, in the
// order they were first changed. Persistence writes only these.
func (u *User) ChangedFields() []string {
	return slices.Clone(u.changed)
}

func (u *User) markChanged(field string) {
	if !slices.Contains(u.changed, field) {
		u.changed = append(u.changed, field)
	}
}

// NormalizeName trims the name and checks its length.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return "", errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	return name, nil
}

// NormalizeEmail trims and lower-cases the address and checks that it is a bare
// address without a display name.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if addr.Address != email {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a bare address", email))
	}
	return email, nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	normalized, err := NormalizeName(name)
	if err != nil {
		return err
	}
	u.name = normalized
	return nil
}

func (u *User) setEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	u.email = normalized
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
