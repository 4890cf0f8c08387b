package user_test

import (
	"strings"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Ann", "ann@example.com", "hash")
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("should create active user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "  Ann ", " Ann@Example.COM ", "hash")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Ann", u.Name())
		assert.Equal(t, "ann@example.com", u.Email())
		assert.Equal(t, "hash", u.PasswordHash())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.True(t, u.IsActive())
		assert.Empty(t, u.Orders())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		u, err := user.NewUser(kernel.UUID{}, "", "not-an-email", "")

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestRestoreUser(t *testing.T) {
	orders := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	u, err := user.RestoreUser(kernel.NewUUID(), "Ann", "ann@example.com", "hash", user.RoleAdmin, false, orders)

	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role())
	assert.False(t, u.IsActive())
	assert.Equal(t, orders, u.Orders())

	returned := u.Orders()
	returned[0] = kernel.NewUUID()
	assert.Equal(t, orders, u.Orders())
}

func TestUser_Validate(t *testing.T) {
	var nilUser *user.User

	assert.Equal(t, user.ErrUserIsNotConstructed, nilUser.Validate())
	assert.Equal(t, user.ErrUserIsNotConstructed, (&user.User{}).Validate())
}

func TestUser_UpdateProfile(t *testing.T) {
	t.Run("should update name only", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.UpdateProfile(user.ProfileChanges{Name: ptr("Bob")}))

		assert.Equal(t, "Bob", u.Name())
		assert.Equal(t, "ann@example.com", u.Email())
	})

	t.Run("should normalize email", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.UpdateProfile(user.ProfileChanges{Email: ptr("BOB@example.com")}))

		assert.Equal(t, "bob@example.com", u.Email())
	})

	t.Run("should keep password, role and active untouched", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.UpdateProfile(user.ProfileChanges{Name: ptr("Bob"), Email: ptr("bob@example.com")}))

		assert.Equal(t, "hash", u.PasswordHash())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.True(t, u.IsActive())
	})

	t.Run("should apply nothing when a field is invalid", func(t *testing.T) {
		u := newUser(t)

		err := u.UpdateProfile(user.ProfileChanges{Name: ptr("Bob"), Email: ptr("Bob <bob@example.com>")})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Ann", u.Name())
		assert.Equal(t, "ann@example.com", u.Email())
	})
}

func TestUser_Deactivate(t *testing.T) {
	u := newUser(t)

	u.Deactivate()
	u.Deactivate()

	assert.False(t, u.IsActive())
	assert.Equal(t, "Ann", u.Name())
	assert.Equal(t, "ann@example.com", u.Email())
	assert.Equal(t, []string{user.FieldActive}, u.ChangedFields())
}

func TestUser_ChangedFields(t *testing.T) {
	t.Run("should start empty", func(t *testing.T) {
		assert.Empty(t, newUser(t).ChangedFields())
	})

	t.Run("should list only the profile fields that were set", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.UpdateProfile(user.ProfileChanges{Email: ptr("bob@example.com")}))

		assert.Equal(t, []string{user.FieldEmail}, u.ChangedFields())
	})

	t.Run("should record nothing for a rejected update", func(t *testing.T) {
		u := newUser(t)

		require.Error(t, u.UpdateProfile(user.ProfileChanges{Name: ptr("")}))

		assert.Empty(t, u.ChangedFields())
	})
}

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "trims spaces", input: "  Ann  ", expected: "Ann"},
		{name: "accepts max length", input: strings.Repeat("é", user.MaxNameLength), expected: strings.Repeat("é", user.MaxNameLength)},
		{name: "rejects blank", input: "   ", err: errs.ErrValueIsRequired},
		{name: "rejects too long", input: strings.Repeat("a", user.MaxNameLength+1), err: errs.ErrValueIsOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := user.NormalizeName(tc.input)

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "lower cases", input: "Ann@Example.com", expected: "ann@example.com"},
		{name: "rejects empty", input: "", err: errs.ErrValueIsRequired},
		{name: "rejects missing at", input: "ann.example.com", err: errs.ErrValueIsInvalid},
		{name: "rejects display name", input: "Ann <ann@example.com>", err: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := user.NormalizeEmail(tc.input)

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestParseRole(t *testing.T) {
	role, err := user.ParseRole(" Admin ")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)

	_, err = user.ParseRole("root")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
