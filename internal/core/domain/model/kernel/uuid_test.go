package kernel_test

import (
	"encoding/json"
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id1.String())
	assert.False(t, id1.IsEqual(id2))
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should accept supported formats", func(t *testing.T) {
		for _, input := range []string{
			validUUID,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, input)
			assert.Equal(t, validUUID, id.String())
		}
	})

	t.Run("should return error for invalid UUID format", func(t *testing.T) {
		for _, input := range []string{
			"",
			"not-a-uuid",
			"550e8400-e29b-41d4-a716",
			"550e8400-e29b-41d4-a716-44665544000g",
		} {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from valid bytes", func(t *testing.T) {
		raw := uuid.MustParse(validUUID)

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
		assert.Equal(t, raw, id.Bytes())
	})

	t.Run("should return error for invalid byte length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should return error for nil bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("ids parsed from different sources compare equal", func(t *testing.T) {
		fromString, _ := kernel.UUIDFromString(validUUID)
		raw := uuid.MustParse(validUUID)
		fromBytes, _ := kernel.UUIDFromBytes(raw[:])

		assert.True(t, fromString.IsEqual(fromBytes))
		assert.True(t, fromBytes.IsEqual(fromString))
	})

	t.Run("different ids are not equal", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})

	t.Run("zero values", func(t *testing.T) {
		var id1, id2 kernel.UUID

		assert.True(t, id1.IsEqual(id2))
		assert.False(t, id1.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.NoError(t, kernel.NewUUID().Validate())
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
}

func TestUUID_JSON(t *testing.T) {
	type envelope struct {
		ID kernel.UUID `json:"id"`
	}

	t.Run("encodes as canonical string", func(t *testing.T) {
		id, _ := kernel.UUIDFromString(validUUID)

		data, err := json.Marshal(envelope{ID: id})

		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"550e8400-e29b-41d4-a716-446655440000"}`, string(data))
	})

	t.Run("decodes from string", func(t *testing.T) {
		var decoded envelope

		require.NoError(t, json.Unmarshal([]byte(`{"id":"`+validUUID+`"}`), &decoded))
		assert.Equal(t, validUUID, decoded.ID.String())
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		var decoded envelope

		require.Error(t, json.Unmarshal([]byte(`{"id":"nope"}`), &decoded))
	})
}

func TestUUID_Immutability(t *testing.T) {
	original := kernel.NewUUID()
	originalString := original.String()

	bytes := original.Bytes()
	for i := range bytes {
		bytes[i] = 0xFF
	}

	assert.Equal(t, originalString, original.String())
	require.NoError(t, original.Validate())
}
