package order_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.Processing, "processing"},
		{order.Shipped, "shipped"},
		{order.Delivered, "delivered"},
		{order.Canceled, "canceled"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6)} {
		t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid name", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should ignore case and spaces", func(t *testing.T) {
		parsed, err := order.ParseStatus("  Canceled ")

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "cancelled", "lost"} {
			parsed, err := order.ParseStatus(name)

			require.Error(t, err, name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Unknown, parsed)
		}
	})
}

func TestStatus_JSON(t *testing.T) {
	t.Run("round trips through its name", func(t *testing.T) {
		data, err := json.Marshal(map[string]order.Status{"status": order.Shipped})
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"shipped"}`, string(data))

		var decoded map[string]order.Status
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, order.Shipped, decoded["status"])
	})

	t.Run("refuses to encode invalid status", func(t *testing.T) {
		_, err := json.Marshal(map[string]order.Status{"status": order.Unknown})

		require.Error(t, err)
	})
}
