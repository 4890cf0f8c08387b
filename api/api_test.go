package api_test

import (
	"testing"

	"storefront/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)

	me := doc.Paths.Value("/api/v1/users/me")
	require.NotNil(t, me)
	assert.NotNil(t, me.Get)
	assert.NotNil(t, me.Patch)
	assert.NotNil(t, me.Delete)

	cancel := doc.Paths.Value("/api/v1/orders/{orderId}/cancel")
	require.NotNil(t, cancel)
	assert.NotNil(t, cancel.Patch)
}
