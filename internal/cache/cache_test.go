package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A nil client must behave like an always-empty cache so services can run
// without redis, in tests and when the instance is down.
func TestNilClientFailsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "spatial_data:list")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, "spatial_data:list", []byte("[]"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "spatial_data:list"))

	var layers []string
	assert.False(t, c.GetJSON(ctx, "spatial_data:list", &layers))
	assert.Nil(t, layers)

	// SetJSON must not panic either.
	c.SetJSON(ctx, "users:count", int64(2), time.Minute)
}

func TestSetJSONSkipsUnmarshalableValues(t *testing.T) {
	var c *Client

	// Channels cannot be marshaled; the helper must swallow that quietly.
	c.SetJSON(context.Background(), "bad", make(chan int), time.Minute)
}
