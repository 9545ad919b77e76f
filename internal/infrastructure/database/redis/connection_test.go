// internal/infrastructure/database/redis/connection_test.go
package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return &Client{Redis: goredis.NewClient(&goredis.Options{Addr: mr.Addr()})}, mr
}

func TestSetAndGetJSON(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "shirt", Count: 3}, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("k"))

	var got payload
	require.NoError(t, c.GetJSON(ctx, "k", &got))
	assert.Equal(t, payload{Name: "shirt", Count: 3}, got)
}

func TestGetJSONMissingKeyIsNil(t *testing.T) {
	c, _ := newTestClient(t)

	var got payload
	err := c.GetJSON(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, goredis.Nil)
}

func TestDel(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "shirt"}, time.Hour))
	require.NoError(t, c.Del(ctx, "k"))
	assert.False(t, mr.Exists("k"))
}
