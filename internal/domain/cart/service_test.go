// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/clothing-store/internal/config"
	"github.com/your-org/clothing-store/internal/domain/product"
)

func newGuestCartService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		Store: config.StoreConfig{Currency: "USD", GuestCartTTL: 168 * time.Hour},
	}
	return NewService(nil, client, cfg), mr
}

func TestGuestCartRoundTrip(t *testing.T) {
	svc, mr := newGuestCartService(t)
	ctx := context.Background()

	saved := &Cart{SessionID: "guest-abc-123"}
	saved.AddLine(1, product.SizeM, 2)
	saved.AddLine(5, product.SizeL, 1)

	require.NoError(t, svc.save(ctx, saved))

	loaded, found, err := svc.loadGuestCart(ctx, "guest-abc-123")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "guest-abc-123", loaded.SessionID)
	require.Len(t, loaded.Lines, 2)
	assert.Equal(t, uint(1), loaded.Lines[0].ProductID)
	assert.Equal(t, product.SizeM, loaded.Lines[0].Size)
	assert.Equal(t, 2, loaded.Lines[0].Quantity)
	assert.Equal(t, saved.Lines[0].ID, loaded.Lines[0].ID)

	// Stored under the session key with the configured TTL
	key := guestCartKey("guest-abc-123")
	require.True(t, mr.Exists(key))
	assert.Equal(t, 168*time.Hour, mr.TTL(key))
}

func TestLoadGuestCartAbsentSessionIsFreshCart(t *testing.T) {
	svc, _ := newGuestCartService(t)

	loaded, found, err := svc.loadGuestCart(context.Background(), "never-seen")
	require.NoError(t, err)

	assert.False(t, found)
	assert.True(t, loaded.IsEmpty())
	assert.Equal(t, "never-seen", loaded.SessionID)
}

func TestGuestCartSaveRefreshesTTL(t *testing.T) {
	svc, mr := newGuestCartService(t)
	ctx := context.Background()

	cart := &Cart{SessionID: "guest-ttl"}
	cart.AddLine(1, product.SizeS, 1)
	require.NoError(t, svc.save(ctx, cart))

	key := guestCartKey("guest-ttl")
	mr.FastForward(100 * time.Hour)

	cart.AddLine(2, product.SizeM, 1)
	require.NoError(t, svc.save(ctx, cart))

	assert.Equal(t, 168*time.Hour, mr.TTL(key))
}
