package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"salonmarket/internal/state"
)

// CartTTL is refreshed on every write.
const CartTTL = 7 * 24 * time.Hour

func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client, ttl: CartTTL}
}

type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Get returns an empty cart when the user has none.
func (s CartStore) Get(ctx context.Context, userID int64) (state.CartState, error) {
	var cart state.CartState
	err := getJSON(ctx, s.client, cartKey(userID), &cart)
	if errors.Is(err, ErrCacheMiss) {
		return state.CartState{}, nil
	}
	return cart, err
}

func (s CartStore) Save(ctx context.Context, userID int64, cart state.CartState) error {
	return setJSON(ctx, s.client, cartKey(userID), cart, s.ttl)
}

func (s CartStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}
