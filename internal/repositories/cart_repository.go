package repository

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"
)

const cartKeyPrefix = "cart"

// CartRepository stores a session's cart as a single JSON document mapping item id
// to item. It satisfies cart.Storage.
type CartRepository interface {
	Load(ctx context.Context, sessionKey string) (map[string]models.CartItem, error)
	Save(ctx context.Context, sessionKey string, items map[string]models.CartItem) error
	Discard(ctx context.Context, storageKey string) error
}

type cartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepo(client *redis.Client, ttl time.Duration) CartRepository {
	return &cartRepository{client: client, ttl: ttl}
}

// CartStorageKey hashes the session key so raw user ids and guest tokens never
// appear in the keyspace.
func CartStorageKey(sessionKey string) string {
	sum := blake2b.Sum256([]byte(sessionKey))
	return cartKeyPrefix + ":" + hex.EncodeToString(sum[:])
}

func (r *cartRepository) Load(ctx context.Context, sessionKey string) (map[string]models.CartItem, error) {

	key := CartStorageKey(sessionKey)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get cart %s: %w", key, err)
	}

	items := make(map[string]models.CartItem)
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	return items, nil
}

// Save writes the whole cart and refreshes its expiry. An empty cart is deleted.
func (r *cartRepository) Save(ctx context.Context, sessionKey string, items map[string]models.CartItem) error {

	key := CartStorageKey(sessionKey)

	if len(items) == 0 {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to delete cart %s: %w", key, err)
		}

		return nil
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", key, err)
	}

	return nil
}

// Discard deletes a cart by its hashed storage key, as recorded on a paid checkout.
func (r *cartRepository) Discard(ctx context.Context, storageKey string) error {
	if err := r.client.Del(ctx, storageKey).Err(); err != nil {
		return fmt.Errorf("failed to discard cart %s: %w", storageKey, err)
	}

	return nil
}
