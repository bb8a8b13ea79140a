package cache

import (
	"context"
	"time"
)

// Cache holds JSON encoded values with an expiry. A miss is (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const menuKeyPrefix = "menu"

// MenuKey is where the sanitized menu of a kitchen is kept.
func MenuKey(kitchenID string) string {
	return menuKeyPrefix + ":" + kitchenID
}
