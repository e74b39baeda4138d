package ports

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
)

// Cache stores opaque read-model payloads. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// ShopMenuCacheKey is shared by the menu read path and every write that can change it.
func ShopMenuCacheKey(shopID kernel.UUID) string {
	return "menu:shop:" + shopID.String()
}
