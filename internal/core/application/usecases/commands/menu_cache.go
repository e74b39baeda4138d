package commands

import (
	"context"
	"log/slog"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/ports"
)

// invalidateShopMenu runs after commit. A failed delete leaves the public menu stale
// until the cache TTL expires, so it is logged and not returned.
func invalidateShopMenu(ctx context.Context, cache ports.Cache, logger *slog.Logger, shopID kernel.UUID) {
	if err := cache.Delete(ctx, ports.ShopMenuCacheKey(shopID)); err != nil {
		logger.WarnContext(ctx, "failed to invalidate shop menu cache", "shopId", shopID.String(), "error", err)
	}
}
