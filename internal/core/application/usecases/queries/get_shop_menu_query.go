package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetShopMenuQueryIsNotConstructed = errors.New(
	"GetShopMenuQuery must be created via NewGetShopMenuQuery constructor",
)

type GetShopMenuQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShopMenuQuery(shopID kernel.UUID) (GetShopMenuQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopMenuQuery{}, errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	return GetShopMenuQuery{shopID: shopID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShopMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetShopMenuQueryIsNotConstructed)
}

func (q GetShopMenuQuery) ShopID() kernel.UUID {
	return q.shopID
}

// ShopMenuResponse is the public menu: available items only.
type ShopMenuResponse struct {
	ShopID   kernel.UUID        `json:"shopId"`
	ShopName string             `json:"shopName"`
	IsOpen   bool               `json:"isOpen"`
	Items    []MenuItemResponse `json:"items"`
}

type GetShopMenuQueryHandler struct {
	db     *gorm.DB
	cache  ports.Cache
	logger *slog.Logger
}

func NewGetShopMenuQueryHandler(db *gorm.DB, cache ports.Cache, logger *slog.Logger) GetShopMenuQueryHandler {
	return GetShopMenuQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "get_shop_menu_query_handler"),
	}
}

// Handle serves the menu from cache when it can. Cache failures are logged and the
// database answers instead.
func (h GetShopMenuQueryHandler) Handle(ctx context.Context, query GetShopMenuQuery) (ShopMenuResponse, error) {
	if err := query.Validate(); err != nil {
		return ShopMenuResponse{}, err
	}

	key := ports.ShopMenuCacheKey(query.ShopID())
	if resp, ok := h.fromCache(ctx, key); ok {
		return resp, nil
	}

	resp, err := h.fromDatabase(ctx, query.ShopID())
	if err != nil {
		return ShopMenuResponse{}, err
	}

	if payload, marshalErr := json.Marshal(resp); marshalErr != nil {
		h.logger.WarnContext(ctx, "failed to encode menu for cache", "key", key, "error", marshalErr)
	} else if setErr := h.cache.Set(ctx, key, payload); setErr != nil {
		h.logger.WarnContext(ctx, "failed to cache menu", "key", key, "error", setErr)
	}
	return resp, nil
}

func (h GetShopMenuQueryHandler) fromCache(ctx context.Context, key string) (ShopMenuResponse, bool) {
	payload, found, err := h.cache.Get(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "menu cache read failed", "key", key, "error", err)
		return ShopMenuResponse{}, false
	}
	if !found {
		return ShopMenuResponse{}, false
	}

	var resp ShopMenuResponse
	if err = json.Unmarshal(payload, &resp); err != nil {
		h.logger.WarnContext(ctx, "discarding unreadable cached menu", "key", key, "error", err)
		return ShopMenuResponse{}, false
	}
	return resp, true
}

func (h GetShopMenuQueryHandler) fromDatabase(ctx context.Context, shopID kernel.UUID) (ShopMenuResponse, error) {
	resp := ShopMenuResponse{ShopID: shopID}

	err := h.db.WithContext(ctx).Raw(`
		SELECT shop_name, is_open
		FROM shops
		WHERE id = ? AND active = ?
	`, shopID.Bytes(), true).Row().Scan(&resp.ShopName, &resp.IsOpen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ShopMenuResponse{}, errs.NewObjectNotFoundError("shopId", shopID.String())
		}
		return ShopMenuResponse{}, err
	}

	resp.Items, err = readMenuItems(ctx, h.db,
		selectMenuItems+` WHERE shop_id = ? AND available = ? ORDER BY category, name, id`,
		shopID.Bytes(), true)
	if err != nil {
		return ShopMenuResponse{}, err
	}
	return resp, nil
}
