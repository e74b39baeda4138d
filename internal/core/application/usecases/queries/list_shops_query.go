package queries

import (
	"context"
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrListShopsQueryIsNotConstructed = errors.New(
	"ListShopsQuery must be created via NewListShopsQuery constructor",
)

type ListShopsQuery struct {
	guard guard.ConstructorGuard
}

func NewListShopsQuery() ListShopsQuery {
	return ListShopsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListShopsQuery) Validate() error {
	return q.guard.Validate(ErrListShopsQueryIsNotConstructed)
}

// ShopSummaryResponse is a storefront card. FreeDeliveryAbove is nil when the shop
// has no threshold.
type ShopSummaryResponse struct {
	ID                kernel.UUID
	ShopName          string
	Location          shop.Location
	Type              shop.Type
	ImageURL          string
	IsOpen            bool
	DeliveryFee       decimal.Decimal
	MinimumOrder      decimal.Decimal
	FreeDeliveryAbove *decimal.Decimal
}

type ListShopsQueryHandler struct {
	db *gorm.DB
}

func NewListShopsQueryHandler(db *gorm.DB) ListShopsQueryHandler {
	return ListShopsQueryHandler{db: db}
}

// Handle lists active shops by name. Closed shops are included so students can see them.
func (h ListShopsQueryHandler) Handle(ctx context.Context, query ListShopsQuery) ([]ShopSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_name,
			location,
			shop_type,
			image_url,
			is_open,
			delivery_fee,
			minimum_order,
			free_delivery_above
		FROM shops
		WHERE active = ?
		ORDER BY shop_name, id
	`, true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shops := make([]ShopSummaryResponse, 0)
	for rows.Next() {
		var (
			resp      ShopSummaryResponse
			id        uuid.UUID
			location  string
			shopType  string
			freeAbove decimal.NullDecimal
		)
		err = rows.Scan(
			&id,
			&resp.ShopName,
			&location,
			&shopType,
			&resp.ImageURL,
			&resp.IsOpen,
			&resp.DeliveryFee,
			&resp.MinimumOrder,
			&freeAbove,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Location = shop.Location(location)
		resp.Type = shop.Type(shopType)
		if freeAbove.Valid {
			resp.FreeDeliveryAbove = &freeAbove.Decimal
		}
		shops = append(shops, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return shops, nil
}
