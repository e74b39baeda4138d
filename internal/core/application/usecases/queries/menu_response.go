package queries

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItemResponse struct {
	ID                 kernel.UUID     `json:"id"`
	ShopID             kernel.UUID     `json:"shopId"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	Category           menu.Category   `json:"category"`
	Vegetarian         bool            `json:"vegetarian"`
	PreparationMinutes int             `json:"preparationMinutes"`
	Available          bool            `json:"available"`
}

const selectMenuItems = `
	SELECT
		id,
		shop_id,
		name,
		description,
		price,
		category,
		vegetarian,
		preparation_minutes,
		available
	FROM menu_items`

func readMenuItems(ctx context.Context, db *gorm.DB, query string, args ...any) ([]MenuItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			item       MenuItemResponse
			id, shopID uuid.UUID
			category   string
		)
		err = rows.Scan(
			&id,
			&shopID,
			&item.Name,
			&item.Description,
			&item.Price,
			&category,
			&item.Vegetarian,
			&item.PreparationMinutes,
			&item.Available,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}
		item.Category = menu.Category(category)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
