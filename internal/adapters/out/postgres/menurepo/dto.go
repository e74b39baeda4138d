// Package menurepo persists shop menu items.
package menurepo

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuItemDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID             uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name               string          `gorm:"size:120;not null"`
	Description        string          `gorm:"size:500"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Category           string          `gorm:"size:32;not null"`
	Vegetarian         bool            `gorm:"not null"`
	PreparationMinutes int             `gorm:"not null"`
	Available          bool            `gorm:"index;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	d := item.Details()
	return MenuItemDTO{
		ID:                 item.ID().Bytes(),
		ShopID:             item.ShopID().Bytes(),
		Name:               d.Name,
		Description:        d.Description,
		Price:              d.Price.Amount(),
		Category:           string(d.Category),
		Vegetarian:         d.Vegetarian,
		PreparationMinutes: d.PreparationMinutes,
		Available:          item.IsAvailable(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, shopID, menu.Details{
		Name:               dto.Name,
		Description:        dto.Description,
		Price:              price,
		Category:           menu.Category(dto.Category),
		Vegetarian:         dto.Vegetarian,
		PreparationMinutes: dto.PreparationMinutes,
	}, dto.Available)
}
