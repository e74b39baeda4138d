// Package shoprepo persists shops and their delivery policies.
package shoprepo

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"size:254;index;not null"`
	Verified bool      `gorm:"not null"`
	Active   bool      `gorm:"index;not null"`
	IsOpen   bool      `gorm:"not null"`

	OwnerName string `gorm:"size:120;not null"`
	Phone     string `gorm:"size:10;not null"`
	ShopName  string `gorm:"size:120;index;not null"`
	Location  string `gorm:"size:32;not null"`
	ShopType  string `gorm:"size:32;not null"`
	ImageURL  string `gorm:"size:500"`

	DeliveryFee       decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	MinimumOrder      decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	FreeDeliveryAbove *decimal.Decimal `gorm:"type:numeric(10,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ShopDTO) TableName() string {
	return "shops"
}

func fromDomain(s *shop.Shop) ShopDTO {
	p := s.Profile()
	policy := s.DeliveryPolicy()

	var freeAbove *decimal.Decimal
	if threshold, ok := policy.FreeDeliveryAbove(); ok {
		amount := threshold.Amount()
		freeAbove = &amount
	}

	return ShopDTO{
		ID:                s.ID().Bytes(),
		Email:             s.Email().String(),
		Verified:          s.IsVerified(),
		Active:            s.IsActive(),
		IsOpen:            s.IsOpen(),
		OwnerName:         p.OwnerName,
		Phone:             p.Phone.String(),
		ShopName:          p.ShopName,
		Location:          string(p.Location),
		ShopType:          string(p.Type),
		ImageURL:          p.ImageURL,
		DeliveryFee:       policy.Fee().Amount(),
		MinimumOrder:      policy.MinimumOrder().Amount(),
		FreeDeliveryAbove: freeAbove,
	}
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	policy, err := PolicyFromColumns(dto.DeliveryFee, dto.MinimumOrder, dto.FreeDeliveryAbove)
	if err != nil {
		return nil, err
	}

	return shop.RestoreShop(id, kernel.Email(dto.Email), shop.Profile{
		OwnerName: dto.OwnerName,
		Phone:     kernel.Phone(dto.Phone),
		ShopName:  dto.ShopName,
		Location:  shop.Location(dto.Location),
		Type:      shop.Type(dto.ShopType),
		ImageURL:  dto.ImageURL,
	}, policy, dto.Verified, dto.Active, dto.IsOpen)
}

// PolicyFromColumns rebuilds a delivery policy from its three stored amounts. The read
// side uses it too.
func PolicyFromColumns(fee, minimum decimal.Decimal, freeAbove *decimal.Decimal) (shop.DeliveryPolicy, error) {
	feeMoney, err := kernel.NewMoney(fee)
	if err != nil {
		return shop.DeliveryPolicy{}, err
	}
	minMoney, err := kernel.NewMoney(minimum)
	if err != nil {
		return shop.DeliveryPolicy{}, err
	}

	var threshold *kernel.Money
	if freeAbove != nil {
		m, thresholdErr := kernel.NewMoney(*freeAbove)
		if thresholdErr != nil {
			return shop.DeliveryPolicy{}, thresholdErr
		}
		threshold = &m
	}
	return shop.NewDeliveryPolicy(feeMoney, minMoney, threshold)
}
