// Package orderrepo persists order aggregates and their frozen line snapshots.
package orderrepo

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Lines live in order_lines.
type OrderDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StudentID            uuid.UUID       `gorm:"type:uuid;index;not null"`
	ShopID               uuid.UUID       `gorm:"type:uuid;index;not null"`
	Lines                []OrderLineDTO  `gorm:"foreignKey:OrderID"`
	Subtotal             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryFee          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total                decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	PaymentMethod        string          `gorm:"size:16;not null"`
	Status               string          `gorm:"size:16;index;not null"`
	DeliveryInstructions string          `gorm:"size:200"`
	RejectionReason      string          `gorm:"size:200"`
	CreatedAt            time.Time       `gorm:"index;autoCreateTime:false"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime:false"`
	Version              int             `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO keeps the item name and unit price as they were at placement. There is
// no foreign key to menu_items: a deleted item must not take its order lines along.
type OrderLineDTO struct {
	ID         uint            `gorm:"primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Position   int             `gorm:"not null"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Name       string          `gorm:"size:120;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:    o.ID().Bytes(),
			Position:   i,
			MenuItemID: l.MenuItemID().Bytes(),
			Name:       l.Name(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice().Amount(),
		})
	}

	bill := o.Bill()
	return OrderDTO{
		ID:                   o.ID().Bytes(),
		StudentID:            o.StudentID().Bytes(),
		ShopID:               o.ShopID().Bytes(),
		Lines:                lines,
		Subtotal:             bill.Subtotal().Amount(),
		DeliveryFee:          bill.DeliveryFee().Amount(),
		Total:                bill.Total().Amount(),
		PaymentMethod:        o.PaymentMethod(),
		Status:               o.Status().String(),
		DeliveryInstructions: o.DeliveryInstructions(),
		RejectionReason:      o.RejectionReason(),
		CreatedAt:            o.CreatedAt(),
		UpdatedAt:            o.UpdatedAt(),
		Version:              o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	studentID, err := kernel.UUIDFromBytes(dto.StudentID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	bill, err := order.NewBill(subtotal, fee)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                   id,
		StudentID:            studentID,
		ShopID:               shopID,
		Lines:                lines,
		Bill:                 bill,
		Status:               status,
		DeliveryInstructions: dto.DeliveryInstructions,
		RejectionReason:      dto.RejectionReason,
		CreatedAt:            dto.CreatedAt.UTC(),
		UpdatedAt:            dto.UpdatedAt.UTC(),
		Version:              dto.Version,
	})
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	itemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Line{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}
	return order.NewLine(itemID, dto.Name, dto.Quantity, price)
}
