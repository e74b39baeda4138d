package http

import (
	"errors"
	"strings"

	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toKernelUUID(name string, id uuid.UUID) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return converted, nil
}

func toCartLines(items []CartLine) ([]services.CartLine, error) {
	lines := make([]services.CartLine, 0, len(items))
	var problems []error
	for _, item := range items {
		id, err := toKernelUUID("menuItemId", item.MenuItemID)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		lines = append(lines, services.CartLine{MenuItemID: id, Quantity: item.Quantity})
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return lines, nil
}

func optionalMoney(amount *decimal.Decimal) (kernel.Money, error) {
	if amount == nil {
		return kernel.ZeroMoney(), nil
	}
	return kernel.NewMoney(*amount)
}

func (f DeliveryPolicyFields) toPolicy() (shop.DeliveryPolicy, error) {
	fee, feeErr := optionalMoney(f.DeliveryFee)
	minimum, minimumErr := optionalMoney(f.MinimumOrderAmount)
	if err := errors.Join(feeErr, minimumErr); err != nil {
		return shop.DeliveryPolicy{}, err
	}

	var threshold *kernel.Money
	if f.FreeDeliveryAbove != nil {
		m, err := kernel.NewMoney(*f.FreeDeliveryAbove)
		if err != nil {
			return shop.DeliveryPolicy{}, err
		}
		threshold = &m
	}
	return shop.NewDeliveryPolicy(fee, minimum, threshold)
}

func (r MenuItemRequest) toDetails() (menu.Details, error) {
	price, err := kernel.NewMoney(r.Price)
	if err != nil {
		return menu.Details{}, err
	}
	return menu.Details{
		Name:               strings.TrimSpace(r.Name),
		Description:        strings.TrimSpace(r.Description),
		Price:              price,
		Category:           menu.Category(r.Category),
		Vegetarian:         r.IsVegetarian,
		PreparationMinutes: r.PreparationTime,
	}, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func toShopSummary(s queries.ShopSummaryResponse) ShopSummary {
	summary := ShopSummary{
		ID:                 s.ID.Bytes(),
		ShopName:           s.ShopName,
		Location:           string(s.Location),
		ShopType:           string(s.Type),
		ImageURL:           s.ImageURL,
		IsOpen:             s.IsOpen,
		DeliveryFee:        money(s.DeliveryFee),
		MinimumOrderAmount: money(s.MinimumOrder),
	}
	if s.FreeDeliveryAbove != nil {
		threshold := money(*s.FreeDeliveryAbove)
		summary.FreeDeliveryAbove = &threshold
	}
	return summary
}

func toMenuItem(id, shopID kernel.UUID, d menu.Details, available bool) MenuItem {
	return MenuItem{
		ID:              id.Bytes(),
		ShopID:          shopID.Bytes(),
		Name:            d.Name,
		Description:     d.Description,
		Price:           money(d.Price.Amount()),
		Category:        string(d.Category),
		IsVegetarian:    d.Vegetarian,
		PreparationTime: d.PreparationMinutes,
		IsAvailable:     available,
	}
}

func toMenuItems(items []queries.MenuItemResponse) []MenuItem {
	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			ID:              item.ID.Bytes(),
			ShopID:          item.ShopID.Bytes(),
			Name:            item.Name,
			Description:     item.Description,
			Price:           money(item.Price),
			Category:        string(item.Category),
			IsVegetarian:    item.Vegetarian,
			PreparationTime: item.PreparationMinutes,
			IsAvailable:     item.Available,
		}
	}
	return response
}

func toOrderLines(lines []queries.OrderLineResponse) []OrderLine {
	response := make([]OrderLine, len(lines))
	for i, l := range lines {
		response[i] = OrderLine{
			MenuItemID: l.MenuItemID.Bytes(),
			Name:       l.Name,
			Quantity:   l.Quantity,
			Price:      money(l.UnitPrice),
			Amount:     money(l.Amount),
		}
	}
	return response
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:                   o.ID.Bytes(),
		StudentID:            o.StudentID.Bytes(),
		StudentName:          o.StudentName,
		StudentHostel:        o.StudentHostel,
		StudentPhone:         o.StudentPhone,
		ShopID:               o.ShopID.Bytes(),
		ShopName:             o.ShopName,
		Items:                toOrderLines(o.Lines),
		Subtotal:             money(o.Subtotal),
		DeliveryFee:          money(o.DeliveryFee),
		TotalAmount:          money(o.Total),
		PaymentMethod:        o.PaymentMethod,
		Status:               o.Status.String(),
		DeliveryInstructions: o.DeliveryInstructions,
		RejectionReason:      o.RejectionReason,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
