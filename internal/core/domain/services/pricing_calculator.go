package services

import (
	"fmt"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/shop"

	"github.com/shopspring/decimal"
)

// PriceLine is one (unit price, quantity) pair. Raw decimals are accepted so that a
// malformed cart surfaces as InvalidLineItem rather than failing earlier.
type PriceLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type PricingCalculator struct{}

func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Price computes subtotal and delivery fee.
//
//	subtotal    = Σ price × quantity
//	deliveryFee = 0          if the shop charges no fee
//	            = 0          if a free-delivery threshold is set and subtotal ≥ threshold
//	            = shop fee   otherwise
func (PricingCalculator) Price(lines []PriceLine, policy shop.DeliveryPolicy) (order.Bill, error) {
	if len(lines) == 0 {
		return order.Bill{}, order.ErrEmptyOrder
	}
	if err := policy.Validate(); err != nil {
		return order.Bill{}, err
	}

	sum := decimal.Zero
	for i, l := range lines {
		if l.Quantity < 0 {
			return order.Bill{}, order.NewInvalidLineItemError(i, fmt.Sprintf("quantity %d is negative", l.Quantity))
		}
		if l.UnitPrice.IsNegative() {
			return order.Bill{}, order.NewInvalidLineItemError(i, fmt.Sprintf("price %s is negative", l.UnitPrice))
		}
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	subtotal, err := kernel.NewMoney(sum)
	if err != nil {
		return order.Bill{}, err
	}

	fee := policy.Fee()
	if threshold, ok := policy.FreeDeliveryAbove(); ok && subtotal.GreaterThanOrEqual(threshold) {
		fee = kernel.ZeroMoney()
	}

	return order.NewBill(subtotal, fee)
}

// CheckMinimumOrder is the placement-time admission rule. A zero minimum admits
// everything and a subtotal equal to the minimum passes.
func (PricingCalculator) CheckMinimumOrder(subtotal kernel.Money, policy shop.DeliveryPolicy) error {
	minimum := policy.MinimumOrder()
	if !minimum.IsZero() && subtotal.LessThan(minimum) {
		return order.NewBelowMinimumOrderError(subtotal, minimum)
	}
	return nil
}
