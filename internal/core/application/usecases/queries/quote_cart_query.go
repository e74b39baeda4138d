package queries

import (
	"context"
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrQuoteCartQueryIsNotConstructed = errors.New(
	"QuoteCartQuery must be created via NewQuoteCartQuery constructor",
)

// QuoteCartQuery prices a cart without placing it.
type QuoteCartQuery struct {
	shopID kernel.UUID
	lines  []services.CartLine
	guard  guard.ConstructorGuard
}

func NewQuoteCartQuery(shopID kernel.UUID, lines []services.CartLine) (QuoteCartQuery, error) {
	if err := shopID.Validate(); err != nil {
		return QuoteCartQuery{}, errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	if len(lines) == 0 {
		return QuoteCartQuery{}, order.ErrEmptyOrder
	}
	for _, l := range lines {
		if err := l.MenuItemID.Validate(); err != nil {
			return QuoteCartQuery{}, errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
		}
	}
	return QuoteCartQuery{
		shopID: shopID,
		lines:  append([]services.CartLine(nil), lines...),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteCartQuery) Validate() error {
	return q.guard.Validate(ErrQuoteCartQueryIsNotConstructed)
}

type QuoteResponse struct {
	ShopID            kernel.UUID
	Lines             []OrderLineResponse
	Subtotal          decimal.Decimal
	DeliveryFee       decimal.Decimal
	Total             decimal.Decimal
	MinimumOrder      decimal.Decimal
	MeetsMinimumOrder bool
}

type QuoteCartQueryHandler struct {
	shops    ports.ShopRepository
	menu     ports.MenuRepository
	checkout services.Checkout
}

func NewQuoteCartQueryHandler(
	shops ports.ShopRepository,
	menu ports.MenuRepository,
	checkout services.Checkout,
) QuoteCartQueryHandler {
	return QuoteCartQueryHandler{shops: shops, menu: menu, checkout: checkout}
}

// Handle runs the same checks as placing an order, except that a subtotal under the
// shop's minimum is reported rather than refused.
func (h QuoteCartQueryHandler) Handle(ctx context.Context, query QuoteCartQuery) (QuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteResponse{}, err
	}

	s, err := h.shops.Get(ctx, query.shopID)
	if err != nil {
		return QuoteResponse{}, err
	}

	ids := make([]kernel.UUID, 0, len(query.lines))
	for _, l := range query.lines {
		ids = append(ids, l.MenuItemID)
	}
	items, err := h.menu.GetMany(ctx, ids)
	if err != nil {
		return QuoteResponse{}, err
	}

	quote, err := h.checkout.Preview(s, query.lines, items)
	if err != nil {
		return QuoteResponse{}, err
	}

	resp := QuoteResponse{
		ShopID:            query.shopID,
		Lines:             make([]OrderLineResponse, 0, len(quote.Lines)),
		Subtotal:          quote.Bill.Subtotal().Amount(),
		DeliveryFee:       quote.Bill.DeliveryFee().Amount(),
		Total:             quote.Bill.Total().Amount(),
		MinimumOrder:      quote.MinimumOrder.Amount(),
		MeetsMinimumOrder: quote.MeetsMinimumOrder,
	}
	for _, l := range quote.Lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			MenuItemID: l.MenuItemID(),
			Name:       l.Name(),
			Quantity:   l.Quantity(),
			UnitPrice:  l.UnitPrice().Amount(),
			Amount:     l.Amount().Amount(),
		})
	}
	return resp, nil
}
