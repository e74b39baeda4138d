package services

import (
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/shop"
)

// CartLine is a line as the student submits it.
type CartLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// Quote is a validated, priced cart.
type Quote struct {
	Lines []order.Line
	Bill  order.Bill
	// MinimumOrder is the shop's admission threshold; zero means none.
	MinimumOrder      kernel.Money
	MeetsMinimumOrder bool
}

type Checkout struct {
	pricing PricingCalculator
}

func NewCheckout(pricing PricingCalculator) Checkout {
	return Checkout{pricing: pricing}
}

// Prepare checks every cart line against the live menu, in cart order, and prices the
// result. items holds whatever the menu lookup found; a missing key means the item
// does not exist. Checks run in this order: shop accepting orders, item availability,
// item ownership, pricing, line validity, minimum order.
func (c Checkout) Prepare(s *shop.Shop, cart []CartLine, items map[kernel.UUID]*menu.MenuItem) (Quote, error) {
	q, err := c.Preview(s, cart, items)
	if err != nil {
		return Quote{}, err
	}
	if err = c.pricing.CheckMinimumOrder(q.Bill.Subtotal(), s.DeliveryPolicy()); err != nil {
		return Quote{}, err
	}
	return q, nil
}

// Preview runs the same checks as Prepare but reports the minimum-order outcome
// instead of failing on it, for showing a running cart total.
func (c Checkout) Preview(s *shop.Shop, cart []CartLine, items map[kernel.UUID]*menu.MenuItem) (Quote, error) {
	if err := s.Validate(); err != nil {
		return Quote{}, err
	}
	if len(cart) == 0 {
		return Quote{}, order.ErrEmptyOrder
	}
	if err := s.EnsureAcceptingOrders(); err != nil {
		return Quote{}, err
	}

	priceLines := make([]PriceLine, 0, len(cart))
	for _, cl := range cart {
		item, ok := items[cl.MenuItemID]
		if !ok || item == nil || !item.IsAvailable() {
			return Quote{}, order.NewItemUnavailableError(cl.MenuItemID)
		}
		if !item.BelongsTo(s.ID()) {
			return Quote{}, order.NewCrossShopOrderError(item.ID(), item.ShopID(), s.ID())
		}
		priceLines = append(priceLines, PriceLine{UnitPrice: item.Price().Amount(), Quantity: cl.Quantity})
	}

	bill, err := c.pricing.Price(priceLines, s.DeliveryPolicy())
	if err != nil {
		return Quote{}, err
	}

	lines := make([]order.Line, 0, len(cart))
	for _, cl := range cart {
		item := items[cl.MenuItemID]
		line, err := order.NewLine(item.ID(), item.Name(), cl.Quantity, item.Price())
		if err != nil {
			return Quote{}, err
		}
		lines = append(lines, line)
	}

	return Quote{
		Lines:             lines,
		Bill:              bill,
		MinimumOrder:      s.DeliveryPolicy().MinimumOrder(),
		MeetsMinimumOrder: c.pricing.CheckMinimumOrder(bill.Subtotal(), s.DeliveryPolicy()) == nil,
	}, nil
}
