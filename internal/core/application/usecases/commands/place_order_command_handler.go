package commands

import (
	"context"
	"time"

	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/services"
)

type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	checkout   services.Checkout
}

func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory, checkout services.Checkout) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		checkout:   checkout,
	}
}

// Handle revalidates the cart against the shop's live menu and persists a pending
// order. Nothing is written unless every check passes.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shop, err := uow.ShopRepository().Get(ctx, cmd.ShopID())
	if err != nil {
		return err
	}

	items, err := uow.MenuRepository().GetMany(ctx, cmd.MenuItemIDs())
	if err != nil {
		return err
	}

	quote, err := h.checkout.Prepare(shop, cmd.Lines(), items)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Student().ID(),
		shop.ID(),
		quote.Lines,
		quote.Bill,
		cmd.DeliveryInstructions(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
