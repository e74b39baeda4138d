package commands

import (
	"context"
	"time"

	"campusfood/internal/core/domain/model/order"
)

type CancelOrderCommandHandler struct {
	updater orderUpdater
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{updater: orderUpdater{uowFactory: uowFactory}}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.updater.update(ctx, cmd.Actor(), cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Cancel(cmd.Actor(), now)
	})
}
