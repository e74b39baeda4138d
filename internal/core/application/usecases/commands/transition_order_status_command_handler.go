package commands

import (
	"context"
	"time"

	"campusfood/internal/core/domain/model/order"
)

type TransitionOrderStatusCommandHandler struct {
	updater orderUpdater
}

func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{updater: orderUpdater{uowFactory: uowFactory}}
}

// Handle fails with NotFound when the actor cannot see the order, InvalidTransition when
// the table has no edge from the current status and Forbidden when the edge belongs to
// the other role.
func (h *TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.updater.update(ctx, cmd.Actor(), cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.TransitionTo(cmd.Actor(), cmd.Target(), cmd.RejectionReason(), now)
	})
}
