package commands

import (
	"context"
	"errors"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
)

// maxStatusUpdateAttempts bounds how often a status change is retried after losing a
// version race. Each retry reloads the order, so a duplicate request ends in
// InvalidTransition rather than a second success.
const maxStatusUpdateAttempts = 3

type orderUpdater struct {
	uowFactory OrderUoWFactory
}

func (u orderUpdater) update(
	ctx context.Context,
	actor kernel.Actor,
	orderID kernel.UUID,
	change func(o *order.Order, now time.Time) error,
) error {
	var err error
	for range maxStatusUpdateAttempts {
		err = u.tryUpdate(ctx, actor, orderID, change)
		if !errors.Is(err, errs.ErrVersionConflict) {
			return err
		}
	}
	return err
}

func (u orderUpdater) tryUpdate(
	ctx context.Context,
	actor kernel.Actor,
	orderID kernel.UUID,
	change func(o *order.Order, now time.Time) error,
) error {
	uow := u.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	// Orders of other students and shops are reported as missing.
	if !o.IsVisibleTo(actor) {
		return errs.NewObjectNotFoundError("orderId", orderID.String())
	}

	if err = change(o, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
