package queries

import (
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the actor's own orders: placed by a student or received by a shop.
type ListOrdersQuery struct {
	actor  kernel.Actor
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery lists every order of actor. Pass order.Unknown for no status filter.
func NewListOrdersQuery(actor kernel.Actor, status order.Status) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// Status is order.Unknown when not filtering.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}
