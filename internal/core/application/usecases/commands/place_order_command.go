package commands

import (
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	student              kernel.Actor
	shopID               kernel.UUID
	lines                []services.CartLine
	deliveryInstructions string

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID kernel.UUID,
	student kernel.Actor,
	shopID kernel.UUID,
	lines []services.CartLine,
	deliveryInstructions string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		deliveryInstructions: deliveryInstructions,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStudent(student),
		cmd.setShopID(shopID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Student() kernel.Actor {
	return c.student
}

func (c PlaceOrderCommand) ShopID() kernel.UUID {
	return c.shopID
}

func (c PlaceOrderCommand) Lines() []services.CartLine {
	return append([]services.CartLine(nil), c.lines...)
}

func (c PlaceOrderCommand) DeliveryInstructions() string {
	return c.deliveryInstructions
}

// MenuItemIDs lists the distinct items in the cart.
func (c PlaceOrderCommand) MenuItemIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		if _, ok := seen[l.MenuItemID]; ok {
			continue
		}
		seen[l.MenuItemID] = struct{}{}
		ids = append(ids, l.MenuItemID)
	}
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setStudent(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsStudent() {
		return errs.NewForbiddenError("placing an order", kernel.RoleStudent.String())
	}
	c.student = actor
	return nil
}

func (c *PlaceOrderCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	c.shopID = shopID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return order.ErrEmptyOrder
	}
	for _, l := range lines {
		if err := l.MenuItemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
		}
	}
	c.lines = append([]services.CartLine(nil), lines...)
	return nil
}
