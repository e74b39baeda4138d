package commands

import (
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// shopItemRef is the shared part of every menu command: which shop acts on which item.
type shopItemRef struct {
	shop   kernel.Actor
	itemID kernel.UUID
}

func newShopItemRef(shop kernel.Actor, itemID kernel.UUID, action string) (shopItemRef, error) {
	var problems []error
	if err := shop.Validate(); err != nil {
		problems = append(problems, err)
	} else if !shop.IsShop() {
		problems = append(problems, errs.NewForbiddenError(action, kernel.RoleShop.String()))
	}
	if err := itemID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return shopItemRef{}, err
	}
	return shopItemRef{shop: shop, itemID: itemID}, nil
}

func (r shopItemRef) Shop() kernel.Actor {
	return r.shop
}

func (r shopItemRef) ItemID() kernel.UUID {
	return r.itemID
}

type AddMenuItemCommand struct {
	shopItemRef
	details menu.Details

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(shop kernel.Actor, itemID kernel.UUID, details menu.Details) (AddMenuItemCommand, error) {
	ref, err := newShopItemRef(shop, itemID, "adding a menu item")
	if err != nil {
		return AddMenuItemCommand{}, err
	}
	return AddMenuItemCommand{shopItemRef: ref, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) Details() menu.Details {
	return c.details
}

type UpdateMenuItemCommand struct {
	shopItemRef
	details   menu.Details
	available bool

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	shop kernel.Actor,
	itemID kernel.UUID,
	details menu.Details,
	available bool,
) (UpdateMenuItemCommand, error) {
	ref, err := newShopItemRef(shop, itemID, "editing a menu item")
	if err != nil {
		return UpdateMenuItemCommand{}, err
	}
	return UpdateMenuItemCommand{
		shopItemRef: ref,
		details:     details,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Details() menu.Details {
	return c.details
}

func (c UpdateMenuItemCommand) Available() bool {
	return c.available
}

type DeleteMenuItemCommand struct {
	shopItemRef

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(shop kernel.Actor, itemID kernel.UUID) (DeleteMenuItemCommand, error) {
	ref, err := newShopItemRef(shop, itemID, "deleting a menu item")
	if err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{shopItemRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}
