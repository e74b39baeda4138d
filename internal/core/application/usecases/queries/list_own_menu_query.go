package queries

import (
	"context"
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListOwnMenuQueryIsNotConstructed = errors.New(
	"ListOwnMenuQuery must be created via NewListOwnMenuQuery constructor",
)

// ListOwnMenuQuery is the shop's menu editor view, unavailable items included.
type ListOwnMenuQuery struct {
	shop kernel.Actor

	guard guard.ConstructorGuard
}

func NewListOwnMenuQuery(shop kernel.Actor) (ListOwnMenuQuery, error) {
	if err := shop.Validate(); err != nil {
		return ListOwnMenuQuery{}, err
	}
	if shop.Role() != kernel.RoleShop {
		return ListOwnMenuQuery{}, errs.NewForbiddenError("listing a shop menu for editing", kernel.RoleShop.String())
	}
	return ListOwnMenuQuery{shop: shop, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOwnMenuQuery) Validate() error {
	return q.guard.Validate(ErrListOwnMenuQueryIsNotConstructed)
}

func (q ListOwnMenuQuery) Shop() kernel.Actor {
	return q.shop
}

type ListOwnMenuQueryHandler struct {
	db *gorm.DB
}

func NewListOwnMenuQueryHandler(db *gorm.DB) ListOwnMenuQueryHandler {
	return ListOwnMenuQueryHandler{db: db}
}

// Handle lists every item of the shop by category, then name.
func (h ListOwnMenuQueryHandler) Handle(ctx context.Context, query ListOwnMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readMenuItems(ctx, h.db,
		selectMenuItems+` WHERE shop_id = ? ORDER BY category, name, id`,
		query.Shop().ID().Bytes())
}
