package queries

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order to its student or its shop. Anyone else gets
// errs.ForbiddenError; an unknown id gets errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := readOrders(ctx, h.db, selectOrders+` WHERE o.id = ?`, query.OrderID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	o := orders[0]
	actor := query.Actor()
	switch {
	case actor.Role() == kernel.RoleStudent && o.StudentID.IsEqual(actor.ID()):
	case actor.Role() == kernel.RoleShop && o.ShopID.IsEqual(actor.ID()):
	default:
		return OrderResponse{}, errs.NewForbiddenError("viewing another party's order", "")
	}
	return o, nil
}
