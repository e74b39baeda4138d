package queries

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the actor's orders newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	sql := selectOrders + ` WHERE o.student_id = ?`
	if actor.Role() == kernel.RoleShop {
		sql = selectOrders + ` WHERE o.shop_id = ?`
	}
	args := []any{actor.ID().Bytes()}

	if query.Status() != order.Unknown {
		sql += ` AND o.status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY o.created_at DESC, o.id`

	return readOrders(ctx, h.db, sql, args...)
}
