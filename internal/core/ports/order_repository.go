package ports

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
)

type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes status, rejection reason and updatedAt only if the stored version
	// still equals aggregate.Version(), and bumps the stored version. A lost race
	// returns errs.VersionConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
