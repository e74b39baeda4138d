package ports

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
)

type MenuRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error

	Update(ctx context.Context, item *menu.MenuItem) error

	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetMany returns the items that exist among ids. Unknown ids are simply absent.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.MenuItem, error)
}
