package postgres

import (
	"campusfood/internal/adapters/out/postgres/credentialrepo"
	"campusfood/internal/adapters/out/postgres/menurepo"
	"campusfood/internal/adapters/out/postgres/orderrepo"
	"campusfood/internal/adapters/out/postgres/outboxrepo"
	"campusfood/internal/adapters/out/postgres/shoprepo"
	"campusfood/internal/adapters/out/postgres/studentrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&shoprepo.ShopDTO{},
		&studentrepo.StudentDTO{},
		&credentialrepo.CredentialDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&outboxrepo.MessageDTO{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
