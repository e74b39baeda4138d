// Package commands contains the operations that change state. Every handler follows
// the same shape: validate the command, open a unit of work, load aggregates, let them
// decide, persist, commit.
package commands

import (
	"context"

	"campusfood/internal/core/ports"
)

// Unit of work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	StudentRepoFactory interface {
		StudentRepository() ports.StudentRepository
	}

	CredentialRepoFactory interface {
		CredentialRepository() ports.CredentialRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW serves status changes, which touch nothing but the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW reads the shop and its menu and writes the new order in one
	// transaction.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		ShopRepoFactory
		MenuRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
		ShopRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	StudentUoW interface {
		TxManager
		StudentRepoFactory
	}

	StudentUoWFactory interface {
		Create() StudentUoW
	}

	ShopUoW interface {
		TxManager
		ShopRepoFactory
	}

	ShopUoWFactory interface {
		Create() ShopUoW
	}

	// RegistrationUoW creates a principal and its credential together.
	RegistrationUoW interface {
		TxManager
		StudentRepoFactory
		ShopRepoFactory
		CredentialRepoFactory
	}

	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
