package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repositories to one transaction. Domain events raised by orders
// tracked during the transaction are written to the outbox on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	MenuRepository() MenuRepository

	ShopRepository() ShopRepository

	StudentRepository() StudentRepository

	CredentialRepository() CredentialRepository

	OutboxRepository() OutboxRepository
}
