package ports

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
)

type ShopRepository interface {
	Add(ctx context.Context, aggregate *shop.Shop) error

	Update(ctx context.Context, aggregate *shop.Shop) error

	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)
}

type StudentRepository interface {
	Add(ctx context.Context, aggregate *student.Student) error

	Update(ctx context.Context, aggregate *student.Student) error

	Get(ctx context.Context, id kernel.UUID) (*student.Student, error)

	ExistsByRollNumber(ctx context.Context, rollNumber student.RollNumber) (bool, error)
}

// Credential is the login record of a principal. The hash is opaque to the core.
type Credential struct {
	PrincipalID  kernel.UUID
	Role         kernel.Role
	Email        kernel.Email
	PasswordHash string
}

type CredentialRepository interface {
	Add(ctx context.Context, credential Credential) error

	// GetByEmail returns errs.ObjectNotFoundError when no principal of role uses email.
	GetByEmail(ctx context.Context, email kernel.Email, role kernel.Role) (Credential, error)
}
