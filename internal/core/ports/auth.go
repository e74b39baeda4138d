package ports

import (
	"time"

	"campusfood/internal/core/domain/model/kernel"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash.
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(actor kernel.Actor) (token string, expiresAt time.Time, err error)
	Verify(token string) (kernel.Actor, error)
}
