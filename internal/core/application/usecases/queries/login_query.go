package queries

import (
	"context"
	"errors"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New("LoginQuery must be created via NewLoginQuery constructor")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type LoginQuery struct {
	email    kernel.Email
	password string
	role     kernel.Role
	guard    guard.ConstructorGuard
}

func NewLoginQuery(email, password string, role kernel.Role) (LoginQuery, error) {
	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	addr, emailErr := kernel.NewEmail(email)
	if err := errors.Join(emailErr, passwordErr, role.Validate()); err != nil {
		return LoginQuery{}, err
	}
	return LoginQuery{email: addr, password: password, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

type LoginResponse struct {
	Token     string
	ExpiresAt time.Time
	ID        kernel.UUID
	Role      kernel.Role
}

type LoginQueryHandler struct {
	credentials ports.CredentialRepository
	hasher      ports.PasswordHasher
	tokens      ports.TokenIssuer
}

func NewLoginQueryHandler(
	credentials ports.CredentialRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) LoginQueryHandler {
	return LoginQueryHandler{credentials: credentials, hasher: hasher, tokens: tokens}
}

func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginResponse{}, err
	}

	cred, err := h.credentials.GetByEmail(ctx, query.email, query.role)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResponse{}, ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}
	if err = h.hasher.Compare(cred.PasswordHash, query.password); err != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}

	actor, err := kernel.NewActor(cred.PrincipalID, cred.Role)
	if err != nil {
		return LoginResponse{}, err
	}
	token, expiresAt, err := h.tokens.Issue(actor)
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{Token: token, ExpiresAt: expiresAt, ID: actor.ID(), Role: actor.Role()}, nil
}
