package kernel

import (
	"errors"
	"fmt"

	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

// Role is the kind of principal the authentication service vouches for.
type Role int

const (
	RoleUnknown Role = iota
	RoleStudent
	RoleShop
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleShop:
		return "shop"
	case RoleUnknown:
	}
	return "unknown"
}

func (r Role) Validate() error {
	if r != RoleStudent && r != RoleShop {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// RoleFromString accepts "student", "shop" and the legacy "shopkeeper".
func RoleFromString(s string) (Role, error) {
	switch s {
	case "student":
		return RoleStudent, nil
	case "shop", "shopkeeper":
		return RoleShop, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Actor is the authenticated principal behind a request. The core trusts it as given.
type Actor struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsStudent() bool {
	return a.role == RoleStudent
}

func (a Actor) IsShop() bool {
	return a.role == RoleShop
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.role, a.id)
}
