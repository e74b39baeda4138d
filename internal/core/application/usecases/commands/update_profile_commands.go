package commands

import (
	"errors"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/pkg/errs"
	"campusfood/internal/pkg/guard"
)

var (
	ErrUpdateStudentProfileCommandIsNotConstructed = errors.New(
		"UpdateStudentProfileCommand must be created via NewUpdateStudentProfileCommand constructor",
	)
	ErrUpdateShopProfileCommandIsNotConstructed = errors.New(
		"UpdateShopProfileCommand must be created via NewUpdateShopProfileCommand constructor",
	)
)

func requireRole(actor kernel.Actor, role kernel.Role, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != role {
		return errs.NewForbiddenError(action, role.String())
	}
	return nil
}

type UpdateStudentProfileCommand struct {
	actor   kernel.Actor
	profile student.Profile

	guard guard.ConstructorGuard
}

func NewUpdateStudentProfileCommand(actor kernel.Actor, profile student.Profile) (UpdateStudentProfileCommand, error) {
	if err := requireRole(actor, kernel.RoleStudent, "editing a student profile"); err != nil {
		return UpdateStudentProfileCommand{}, err
	}
	return UpdateStudentProfileCommand{actor: actor, profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateStudentProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStudentProfileCommandIsNotConstructed)
}

func (c UpdateStudentProfileCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateStudentProfileCommand) Profile() student.Profile {
	return c.profile
}

type UpdateShopProfileCommand struct {
	actor   kernel.Actor
	profile shop.Profile
	open    bool
	policy  shop.DeliveryPolicy

	guard guard.ConstructorGuard
}

func NewUpdateShopProfileCommand(
	actor kernel.Actor,
	profile shop.Profile,
	open bool,
	policy shop.DeliveryPolicy,
) (UpdateShopProfileCommand, error) {
	if err := requireRole(actor, kernel.RoleShop, "editing a shop profile"); err != nil {
		return UpdateShopProfileCommand{}, err
	}
	return UpdateShopProfileCommand{
		actor:   actor,
		profile: profile,
		open:    open,
		policy:  policy,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShopProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShopProfileCommandIsNotConstructed)
}

func (c UpdateShopProfileCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateShopProfileCommand) Profile() shop.Profile {
	return c.profile
}

func (c UpdateShopProfileCommand) Open() bool {
	return c.open
}

func (c UpdateShopProfileCommand) DeliveryPolicy() shop.DeliveryPolicy {
	return c.policy
}
