package commands

import (
	"context"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"
)

type RegisterCommandHandler struct {
	uowFactory   RegistrationUoWFactory
	hasher       ports.PasswordHasher
	campusDomain string
}

func NewRegisterCommandHandler(
	uowFactory RegistrationUoWFactory,
	hasher ports.PasswordHasher,
	campusDomain string,
) RegisterCommandHandler {
	return RegisterCommandHandler{
		uowFactory:   uowFactory,
		hasher:       hasher,
		campusDomain: campusDomain,
	}
}

// HandleStudent registers a student with a campus email and an unused roll number.
func (h *RegisterCommandHandler) HandleStudent(ctx context.Context, cmd RegisterStudentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	email, err := student.CampusEmail(cmd.Email(), h.campusDomain)
	if err != nil {
		return err
	}

	s, err := student.NewStudent(cmd.ID(), email, cmd.RollNumber(), cmd.Profile())
	if err != nil {
		return err
	}

	return h.register(ctx, cmd.credentials, kernel.RoleStudent, func(uow RegistrationUoW) error {
		repo := uow.StudentRepository()
		taken, err := repo.ExistsByRollNumber(ctx, s.RollNumber())
		if err != nil {
			return err
		}
		if taken {
			return errs.NewAlreadyExistsError("rollNumber", string(s.RollNumber()))
		}
		return repo.Add(ctx, s)
	})
}

func (h *RegisterCommandHandler) HandleShop(ctx context.Context, cmd RegisterShopCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := shop.NewShop(cmd.ID(), cmd.Email(), cmd.Profile(), cmd.DeliveryPolicy())
	if err != nil {
		return err
	}

	return h.register(ctx, cmd.credentials, kernel.RoleShop, func(uow RegistrationUoW) error {
		return uow.ShopRepository().Add(ctx, s)
	})
}

// register stores the principal and its credential in one transaction. A taken email
// surfaces from the credential store as errs.AlreadyExistsError.
func (h *RegisterCommandHandler) register(
	ctx context.Context,
	creds credentials,
	role kernel.Role,
	addPrincipal func(uow RegistrationUoW) error,
) error {
	hash, err := h.hasher.Hash(creds.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = addPrincipal(uow); err != nil {
		return err
	}

	if err = uow.CredentialRepository().Add(ctx, ports.Credential{
		PrincipalID:  creds.ID(),
		Role:         role,
		Email:        creds.Email(),
		PasswordHash: hash,
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
