package commands

import (
	"context"
	"errors"
	"log/slog"

	"campusfood/internal/core/ports"
)

type UpdateStudentProfileCommandHandler struct {
	uowFactory StudentUoWFactory
}

func NewUpdateStudentProfileCommandHandler(uowFactory StudentUoWFactory) UpdateStudentProfileCommandHandler {
	return UpdateStudentProfileCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateStudentProfileCommandHandler) Handle(ctx context.Context, cmd UpdateStudentProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StudentRepository()
	s, err := repo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = s.UpdateProfile(cmd.Profile()); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateShopProfileCommandHandler struct {
	uowFactory ShopUoWFactory
	cache      ports.Cache
	logger     *slog.Logger
}

func NewUpdateShopProfileCommandHandler(
	uowFactory ShopUoWFactory,
	cache ports.Cache,
	logger *slog.Logger,
) UpdateShopProfileCommandHandler {
	return UpdateShopProfileCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "update_shop_profile_command_handler"),
	}
}

// Handle replaces profile, open flag and delivery policy together. Policy changes
// apply to orders placed afterwards only.
func (h *UpdateShopProfileCommandHandler) Handle(ctx context.Context, cmd UpdateShopProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShopRepository()
	s, err := repo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		s.UpdateProfile(cmd.Profile()),
		s.SetDeliveryPolicy(cmd.DeliveryPolicy()),
	); err != nil {
		return err
	}
	s.SetOpen(cmd.Open())

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidateShopMenu(ctx, h.cache, h.logger, s.ID())
	return nil
}
