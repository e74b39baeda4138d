package commands

import (
	"context"
	"log/slog"

	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/ports"
	"campusfood/internal/pkg/errs"
)

// MenuItemCommandHandler serves add, update and delete for a shop's own menu. After a
// successful commit the shop's cached public menu is dropped.
type MenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	cache      ports.Cache
	logger     *slog.Logger
}

func NewMenuItemCommandHandler(uowFactory MenuUoWFactory, cache ports.Cache, logger *slog.Logger) MenuItemCommandHandler {
	return MenuItemCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "menu_item_command_handler"),
	}
}

func (h *MenuItemCommandHandler) HandleAdd(ctx context.Context, cmd AddMenuItemCommand) error {
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

	// The shop must still exist; a token can outlive its account.
	if _, err := uow.ShopRepository().Get(ctx, cmd.Shop().ID()); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(cmd.ItemID(), cmd.Shop().ID(), cmd.Details())
	if err != nil {
		return err
	}

	if err = uow.MenuRepository().Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidateShopMenu(ctx, h.cache, h.logger, cmd.Shop().ID())
	return nil
}

func (h *MenuItemCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.withOwnItem(ctx, cmd.shopItemRef, func(repo ports.MenuRepository, item *menu.MenuItem) error {
		if err := item.Update(cmd.Details()); err != nil {
			return err
		}
		item.SetAvailable(cmd.Available())
		return repo.Update(ctx, item)
	})
}

// HandleDelete removes the item for good. Orders keep their own copy of its name and price.
func (h *MenuItemCommandHandler) HandleDelete(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.withOwnItem(ctx, cmd.shopItemRef, func(repo ports.MenuRepository, item *menu.MenuItem) error {
		return repo.Delete(ctx, item.ID())
	})
}

func (h *MenuItemCommandHandler) withOwnItem(
	ctx context.Context,
	ref shopItemRef,
	change func(repo ports.MenuRepository, item *menu.MenuItem) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuRepository()
	item, err := repo.Get(ctx, ref.ItemID())
	if err != nil {
		return err
	}
	// Another shop's item is reported as missing.
	if !item.BelongsTo(ref.Shop().ID()) {
		return errs.NewObjectNotFoundError("menuItemId", ref.ItemID().String())
	}

	if err = change(repo, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidateShopMenu(ctx, h.cache, h.logger, ref.Shop().ID())
	return nil
}
