package order

import (
	"errors"
	"fmt"

	"campusfood/internal/core/domain/model/kernel"
)

var (
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrOrderNotCancellable = errors.New("order is not cancellable")
	ErrEmptyOrder          = errors.New("order has no lines")
	ErrInvalidLineItem     = errors.New("invalid line item")
	ErrItemUnavailable     = errors.New("menu item is unavailable")
	ErrCrossShopOrder      = errors.New("order spans more than one shop")
	ErrBelowMinimumOrder   = errors.New("subtotal is below the shop's minimum order amount")
)

// InvalidTransitionError names the current and the requested status so that the caller
// can refresh and retry with a legal target.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type NotCancellableError struct {
	Status Status
}

func NewNotCancellableError(status Status) *NotCancellableError {
	return &NotCancellableError{Status: status}
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("%s: order is %s", ErrOrderNotCancellable, e.Status)
}

func (e *NotCancellableError) Unwrap() error {
	return ErrOrderNotCancellable
}

// InvalidLineItemError points at the offending cart line by index.
type InvalidLineItemError struct {
	Index  int
	Reason string
}

func NewInvalidLineItemError(index int, reason string) *InvalidLineItemError {
	return &InvalidLineItemError{Index: index, Reason: reason}
}

func (e *InvalidLineItemError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrInvalidLineItem, e.Index, e.Reason)
}

func (e *InvalidLineItemError) Unwrap() error {
	return ErrInvalidLineItem
}

type ItemUnavailableError struct {
	ItemID kernel.UUID
}

func NewItemUnavailableError(itemID kernel.UUID) *ItemUnavailableError {
	return &ItemUnavailableError{ItemID: itemID}
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrItemUnavailable, e.ItemID)
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrItemUnavailable
}

type CrossShopOrderError struct {
	ItemID     kernel.UUID
	ItemShopID kernel.UUID
	ShopID     kernel.UUID
}

func NewCrossShopOrderError(itemID, itemShopID, shopID kernel.UUID) *CrossShopOrderError {
	return &CrossShopOrderError{ItemID: itemID, ItemShopID: itemShopID, ShopID: shopID}
}

func (e *CrossShopOrderError) Error() string {
	return fmt.Sprintf("%s: item %s belongs to shop %s, not %s", ErrCrossShopOrder, e.ItemID, e.ItemShopID, e.ShopID)
}

func (e *CrossShopOrderError) Unwrap() error {
	return ErrCrossShopOrder
}

type BelowMinimumOrderError struct {
	Subtotal kernel.Money
	Minimum  kernel.Money
}

func NewBelowMinimumOrderError(subtotal, minimum kernel.Money) *BelowMinimumOrderError {
	return &BelowMinimumOrderError{Subtotal: subtotal, Minimum: minimum}
}

func (e *BelowMinimumOrderError) Error() string {
	return fmt.Sprintf("%s: subtotal %s, minimum %s", ErrBelowMinimumOrder, e.Subtotal, e.Minimum)
}

func (e *BelowMinimumOrderError) Unwrap() error {
	return ErrBelowMinimumOrder
}
